package anton

/*
#cgo pkg-config: ncursesw
#include <stdlib.h>
#include <locale.h>
#include <ncurses.h>
#include <sys/ioctl.h>
#include <unistd.h>

static void g_setlocale() { setlocale(LC_ALL, ""); }
static WINDOW* g_stdscr() { return stdscr; }
static void g_getmaxyx(WINDOW* w, int* y, int* x) { int yy, xx; getmaxyx(w, yy, xx); *y = yy; *x = xx; }
static int g_has_colors() { return has_colors(); }
static int g_color_pair(int n) { return COLOR_PAIR(n); }
static int g_key_resize() { return KEY_RESIZE; }
static int g_key_up() { return KEY_UP; }
static int g_key_down() { return KEY_DOWN; }
static int g_key_left() { return KEY_LEFT; }
static int g_key_right() { return KEY_RIGHT; }
static int g_key_ppage() { return KEY_PPAGE; }
static int g_key_npage() { return KEY_NPAGE; }
static int g_key_home() { return KEY_HOME; }
static int g_key_end() { return KEY_END; }
static int g_key_enter() { return KEY_ENTER; }
static int g_key_backspace() { return KEY_BACKSPACE; }
static int g_attr_reverse() { return A_REVERSE; }
static int g_attr_bold() { return A_BOLD; }
static int g_attr_dim() { return A_DIM; }
static int g_attr_underline() { return A_UNDERLINE; }
static int g_acs_hline() { return ACS_HLINE; }

static void g_mvwaddnstr_attr(WINDOW* w, int y, int x, const char* s, int n, int attr) {
  wattron(w, attr);
  mvwaddnstr(w, y, x, s, n);
  wattroff(w, attr);
}
static int g_sync_resize() {
  struct winsize ws;
  if (ioctl(STDOUT_FILENO, TIOCGWINSZ, &ws) == -1) return 0;
  if (ws.ws_row <= 0 || ws.ws_col <= 0) return 0;
  if (is_term_resized(ws.ws_row, ws.ws_col)) {
    resize_term(ws.ws_row, ws.ws_col);
    clearok(stdscr, TRUE);
    return 1;
  }
  return 0;
}
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/vxpm/anton/internal/style"
)

type Screen struct {
	scr               *C.WINDOW
	windows           []*Window
	layoutInitializer func(*Screen)
	initialized       bool
	focused           *Window
}

type Window struct {
	x, y, w, h int
	iw, ih     int
	title      string
	border     bool
	visible    bool
	dirty      bool
	screen     *Screen
	parent     *C.WINDOW
	outer      *C.WINDOW
	inner      *C.WINDOW
	tags       []windowTag
	tagsByID   map[string]int
}

type windowTag struct {
	id     string
	label  string
	active bool
}

type Color int

const (
	ColorAddress Color = iota + 1
	ColorText
	ColorWindowTitle
	ColorError
	ColorTopbar
	ColorFocus
	ColorInfo
	ColorShortcut
	ColorTagEnabled
	ColorPointer
	ColorPlaceholder
)

func NewScreen(layoutInitializer func(*Screen)) *Screen {
	return &Screen{layoutInitializer: layoutInitializer}
}

func (s *Screen) Initialize() {
	if s.initialized {
		return
	}
	C.g_setlocale()
	C.initscr()
	s.scr = C.g_stdscr()
	C.noecho()
	C.cbreak()
	C.set_escdelay(25)
	_ = C.curs_set(0)
	C.keypad(s.scr, C.bool(true))
	if C.g_has_colors() != 0 {
		C.start_color()
		initColorPairs()
	}
	s.initialized = true
}

func (s *Screen) End() {
	if !s.initialized {
		return
	}
	_ = C.endwin()
	s.initialized = false
}

func (s *Screen) Size() (int, int) {
	var h, w C.int
	C.g_getmaxyx(s.scr, &h, &w)
	return int(w), int(h)
}

func (s *Screen) Add(window *Window) {
	window.parent = s.scr
	window.screen = s
	s.windows = append(s.windows, window)
}

func (s *Screen) Focus(window *Window) {
	old := s.focused
	if old == window {
		return
	}
	s.focused = window
	if old != nil {
		old.Redraw()
	}
	if window != nil {
		window.Redraw()
	}
}

func (s *Screen) Focused() *Window {
	return s.focused
}

func (s *Screen) SetInputTimeoutMS(timeoutMS int) {
	if timeoutMS < 0 {
		C.nodelay(s.scr, C.bool(true))
		return
	}
	C.wtimeout(s.scr, C.int(timeoutMS))
}

func (s *Screen) GetInputChar() int {
	return int(C.wgetch(s.scr))
}

func (s *Screen) SyncResize() bool {
	if s.scr == nil {
		return false
	}
	return C.g_sync_resize() != 0
}

func (s *Screen) Rebuild() {
	if s.scr == nil {
		return
	}
	C.wclear(s.scr)
	C.touchwin(s.scr)
	if s.layoutInitializer != nil {
		s.layoutInitializer(s)
	}
	for _, w := range s.windows {
		if w.visible {
			w.initialize()
		}
	}
}

func (s *Screen) Update() {
	for _, w := range s.windows {
		if !w.visible {
			continue
		}
		w.refreshIfDirty()
	}
	C.wrefresh(s.scr)
	C.doupdate()
}

func NewWindow(title string, border bool) *Window {
	return &Window{
		title:    title,
		border:   border,
		visible:  true,
		dirty:    true,
		tagsByID: map[string]int{},
		w:        1,
		h:        1,
	}
}

func (w *Window) Visible() bool { return w.visible }
func (w *Window) SetVisible(v bool) {
	if w.visible == v {
		return
	}
	w.visible = v
	w.dirty = true
}

func (w *Window) Dirty() bool { return w.dirty }
func (w *Window) Width() int  { return w.iw }
func (w *Window) Height() int { return w.ih }
func (w *Window) X() int      { return w.x }
func (w *Window) Y() int      { return w.y }

func (w *Window) Reshape(x, y, width, height int) {
	w.x = x
	w.y = y
	w.w = width
	w.h = height
	if !w.visible {
		return
	}
	w.initialize()
	w.Redraw()
}

func (w *Window) AddTag(label, tagID string, active bool) {
	if tagID == "" {
		tagID = label
	}
	if _, ok := w.tagsByID[tagID]; ok {
		return
	}
	w.tagsByID[tagID] = len(w.tags)
	w.tags = append(w.tags, windowTag{id: tagID, label: label, active: active})
	w.redrawTitle()
}

func (w *Window) SetTagActive(tagID string, active bool) {
	idx, ok := w.tagsByID[tagID]
	if !ok {
		return
	}
	if w.tags[idx].active == active {
		return
	}
	w.tags[idx].active = active
	w.redrawTitle()
}

func (w *Window) initialize() {
	if w.parent == nil {
		return
	}
	var ph, pw C.int
	C.g_getmaxyx(w.parent, &ph, &pw)
	rw := minInt(int(pw)-w.x, w.w)
	rh := minInt(int(ph)-w.y, w.h)
	if rw < 1 {
		rw = 1
	}
	if rh < 1 {
		rh = 1
	}
	if w.inner != nil {
		C.delwin(w.inner)
		w.inner = nil
	}
	if w.outer != nil {
		C.delwin(w.outer)
		w.outer = nil
	}
	if w.border && rh >= 2 && rw >= 2 {
		w.outer = C.subwin(w.parent, C.int(rh), C.int(rw), C.int(w.y), C.int(w.x))
		w.inner = C.derwin(w.outer, C.int(rh-2), C.int(rw-2), 1, 1)
	} else {
		w.outer = nil
		w.inner = C.subwin(w.parent, C.int(rh), C.int(rw), C.int(w.y), C.int(w.x))
	}
	var ih, iw C.int
	C.g_getmaxyx(w.inner, &ih, &iw)
	w.ih = int(ih)
	w.iw = int(iw)
	w.Redraw()
}

func (w *Window) frameAttr() int {
	attr := ColorWindowTitle.Attr()
	if w.screen != nil && w.screen.focused == w {
		attr = ColorFocus.Attr()
	}
	return attr
}

func (w *Window) Redraw() {
	if w.inner == nil {
		return
	}
	if w.border && w.outer != nil {
		attr := w.frameAttr()
		C.wattron(w.outer, C.int(attr))
		C.box(w.outer, 0, 0)
		C.wattroff(w.outer, C.int(attr))
		w.drawTitleAndTags(attr)
	}
	w.dirty = true
}

func (w *Window) redrawTitle() {
	if !w.border || w.outer == nil {
		w.dirty = true
		return
	}
	attr := w.frameAttr()
	C.wattron(w.outer, C.int(attr))
	if w.iw > 0 {
		C.mvwhline(w.outer, 0, 1, C.chtype(C.g_acs_hline()), C.int(w.iw))
	}
	w.drawTitleAndTags(attr)
	C.wattroff(w.outer, C.int(attr))
	w.dirty = true
}

func (w *Window) drawTitleAndTags(baseAttr int) {
	if w.outer == nil {
		return
	}
	if w.title != "" {
		t := " " + cutTo(w.title, maxInt(0, w.iw-6)) + " "
		cw := C.CString(t)
		C.g_mvwaddnstr_attr(w.outer, 0, 2, cw, C.int(len(t)), C.int(baseAttr))
		C.free(unsafe.Pointer(cw))
	}
	if len(w.tags) == 0 {
		return
	}
	var h, ww C.int
	C.g_getmaxyx(w.outer, &h, &ww)
	_ = h
	x := int(ww) - 3
	for i := len(w.tags) - 1; i >= 0; i-- {
		tag := w.tags[i]
		label := " " + strings.TrimSpace(tag.label) + " "
		tw := runeLen(label)
		start := x - tw + 1
		if start <= 1 {
			break
		}
		attr := baseAttr
		if tag.active {
			attr = ColorTagEnabled.Attr()
		}
		cw := C.CString(label)
		C.g_mvwaddnstr_attr(w.outer, 0, C.int(start), cw, C.int(len(label)), C.int(attr))
		C.free(unsafe.Pointer(cw))
		x = start - 1
	}
}

func (w *Window) Erase() {
	if w.inner == nil {
		return
	}
	C.werase(w.inner)
	w.Cursor(0, 0)
	w.dirty = true
}

func (w *Window) refreshIfDirty() {
	if !w.dirty {
		return
	}
	if w.border && w.outer != nil {
		C.wnoutrefresh(w.outer)
	}
	if w.inner != nil {
		C.wnoutrefresh(w.inner)
	}
	w.Cursor(0, 0)
	w.dirty = false
}

func (w *Window) Cursor(x, y int) {
	if w.inner == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if w.iw > 0 && x >= w.iw {
		x = w.iw - 1
	}
	if w.ih > 0 && y >= w.ih {
		y = w.ih - 1
	}
	C.wmove(w.inner, C.int(y), C.int(x))
}

func (w *Window) CursorPos() (int, int) {
	if w.inner == nil {
		return 0, 0
	}
	y := int(C.getcury(w.inner))
	x := int(C.getcurx(w.inner))
	return x, y
}

func (w *Window) Print(text string, attr int, wrap bool) {
	if w.inner == nil {
		return
	}
	w.dirty = true
	if text == "" {
		return
	}
	iw := w.iw
	ih := w.ih
	if iw <= 0 || ih <= 0 {
		return
	}
	x, y := w.CursorPos()
	chars := []rune(text)
	c := 0
	for c < len(chars) && y < ih {
		cut := minInt(iw-x, len(chars)-c)
		if cut <= 0 {
			if wrap && y < ih-1 {
				x = 0
				y++
				continue
			}
			break
		}
		chunk := string(chars[c : c+cut])
		cw := C.CString(chunk)
		C.g_mvwaddnstr_attr(w.inner, C.int(y), C.int(x), cw, C.int(len(chunk)), C.int(attr))
		C.free(unsafe.Pointer(cw))
		x += cut
		if x >= iw {
			x = 0
			if y < ih-1 {
				y++
			}
		}
		if !wrap {
			break
		}
		c += cut
	}
	w.Cursor(x, y)
}

// PrintRGB prints text with a true-color style hint quantized to the
// nearest terminal color pair.
func (w *Window) PrintRGB(text string, color style.RGB, extraAttr int) {
	w.Print(text, gradientAttr(color)|extraAttr, false)
}

func (w *Window) PrintLine(text string, attr int, wrap bool) {
	w.Print(text, attr, wrap)
	w.Newline()
}

func (w *Window) Newline() {
	_, y := w.CursorPos()
	if y < w.ih-1 {
		w.Cursor(0, y+1)
	}
}

func (w *Window) ClearToBottom() {
	if w.inner == nil {
		return
	}
	C.wclrtobot(w.inner)
	w.dirty = true
}

func (w *Window) FillToEOL(ch rune, attr int) {
	x, y := w.CursorPos()
	if w.iw <= x {
		return
	}
	text := strings.Repeat(string(ch), w.iw-x)
	w.Print(text, attr, false)
	w.Cursor(x, y)
}

const (
	pairAddress = 1
	pairError   = 2
	pairYellow  = 3
	pairGreen   = 4
	pairRed     = 5
	pairMagenta = 6
	pairWhite   = 7
	pairBlue    = 8
	pairCyan    = 9
)

func initColorPairs() {
	C.init_pair(pairAddress, C.COLOR_CYAN, C.COLOR_BLACK)
	C.init_pair(pairError, C.COLOR_WHITE, C.COLOR_RED)
	C.init_pair(pairYellow, C.COLOR_YELLOW, C.COLOR_BLACK)
	C.init_pair(pairGreen, C.COLOR_GREEN, C.COLOR_BLACK)
	C.init_pair(pairRed, C.COLOR_RED, C.COLOR_BLACK)
	C.init_pair(pairMagenta, C.COLOR_MAGENTA, C.COLOR_BLACK)
	C.init_pair(pairWhite, C.COLOR_WHITE, C.COLOR_BLACK)
	C.init_pair(pairBlue, C.COLOR_BLUE, C.COLOR_BLACK)
	C.init_pair(pairCyan, C.COLOR_CYAN, C.COLOR_BLACK)
}

// terminal approximations of the gradient ramp, in ramp order
var gradientPairs = []struct {
	color style.RGB
	pair  int
}{
	{style.RGB{0x6E, 0x40, 0xAA}, pairMagenta},
	{style.RGB{0x41, 0x7D, 0xE0}, pairBlue},
	{style.RGB{0x1A, 0xC7, 0xC2}, pairCyan},
	{style.RGB{0x52, 0xE8, 0x81}, pairGreen},
	{style.RGB{0xAF, 0xF0, 0x5B}, pairYellow},
}

func gradientAttr(c style.RGB) int {
	best := gradientPairs[0].pair
	bestDist := 1 << 30
	for _, gp := range gradientPairs {
		d := colorDist(c, gp.color)
		if d < bestDist {
			bestDist = d
			best = gp.pair
		}
	}
	return int(C.g_color_pair(C.int(best)))
}

func colorDist(a, b style.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func (c Color) Attr() int {
	switch c {
	case ColorAddress:
		return int(C.g_color_pair(pairAddress)) | AttrBold() | AttrDim()
	case ColorText:
		return 0
	case ColorWindowTitle:
		return AttrDim()
	case ColorError:
		return int(C.g_color_pair(pairError))
	case ColorTopbar:
		return AttrReverse()
	case ColorFocus:
		return int(C.g_color_pair(pairYellow)) | AttrBold()
	case ColorInfo:
		return int(C.g_color_pair(pairGreen))
	case ColorShortcut:
		return AttrReverse()
	case ColorTagEnabled:
		return int(C.g_color_pair(pairGreen)) | AttrReverse()
	case ColorPointer:
		return int(C.g_color_pair(pairError)) | AttrBold()
	case ColorPlaceholder:
		return int(C.g_color_pair(pairWhite)) | AttrDim()
	default:
		return 0
	}
}

func AttrReverse() int   { return int(C.g_attr_reverse()) }
func AttrBold() int      { return int(C.g_attr_bold()) }
func AttrDim() int       { return int(C.g_attr_dim()) }
func AttrUnderline() int { return int(C.g_attr_underline()) }

func KeyResize() int    { return int(C.g_key_resize()) }
func KeyUp() int        { return int(C.g_key_up()) }
func KeyDown() int      { return int(C.g_key_down()) }
func KeyLeft() int      { return int(C.g_key_left()) }
func KeyRight() int     { return int(C.g_key_right()) }
func KeyPageUp() int    { return int(C.g_key_ppage()) }
func KeyPageDown() int  { return int(C.g_key_npage()) }
func KeyHome() int      { return int(C.g_key_home()) }
func KeyEnd() int       { return int(C.g_key_end()) }
func KeyEnter() int     { return int(C.g_key_enter()) }
func KeyBackspace() int { return int(C.g_key_backspace()) }

func runeLen(s string) int {
	return len([]rune(s))
}

func cutTo(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
