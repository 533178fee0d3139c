package anton

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/decode"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/view"
)

// label column: 8 hex digits, a colon and a trailing space
const addrLabelWidth = 10

type MemoryViewer struct {
	BaseVisualComponent
	src          source.Provider
	nav          *view.Navigator
	screen       *Screen
	dispatcher   *ActionDispatcher
	buffer       []source.Byte
	inputHandler *addressInput
	lastSnapshot string
}

func NewMemoryViewer(src source.Provider, nav *view.Navigator, window *Window) *MemoryViewer {
	return &MemoryViewer{
		BaseVisualComponent: NewBaseVisualComponent(window),
		src:                 src,
		nav:                 nav,
	}
}

func (m *MemoryViewer) BindInput(screen *Screen, dispatcher *ActionDispatcher) {
	m.screen = screen
	m.dispatcher = dispatcher
	m.inputHandler = newAddressInput(dispatcher)
}

func (m *MemoryViewer) Update(ctx context.Context) (bool, error) {
	if !m.Window().Visible() {
		return false, nil
	}
	iw := m.Window().Width()
	ih := m.Window().Height()
	if iw <= 0 || ih <= 0 {
		return false, nil
	}
	st := State()

	// Each byte needs three hex columns plus one ascii column; the rest
	// of the line is the label and a separator before the text column.
	dataWidth := iw - addrLabelWidth - 1
	if dataWidth < 0 {
		dataWidth = 0
	}
	bucket := dataWidth / (view.ColumnsPerByte + 1)
	hexWidth := bucket * view.ColumnsPerByte

	vp := view.Compute(st.Pointer, hexWidth, ih)
	n := vp.BufferLen()
	if cap(m.buffer) < n {
		m.buffer = make([]source.Byte, n)
	}
	m.buffer = m.buffer[:n]
	m.src.ReadInto(vp.Begin, m.buffer)

	grid := view.BuildGrid(vp, m.buffer, st.Pointer)
	dec := decode.At(m.buffer, vp.PointerIndex(st.Pointer))

	m.nav.SetRowStep(int(vp.BucketSize))
	if m.dispatcher != nil {
		m.dispatcher.SetPageRows(vp.Rows)
	}
	store.setMemoryFrame(grid, vp, dec)

	snapshot := m.buildSnapshot(st.Pointer, vp, st.InputFocus, st.InputBuffer)
	if m.lastSnapshot == snapshot {
		return false, nil
	}
	m.lastSnapshot = snapshot
	return true, nil
}

func (m *MemoryViewer) buildSnapshot(ptr addrspace.Addr, vp view.Viewport, inputFocus bool, inputBuffer string) string {
	h := fnv.New64a()
	for _, b := range m.buffer {
		if b.Valid {
			_, _ = h.Write([]byte{1, b.Value})
		} else {
			_, _ = h.Write([]byte{0, 0})
		}
	}
	return fmt.Sprintf("%08X:%08X:%d:%d:%t:%s:%016x",
		uint32(ptr), uint32(vp.Begin), vp.BucketSize, vp.Rows, inputFocus, inputBuffer, h.Sum64())
}

func (m *MemoryViewer) Render(_force bool) {
	st := State()
	w := m.Window()
	w.Cursor(0, 0)
	bucket := int(st.MemoryViewport.BucketSize)
	pointerIdx := st.MemoryViewport.PointerIndex(st.Pointer)
	rowCount := 0
	for i, row := range st.MemoryGrid.Rows {
		w.Cursor(0, i)
		w.Print(row.Label+": ", ColorAddress.Attr(), false)
		for _, cell := range row.Cells {
			attr := 0
			if cell.Alternate {
				attr |= AttrUnderline()
			}
			if cell.Pointed {
				attr |= AttrReverse() | AttrBold()
			}
			if cell.Valid {
				w.PrintRGB(cell.Text, cell.Color, attr)
			} else {
				w.Print(cell.Text, ColorPlaceholder.Attr()|attr, false)
			}
			sep := 0
			if cell.Alternate {
				sep = AttrUnderline()
			}
			w.Print(" ", sep, false)
		}
		m.renderText(w, row.Text, bucket, pointerIdx, i)
		w.FillToEOL(' ', 0)
		rowCount++
	}
	if rowCount < w.Height() {
		w.Cursor(0, rowCount)
		w.ClearToBottom()
	}
	if st.InputFocus {
		renderAddressInput(w, st.InputBuffer)
	}
}

func (m *MemoryViewer) renderText(w *Window, text string, bucket int, pointerIdx int, rowIdx int) {
	glyphs := []rune(text)
	pointedCol := -1
	if bucket > 0 && pointerIdx >= 0 && pointerIdx/bucket == rowIdx {
		pointedCol = pointerIdx % bucket
	}
	for col, g := range glyphs {
		attr := ColorText.Attr()
		if col == pointedCol {
			attr = AttrReverse() | AttrBold()
		}
		w.Print(string(g), attr, false)
	}
}

func (m *MemoryViewer) HandleInput(ch int) bool {
	st := State()
	if st.InputFocus {
		if !m.Window().Visible() {
			return false
		}
		return m.inputHandler.handle(ch, st.InputBuffer)
	}
	if !m.Window().Visible() {
		return false
	}
	return handleNavKey(m.dispatcher, m.inputHandler, st.Pointer, ch)
}

// handleNavKey maps the shared movement keys for both views. Returns
// false for keys the view does not consume.
func handleNavKey(d *ActionDispatcher, input *addressInput, pointer addrspace.Addr, ch int) bool {
	lower := ch
	if ch >= int('A') && ch <= int('Z') {
		lower = ch + 32
	}
	switch {
	case ch == KeyLeft() || lower == int('h'):
		_ = d.Dispatch(ActionStepBackwardByte, nil)
	case ch == KeyRight() || lower == int('l'):
		_ = d.Dispatch(ActionStepForwardByte, nil)
	case ch == KeyDown() || lower == int('j'):
		_ = d.Dispatch(ActionStepForwardRow, nil)
	case ch == KeyUp() || lower == int('k'):
		_ = d.Dispatch(ActionStepBackwardRow, nil)
	case ch == KeyPageDown():
		_ = d.Dispatch(ActionPageForward, nil)
	case ch == KeyPageUp():
		_ = d.Dispatch(ActionPageBackward, nil)
	case ch == KeyHome():
		_ = d.Dispatch(ActionHome, nil)
	case ch == KeyEnd():
		_ = d.Dispatch(ActionEnd, nil)
	case lower == int('g') || ch == int('/'):
		input.open(pointer)
	default:
		return false
	}
	return true
}

// addressInput is the inline goto-address prompt shown over the first
// row of the active view.
type addressInput struct {
	dispatcher         *ActionDispatcher
	snapshot           string
	replaceOnNextInput bool
}

func newAddressInput(dispatcher *ActionDispatcher) *addressInput {
	return &addressInput{dispatcher: dispatcher}
}

func (a *addressInput) open(pointer addrspace.Addr) {
	a.snapshot = pointer.Hex()
	a.replaceOnNextInput = true
	_ = a.dispatcher.Dispatch(ActionSetInputBuffer, a.snapshot)
	_ = a.dispatcher.Dispatch(ActionSetInputFocus, true)
}

func (a *addressInput) handle(ch int, buffer string) bool {
	if ch == 27 {
		_ = a.dispatcher.Dispatch(ActionSetInputFocus, false)
		return true
	}
	if ch == 10 || ch == 13 || ch == KeyEnter() {
		text := strings.ToUpper(buffer)
		if text != "" {
			if addr, err := addrspace.Parse(text); err == nil {
				_ = a.dispatcher.Dispatch(ActionGoto, addr)
			}
		}
		_ = a.dispatcher.Dispatch(ActionSetInputFocus, false)
		return true
	}
	if ch == KeyBackspace() || ch == 127 || ch == 8 {
		a.replaceOnNextInput = false
		if len(buffer) > 0 {
			buffer = buffer[:len(buffer)-1]
		}
		_ = a.dispatcher.Dispatch(ActionSetInputBuffer, strings.ToUpper(buffer))
		return true
	}
	if ch < 0 || ch > 255 {
		return true
	}
	char := strings.ToUpper(string(rune(ch)))
	if !((char >= "0" && char <= "9") || (char >= "A" && char <= "F")) {
		return true
	}
	if a.replaceOnNextInput {
		buffer = ""
		a.replaceOnNextInput = false
	}
	if len(buffer) >= 8 {
		return true
	}
	_ = a.dispatcher.Dispatch(ActionSetInputBuffer, buffer+char)
	return true
}

func renderAddressInput(w *Window, buffer string) {
	text := strings.ToUpper(buffer)
	if len(text) > 8 {
		text = text[len(text)-8:]
	}
	for len(text) < 8 {
		text = "0" + text
	}
	w.Cursor(0, 0)
	w.Print(text+"  ", ColorAddress.Attr()|AttrReverse(), false)
}
