package anton

import (
	"context"
	"fmt"
	"strings"
)

// InfoBar shows every decoding of the pointed bytes plus the pointer
// itself. All multi-byte values are read little endian, which is what
// the trailing tag reminds about.
type InfoBar struct {
	BaseVisualComponent
	lastSnapshot string
}

func NewInfoBar(window *Window) *InfoBar {
	return &InfoBar{BaseVisualComponent: NewBaseVisualComponent(window)}
}

func (b *InfoBar) Update(ctx context.Context) (bool, error) {
	if !b.Window().Visible() {
		return false, nil
	}
	st := State()
	snapshot := fmt.Sprintf("%08X:%+v", uint32(st.Pointer), st.Decoded)
	if b.lastSnapshot == snapshot {
		return false, nil
	}
	b.lastSnapshot = snapshot
	return true, nil
}

func (b *InfoBar) Render(_force bool) {
	st := State()
	w := b.Window()
	colWidth := w.Width() / 3
	if colWidth < 1 {
		colWidth = 1
	}
	cells := [3][3]string{
		{
			"u8: " + fmtUnsigned(uint64(st.Decoded.U8), st.Decoded.HasByte),
			"u16: " + fmtUnsigned(uint64(st.Decoded.U16), st.Decoded.HasWord),
			"u32: " + fmtUnsigned(uint64(st.Decoded.U32), st.Decoded.HasLong),
		},
		{
			"i8: " + fmtSigned(int64(st.Decoded.I8), st.Decoded.HasByte),
			"i16: " + fmtSigned(int64(st.Decoded.I16), st.Decoded.HasWord),
			"i32: " + fmtSigned(int64(st.Decoded.I32), st.Decoded.HasLong),
		},
		{
			"f32: " + fmtFloat(st.Decoded.F32, st.Decoded.HasLong),
			"Selected: " + st.Pointer.Hex(),
			"Little Endian",
		},
	}
	for row := 0; row < 3; row++ {
		w.Cursor(0, row)
		for col := 0; col < 3; col++ {
			w.Cursor(col*colWidth, row)
			attr := ColorInfo.Attr()
			if row == 2 && col > 0 {
				attr = ColorText.Attr() | AttrBold()
			}
			w.Print(padRight(cells[row][col], colWidth-1), attr, false)
		}
		w.FillToEOL(' ', 0)
	}
}

func fmtUnsigned(v uint64, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%d", v)
}

func fmtSigned(v int64, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%d", v)
}

func fmtFloat(v float32, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%g", v)
}

func padRight(text string, n int) string {
	if r := []rune(text); len(r) > n {
		return string(r[:n])
	}
	return text + strings.Repeat(" ", n-len([]rune(text)))
}
