package anton

import (
	"context"
	"fmt"
	"strings"

	"github.com/vxpm/anton/internal/view"
)

type InstructionViewer struct {
	BaseVisualComponent
	provider     view.InstructionProvider
	nav          *view.Navigator
	screen       *Screen
	dispatcher   *ActionDispatcher
	buffer       []view.Instruction
	inputHandler *addressInput
	lastSnapshot string
}

func NewInstructionViewer(provider view.InstructionProvider, nav *view.Navigator, window *Window) *InstructionViewer {
	return &InstructionViewer{
		BaseVisualComponent: NewBaseVisualComponent(window),
		provider:            provider,
		nav:                 nav,
	}
}

func (v *InstructionViewer) BindInput(screen *Screen, dispatcher *ActionDispatcher) {
	v.screen = screen
	v.dispatcher = dispatcher
	v.inputHandler = newAddressInput(dispatcher)
}

func (v *InstructionViewer) Update(ctx context.Context) (bool, error) {
	if !v.Window().Visible() {
		return false, nil
	}
	ih := v.Window().Height()
	if ih <= 0 {
		return false, nil
	}
	st := State()

	vp := view.ComputeUnits(st.Pointer, v.provider.UnitSize(), ih)
	if cap(v.buffer) < vp.Rows {
		v.buffer = make([]view.Instruction, vp.Rows)
	}
	v.buffer = v.buffer[:vp.Rows]
	v.provider.ReadInto(vp.Begin, v.buffer)

	rows := view.BuildUnitGrid(vp, v.buffer, st.Pointer)

	v.nav.SetRowStep(vp.UnitSize)
	if v.dispatcher != nil {
		v.dispatcher.SetPageRows(vp.Rows)
	}
	store.setInstructionFrame(rows, vp)

	snapshot := buildUnitSnapshot(st.Pointer.Hex(), rows, st.InputFocus, st.InputBuffer)
	if v.lastSnapshot == snapshot {
		return false, nil
	}
	v.lastSnapshot = snapshot
	return true, nil
}

func buildUnitSnapshot(pointer string, rows []view.UnitRow, inputFocus bool, inputBuffer string) string {
	parts := make([]string, 0, len(rows)+2)
	parts = append(parts, pointer, fmt.Sprintf("%t:%s", inputFocus, inputBuffer))
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("%s:%t:%t:%s", row.Label, row.Pointed, row.Missing, row.Text))
	}
	return strings.Join(parts, "|")
}

func (v *InstructionViewer) Render(_force bool) {
	st := State()
	w := v.Window()
	w.Cursor(0, 0)
	rowCount := 0
	for i, row := range st.InstructionRows {
		w.Cursor(0, i)
		if row.Pointed {
			w.Print("> ", ColorPointer.Attr(), false)
		} else {
			w.Print("  ", 0, false)
		}
		w.Print(row.Label+": ", ColorAddress.Attr(), false)
		textAttr := ColorText.Attr()
		if row.Missing {
			textAttr = ColorPlaceholder.Attr()
		}
		if row.Pointed {
			textAttr |= AttrBold()
		}
		w.Print(row.Text, textAttr, false)
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

func (v *InstructionViewer) HandleInput(ch int) bool {
	st := State()
	if st.InputFocus {
		if !v.Window().Visible() {
			return false
		}
		return v.inputHandler.handle(ch, st.InputBuffer)
	}
	if !v.Window().Visible() {
		return false
	}
	return handleNavKey(v.dispatcher, v.inputHandler, st.Pointer, ch)
}
