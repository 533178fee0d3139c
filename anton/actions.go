package anton

import (
	"context"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/view"
)

type Action int

const (
	ActionStepForwardByte Action = iota + 1
	ActionStepBackwardByte
	ActionStepForwardRow
	ActionStepBackwardRow
	ActionPageForward
	ActionPageBackward
	ActionHome
	ActionEnd
	ActionGoto
	ActionSwitchTab
	ActionSetInputFocus
	ActionSetInputBuffer
	ActionQuit
)

type StopLoop struct{}

func (s StopLoop) Error() string { return "stop loop" }

// ActionDispatcher owns the navigator. Every pointer movement goes
// through Dispatch so the store always reflects the navigator.
type ActionDispatcher struct {
	nav       *view.Navigator
	pageRows  int
	afterMove func()
	stopLoop  bool
}

func NewActionDispatcher(nav *view.Navigator) *ActionDispatcher {
	return &ActionDispatcher{nav: nav, pageRows: 1}
}

func (d *ActionDispatcher) Update(ctx context.Context) (bool, error) { return false, nil }
func (d *ActionDispatcher) HandleInput(ch int) bool                  { return false }

func (d *ActionDispatcher) SetAfterMove(cb func()) {
	d.afterMove = cb
}

// SetPageRows tells the dispatcher how many rows the active view is
// showing, so page steps can cover a whole screen.
func (d *ActionDispatcher) SetPageRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	d.pageRows = rows
}

func (d *ActionDispatcher) Dispatch(action Action, value any) error {
	switch action {
	case ActionStepForwardByte:
		d.nav.StepForwardByte()
		d.pointerMoved()
	case ActionStepBackwardByte:
		d.nav.StepBackwardByte()
		d.pointerMoved()
	case ActionStepForwardRow:
		d.nav.StepForwardRow()
		d.pointerMoved()
	case ActionStepBackwardRow:
		d.nav.StepBackwardRow()
		d.pointerMoved()
	case ActionPageForward:
		d.nav.PageForward(d.pageRows)
		d.pointerMoved()
	case ActionPageBackward:
		d.nav.PageBackward(d.pageRows)
		d.pointerMoved()
	case ActionHome:
		d.nav.Home()
		d.pointerMoved()
	case ActionEnd:
		d.nav.End()
		d.pointerMoved()
	case ActionGoto:
		if addr, ok := value.(addrspace.Addr); ok {
			d.nav.Goto(addr)
			d.pointerMoved()
		}
	case ActionSwitchTab:
		st := State()
		if st.ActiveTab == TabMemory {
			store.setActiveTab(TabInstructions)
		} else {
			store.setActiveTab(TabMemory)
		}
	case ActionSetInputFocus:
		v := false
		if b, ok := value.(bool); ok {
			v = b
		}
		store.setInputFocus(v)
	case ActionSetInputBuffer:
		if text, ok := value.(string); ok {
			store.setInputBuffer(text)
		}
	case ActionQuit:
		d.stopLoop = true
	}
	return nil
}

func (d *ActionDispatcher) pointerMoved() {
	store.setPointer(d.nav.Pointer())
	if d.afterMove != nil {
		d.afterMove()
	}
}

func (d *ActionDispatcher) PostRender(ctx context.Context) error {
	if d.stopLoop {
		return StopLoop{}
	}
	return nil
}
