package view

import "github.com/vxpm/anton/internal/addrspace"

// Navigator owns the pointer and moves it in display-sized steps. Every
// operation clamps at the ends of the address space; the pointer never
// wraps and is always a valid address.
type Navigator struct {
	pointer addrspace.Addr
	rowStep addrspace.Addr
}

// NewNavigator returns a navigator with the pointer at start. Row
// stepping before the first render falls back to single-unit steps.
func NewNavigator(start addrspace.Addr) *Navigator {
	return &Navigator{pointer: start, rowStep: 1}
}

// Pointer returns the current pointer address.
func (n *Navigator) Pointer() addrspace.Addr {
	return n.pointer
}

// SetRowStep records the bucket size of the most recent render; row and
// page steps use it until the next render updates it.
func (n *Navigator) SetRowStep(step int) {
	if step < 1 {
		step = 1
	}
	n.rowStep = addrspace.Addr(step)
}

// RowStep returns the current row step.
func (n *Navigator) RowStep() int {
	return int(n.rowStep)
}

func (n *Navigator) StepForwardByte() {
	n.pointer = n.pointer.SatAdd(1)
}

func (n *Navigator) StepBackwardByte() {
	n.pointer = n.pointer.SatSub(1)
}

func (n *Navigator) StepForwardRow() {
	n.pointer = n.pointer.SatAdd(n.rowStep)
}

func (n *Navigator) StepBackwardRow() {
	n.pointer = n.pointer.SatSub(n.rowStep)
}

// PageForward moves the pointer a whole viewport forward.
func (n *Navigator) PageForward(rows int) {
	if rows < 1 {
		rows = 1
	}
	n.pointer = n.pointer.SatAdd(n.rowStep.SatMul(addrspace.Addr(rows)))
}

// PageBackward moves the pointer a whole viewport backward.
func (n *Navigator) PageBackward(rows int) {
	if rows < 1 {
		rows = 1
	}
	n.pointer = n.pointer.SatSub(n.rowStep.SatMul(addrspace.Addr(rows)))
}

// Home moves the pointer to the first address.
func (n *Navigator) Home() {
	n.pointer = 0
}

// End moves the pointer to the last address.
func (n *Navigator) End() {
	n.pointer = addrspace.Max
}

// Goto moves the pointer to an absolute address. Every Addr value is a
// valid pointer target.
func (n *Navigator) Goto(a addrspace.Addr) {
	n.pointer = a
}
