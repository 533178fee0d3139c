package view

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/addrspace"
)

func TestNavigatorByteSteps(t *testing.T) {
	n := NewNavigator(100)

	n.StepForwardByte()
	assert.Equal(t, addrspace.Addr(101), n.Pointer())

	n.StepBackwardByte()
	n.StepBackwardByte()
	assert.Equal(t, addrspace.Addr(99), n.Pointer())
}

func TestNavigatorClampsAtZero(t *testing.T) {
	n := NewNavigator(0)

	n.StepBackwardByte()
	assert.Equal(t, addrspace.Addr(0), n.Pointer())

	n.SetRowStep(16)
	n.StepBackwardRow()
	assert.Equal(t, addrspace.Addr(0), n.Pointer())

	n.PageBackward(40)
	assert.Equal(t, addrspace.Addr(0), n.Pointer())
}

func TestNavigatorClampsAtMax(t *testing.T) {
	n := NewNavigator(addrspace.Max)

	n.StepForwardByte()
	assert.Equal(t, addrspace.Max, n.Pointer())

	n.SetRowStep(16)
	n.StepForwardRow()
	assert.Equal(t, addrspace.Max, n.Pointer())

	n.PageForward(40)
	assert.Equal(t, addrspace.Max, n.Pointer())
}

func TestNavigatorRowStepDefault(t *testing.T) {
	// before the first render a row step behaves like a byte step
	n := NewNavigator(10)
	n.StepForwardRow()
	assert.Equal(t, addrspace.Addr(11), n.Pointer())

	n.SetRowStep(0)
	n.StepForwardRow()
	assert.Equal(t, addrspace.Addr(12), n.Pointer())
}

func TestNavigatorRowAndPageSteps(t *testing.T) {
	n := NewNavigator(0x100)
	n.SetRowStep(8)

	n.StepForwardRow()
	assert.Equal(t, addrspace.Addr(0x108), n.Pointer())

	n.PageForward(5)
	assert.Equal(t, addrspace.Addr(0x130), n.Pointer())

	n.PageBackward(5)
	n.StepBackwardRow()
	assert.Equal(t, addrspace.Addr(0x100), n.Pointer())
}

func TestNavigatorHomeEndGoto(t *testing.T) {
	n := NewNavigator(0x1234)

	n.End()
	assert.Equal(t, addrspace.Max, n.Pointer())

	n.Home()
	assert.Equal(t, addrspace.Addr(0), n.Pointer())

	n.Goto(0xCAFE)
	assert.Equal(t, addrspace.Addr(0xCAFE), n.Pointer())
}
