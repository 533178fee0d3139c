// Package view holds the windowing engine: it computes the visible
// address range from the pointer and the display geometry, turns a filled
// byte buffer into a renderable grid, and steps the pointer. Everything
// is a pure function of its inputs; the terminal layer only paints the
// result.
package view

import (
	"math"

	"github.com/vxpm/anton/internal/addrspace"
)

// ColumnsPerByte is the display width of one byte cell: two hex digits
// plus spacing.
const ColumnsPerByte = 3

// Viewport is the visible window of the byte view. It is recomputed for
// every frame and never persisted.
type Viewport struct {
	// Begin is the address of the first unit of the first row.
	Begin addrspace.Addr
	// BucketSize is the number of units per row. Zero marks the
	// degenerate viewport of an area too narrow for a single bucket
	// column; it renders as a single placeholder row.
	BucketSize uint16
	// Rows is the number of visible rows.
	Rows int
}

// Compute derives the byte-view viewport from the pointer and the area
// available to the hex table. The row holding the pointer ends up
// vertically centered. Works for any pointer value; near the bottom of
// the address space the beginning saturates to zero instead of wrapping.
func Compute(pointer addrspace.Addr, areaWidth, areaHeight int) Viewport {
	bucket := areaWidth / ColumnsPerByte
	if bucket < 1 || areaHeight < 1 {
		return Viewport{Begin: pointer, BucketSize: 0, Rows: 1}
	}
	if bucket > math.MaxUint16 {
		bucket = math.MaxUint16
	}

	size := addrspace.Addr(bucket)
	pointedBucket := pointer.AlignDown(size)
	begin := pointedBucket.SatSub(size.SatMul(addrspace.Addr(areaHeight / 2)))
	return Viewport{
		Begin:      begin,
		BucketSize: uint16(bucket),
		Rows:       areaHeight,
	}
}

// BufferLen is the number of units the data source must fill for this
// viewport.
func (v Viewport) BufferLen() int {
	return int(v.BucketSize) * v.Rows
}

// PointerIndex is the pointer's offset into the viewport buffer.
func (v Viewport) PointerIndex(pointer addrspace.Addr) int {
	return int(pointer.Diff(v.Begin))
}

// RowAddr returns the address of the given row's first unit and whether
// its computation stayed in range.
func (v Viewport) RowAddr(row int) (addrspace.Addr, bool) {
	off, ok := addrspace.Addr(v.BucketSize).CheckedMul(addrspace.Addr(row))
	if !ok {
		return 0, false
	}
	return v.Begin.CheckedAdd(off)
}

// UnitViewport is the visible window of the instruction view: one
// fixed-size unit per row.
type UnitViewport struct {
	Begin    addrspace.Addr
	UnitSize int
	Rows     int
}

// ComputeUnits derives the instruction-view viewport. Identical centering
// to the byte view with a bucket of one unit per row.
func ComputeUnits(pointer addrspace.Addr, unitSize, rows int) UnitViewport {
	if unitSize < 1 {
		unitSize = 1
	}
	if rows < 1 {
		rows = 1
	}
	begin := pointer.SatSub(addrspace.Addr(unitSize).SatMul(addrspace.Addr(rows / 2)))
	return UnitViewport{Begin: begin, UnitSize: unitSize, Rows: rows}
}

// RowAddr returns the address of the given row's unit and whether its
// computation stayed in range.
func (v UnitViewport) RowAddr(row int) (addrspace.Addr, bool) {
	off, ok := addrspace.Addr(v.UnitSize).CheckedMul(addrspace.Addr(row))
	if !ok {
		return 0, false
	}
	return v.Begin.CheckedAdd(off)
}
