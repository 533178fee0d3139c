package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/style"
)

func fill(start addrspace.Addr, n int) []source.Byte {
	buf := make([]source.Byte, n)
	source.Ramp{}.ReadInto(start, buf)
	return buf
}

func TestBuildGridLayout(t *testing.T) {
	vp := Viewport{Begin: 0x40, BucketSize: 4, Rows: 2}
	grid := BuildGrid(vp, fill(0x40, vp.BufferLen()), 0x45)

	assert.Len(t, grid.Rows, 2)
	assert.Equal(t, "00000040", grid.Rows[0].Label)
	assert.Equal(t, "00000044", grid.Rows[1].Label)
	assert.Equal(t, "40", grid.Rows[0].Cells[0].Text)
	assert.Equal(t, "47", grid.Rows[1].Cells[3].Text)

	// pointer cell is on the second row, second column
	assert.False(t, grid.Rows[0].Cells[1].Pointed)
	assert.True(t, grid.Rows[1].Cells[1].Pointed)
}

func TestBuildGridTextColumn(t *testing.T) {
	buf := []source.Byte{
		{Value: 'H', Valid: true},
		{Value: 'i', Valid: true},
		{Value: 0x07, Valid: true},
		{Value: 0xC3, Valid: true},
	}
	grid := BuildGrid(Viewport{Begin: 0, BucketSize: 4, Rows: 1}, buf, 0)

	assert.Equal(t, "Hi∙∘", grid.Rows[0].Text)
}

func TestBuildGridPlaceholders(t *testing.T) {
	buf := []source.Byte{{}, {Value: 5, Valid: true}, {}, {}}
	grid := BuildGrid(Viewport{Begin: 0, BucketSize: 4, Rows: 1}, buf, 0)

	row := grid.Rows[0]
	assert.Equal(t, style.HexPlaceholder, row.Cells[0].Text)
	assert.False(t, row.Cells[0].Valid)
	assert.True(t, row.Cells[0].Pointed)
	assert.Equal(t, "05", row.Cells[1].Text)
	assert.Equal(t, " ∙  ", row.Text)
}

func TestBuildGridAnnotations(t *testing.T) {
	vp := Viewport{Begin: 2, BucketSize: 4, Rows: 1}
	grid := BuildGrid(vp, fill(2, 4), 2)

	// addresses 2..5: group flips between address 3 and 4
	alt := []bool{true, true, false, false}
	for i, cell := range grid.Rows[0].Cells {
		assert.Equal(t, alt[i], cell.Alternate)
		assert.Equal(t, style.Gradient(byte(2+i)), cell.Color)
	}
}

func TestBuildGridOverflowLabel(t *testing.T) {
	vp := Compute(addrspace.Max, 24, 5)
	buf := make([]source.Byte, vp.BufferLen())
	source.Ramp{}.ReadInto(vp.Begin, buf)

	grid := BuildGrid(vp, buf, addrspace.Max)
	last := grid.Rows[len(grid.Rows)-1]
	assert.Equal(t, addrspace.HexPlaceholder, last.Label)

	// units past the end of the space render as placeholders
	lastCell := last.Cells[len(last.Cells)-1]
	assert.Equal(t, style.HexPlaceholder, lastCell.Text)
}

func TestBuildGridDegenerate(t *testing.T) {
	grid := BuildGrid(Viewport{Begin: 0x42, BucketSize: 0, Rows: 1}, nil, 0x42)

	assert.Len(t, grid.Rows, 1)
	assert.Equal(t, "00000042", grid.Rows[0].Label)
	assert.Len(t, grid.Rows[0].Cells, 0)
}

func TestBuildGridShortBuffer(t *testing.T) {
	vp := Viewport{Begin: 0, BucketSize: 4, Rows: 2}
	grid := BuildGrid(vp, fill(0, 5), 0)

	assert.Len(t, grid.Rows, 2)
	assert.Equal(t, "04", grid.Rows[1].Cells[0].Text)
	assert.Equal(t, style.HexPlaceholder, grid.Rows[1].Cells[1].Text)
}

func TestBuildGridDeterministic(t *testing.T) {
	vp := Compute(100, 24, 5)
	buf := fill(vp.Begin, vp.BufferLen())

	a := BuildGrid(vp, buf, 100)
	b := BuildGrid(vp, buf, 100)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("grid mismatch (-first +second):\n%s", diff)
	}
}

type fakeUnit string

func (f fakeUnit) Display() string { return string(f) }

func TestBuildUnitGrid(t *testing.T) {
	vp := ComputeUnits(8, 4, 3)
	buf := []Instruction{fakeUnit("NOP"), nil, fakeUnit("RTS")}

	rows := BuildUnitGrid(vp, buf, 8)

	assert.Len(t, rows, 3)
	assert.Equal(t, "00000004", rows[0].Label)
	assert.Equal(t, "NOP", rows[0].Text)
	assert.False(t, rows[0].Pointed)

	assert.True(t, rows[1].Missing)
	assert.Equal(t, style.UnitPlaceholder, rows[1].Text)

	assert.Equal(t, "0000000C", rows[2].Label)
	assert.Equal(t, "RTS", rows[2].Text)
}

func TestBuildUnitGridPointerRow(t *testing.T) {
	vp := ComputeUnits(8, 4, 3)
	rows := BuildUnitGrid(vp, []Instruction{fakeUnit("A"), fakeUnit("B"), fakeUnit("C")}, 8)

	assert.False(t, rows[0].Pointed)
	assert.True(t, rows[1].Pointed)
	assert.False(t, rows[2].Pointed)
}

func TestBuildUnitGridOverflowRows(t *testing.T) {
	vp := ComputeUnits(addrspace.Max, 4, 5)
	rows := BuildUnitGrid(vp, make([]Instruction, 5), addrspace.Max)

	assert.Equal(t, addrspace.HexPlaceholder, rows[4].Label)
	assert.True(t, rows[4].Missing)
}
