package view

import (
	"fmt"
	"strings"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/style"
)

// Cell is one annotated byte of the hex table.
type Cell struct {
	// Text is the two-character hex rendition, or the placeholder for an
	// unreadable unit.
	Text string
	// Color is the gradient hint; meaningless when Valid is false.
	Color style.RGB
	// Alternate marks the 4-byte alternation group.
	Alternate bool
	// Pointed marks the cell under the pointer.
	Pointed bool
	// Valid mirrors the unit's readability.
	Valid bool
}

// Row is one bucket of the byte view grid.
type Row struct {
	// Label is the bucket's address, or the dash placeholder if its
	// computation overflowed.
	Label string
	// Cells holds one annotated cell per unit of the bucket.
	Cells []Cell
	// Text is the parallel character column for the bucket.
	Text string
}

// Grid is the renderable form of one byte-view frame.
type Grid struct {
	Rows []Row
}

// BuildGrid partitions the filled buffer into buckets and annotates every
// unit. The buffer must have been filled for vp (BufferLen units); extra
// units are ignored, missing ones render as placeholders.
func BuildGrid(vp Viewport, buf []source.Byte, pointer addrspace.Addr) Grid {
	if vp.BucketSize == 0 {
		// area too narrow for a single bucket column
		return Grid{Rows: []Row{{Label: vp.Begin.Hex()}}}
	}

	bucket := int(vp.BucketSize)
	pointerIndex := vp.PointerIndex(pointer)
	rows := make([]Row, 0, vp.Rows)

	for rowIndex := 0; rowIndex < vp.Rows; rowIndex++ {
		label := addrspace.HexPlaceholder
		if a, ok := vp.RowAddr(rowIndex); ok {
			label = a.Hex()
		}

		cells := make([]Cell, 0, bucket)
		var text strings.Builder
		text.Grow(bucket)
		for col := 0; col < bucket; col++ {
			index := rowIndex*bucket + col
			var unit source.Byte
			if index < len(buf) {
				unit = buf[index]
			}
			cells = append(cells, buildCell(vp.Begin, index, pointerIndex, unit))
			text.WriteRune(style.TextGlyph(unit))
		}

		rows = append(rows, Row{Label: label, Cells: cells, Text: text.String()})
	}
	return Grid{Rows: rows}
}

func buildCell(begin addrspace.Addr, index, pointerIndex int, unit source.Byte) Cell {
	cell := Cell{
		Text:      style.HexPlaceholder,
		Alternate: style.Alternate(begin, index),
		Pointed:   index == pointerIndex,
		Valid:     unit.Valid,
	}
	if unit.Valid {
		cell.Text = fmt.Sprintf("%02X", unit.Value)
		cell.Color = style.Gradient(unit.Value)
	}
	return cell
}

// Instruction is the self-display capability an instruction record
// implements for the instruction view.
type Instruction interface {
	Display() string
}

// InstructionProvider fills a buffer with one instruction record per
// fixed-size unit starting at start. A nil entry marks a missing unit.
// Like the byte source it is total; it never fails.
type InstructionProvider interface {
	ReadInto(start addrspace.Addr, buf []Instruction)
	// UnitSize is the record width in address units; it drives centering
	// and row stepping.
	UnitSize() int
}

// UnitRow is one row of the instruction view.
type UnitRow struct {
	// Label is the unit's address, or the dash placeholder if its
	// computation overflowed.
	Label string
	// Pointed marks the row holding the pointer.
	Pointed bool
	// Text is the unit's self-described rendition, or the placeholder for
	// a missing unit.
	Text string
	// Missing is set when the unit could not be read.
	Missing bool
}

// BuildUnitGrid produces one row per instruction unit of the viewport.
func BuildUnitGrid(vp UnitViewport, buf []Instruction, pointer addrspace.Addr) []UnitRow {
	rows := make([]UnitRow, 0, vp.Rows)
	for rowIndex := 0; rowIndex < vp.Rows; rowIndex++ {
		row := UnitRow{
			Label:   addrspace.HexPlaceholder,
			Text:    style.UnitPlaceholder,
			Missing: true,
		}
		if a, ok := vp.RowAddr(rowIndex); ok {
			row.Label = a.Hex()
			row.Pointed = a == pointer
		}
		if rowIndex < len(buf) && buf[rowIndex] != nil {
			row.Text = buf[rowIndex].Display()
			row.Missing = false
		}
		rows = append(rows, row)
	}
	return rows
}
