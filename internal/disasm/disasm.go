// Package disasm provides the 6502 instruction units shown by the
// instruction view. Records are fixed-width (the maximum opcode size) so
// the windowing engine can center and step them like any other unit;
// each record decodes the instruction found at its own address.
package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/view"
)

// Instruction is one decoded 6502 instruction record.
type Instruction struct {
	Addr     addrspace.Addr
	Raw      []byte
	Mnemonic string
	Operand  string
}

// Display renders the record as raw bytes plus assembly text.
func (i *Instruction) Display() string {
	asm := i.Mnemonic
	if i.Operand != "" {
		asm += " " + i.Operand
	}
	return fmt.Sprintf("%-8s %s", hexBytes(i.Raw), asm)
}

func hexBytes(raw []byte) string {
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

var modeSize = map[m6502.AddressingMode]int{
	m6502.ImpliedAddressing:     1,
	m6502.AccumulatorAddressing: 1,
	m6502.ImmediateAddressing:   2,
	m6502.ZeroPageAddressing:    2,
	m6502.ZeroPageXAddressing:   2,
	m6502.ZeroPageYAddressing:   2,
	m6502.RelativeAddressing:    2,
	m6502.IndirectXAddressing:   2,
	m6502.IndirectYAddressing:   2,
	m6502.AbsoluteAddressing:    3,
	m6502.AbsoluteXAddressing:   3,
	m6502.AbsoluteYAddressing:   3,
	m6502.IndirectAddressing:    3,
}

// Decoder reads instruction records from a byte source. It implements
// the instruction provider capability of the view engine.
type Decoder struct {
	src     source.Provider
	scratch []source.Byte
}

func NewDecoder(src source.Provider) *Decoder {
	return &Decoder{src: src}
}

// UnitSize is the fixed record width in bytes.
func (d *Decoder) UnitSize() int {
	return m6502.MaxOpcodeSize
}

// ReadInto fills one record per buffer slot starting at start. Records
// whose address or bytes are unreadable stay nil.
func (d *Decoder) ReadInto(start addrspace.Addr, buf []view.Instruction) {
	for i := range buf {
		buf[i] = nil
	}
	if len(buf) == 0 {
		return
	}

	stride := d.UnitSize()
	want := len(buf) * stride
	if cap(d.scratch) < want {
		d.scratch = make([]source.Byte, want)
	}
	window := d.scratch[:want]
	d.src.ReadInto(start, window)

	for i := range buf {
		unitAddr, ok := start.CheckedAdd(addrspace.Addr(i * stride))
		if !ok {
			continue
		}
		buf[i] = decodeAt(unitAddr, window[i*stride:min(want, i*stride+stride)])
	}
}

// decodeAt decodes the instruction starting at the window's first unit.
// It returns nil unless every byte the instruction needs is readable.
func decodeAt(addr addrspace.Addr, window []source.Byte) view.Instruction {
	if len(window) == 0 || !window[0].Valid {
		return nil
	}
	op := m6502.Opcodes[window[0].Value]
	if op.Instruction == nil {
		// unknown opcode: show the byte as data
		return &Instruction{
			Addr:     addr,
			Raw:      []byte{window[0].Value},
			Mnemonic: ".DB",
			Operand:  fmt.Sprintf("$%02X", window[0].Value),
		}
	}

	size := modeSize[op.Addressing]
	if size < 1 {
		size = 1
	}
	if size > len(window) {
		return nil
	}
	raw := make([]byte, size)
	for i := 0; i < size; i++ {
		if !window[i].Valid {
			return nil
		}
		raw[i] = window[i].Value
	}

	return &Instruction{
		Addr:     addr,
		Raw:      raw,
		Mnemonic: strings.ToUpper(op.Instruction.Name),
		Operand:  formatOperand(op.Addressing, addr, raw),
	}
}

func formatOperand(mode m6502.AddressingMode, addr addrspace.Addr, raw []byte) string {
	byteAt := func(i int) byte {
		if i < 0 || i >= len(raw) {
			return 0
		}
		return raw[i]
	}
	wordAt := func(i int) uint16 {
		return uint16(byteAt(i)) | uint16(byteAt(i+1))<<8
	}
	switch mode {
	case m6502.AccumulatorAddressing:
		return "A"
	case m6502.ImmediateAddressing:
		return fmt.Sprintf("#$%02X", byteAt(1))
	case m6502.AbsoluteAddressing:
		return fmt.Sprintf("$%04X", wordAt(1))
	case m6502.AbsoluteXAddressing:
		return fmt.Sprintf("$%04X,X", wordAt(1))
	case m6502.AbsoluteYAddressing:
		return fmt.Sprintf("$%04X,Y", wordAt(1))
	case m6502.IndirectAddressing:
		return fmt.Sprintf("($%04X)", wordAt(1))
	case m6502.IndirectXAddressing:
		return fmt.Sprintf("($%02X,X)", byteAt(1))
	case m6502.IndirectYAddressing:
		return fmt.Sprintf("($%02X),Y", byteAt(1))
	case m6502.ZeroPageAddressing:
		return fmt.Sprintf("$%02X", byteAt(1))
	case m6502.ZeroPageXAddressing:
		return fmt.Sprintf("$%02X,X", byteAt(1))
	case m6502.ZeroPageYAddressing:
		return fmt.Sprintf("$%02X,Y", byteAt(1))
	case m6502.RelativeAddressing:
		off := int8(byteAt(1))
		target := uint16(addr) + 2 + uint16(int16(off))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
