package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/view"
)

type imageSource struct {
	base addrspace.Addr
	data []byte
}

func (s imageSource) ReadInto(start addrspace.Addr, buf []source.Byte) {
	for i := range buf {
		a, ok := start.CheckedAdd(addrspace.Addr(i))
		if !ok || a < s.base || uint64(a-s.base) >= uint64(len(s.data)) {
			buf[i] = source.Byte{}
			continue
		}
		buf[i] = source.Byte{Value: s.data[a-s.base], Valid: true}
	}
}

func TestDecoderUnitSize(t *testing.T) {
	d := NewDecoder(imageSource{})
	assert.Equal(t, 3, d.UnitSize())
}

func TestDecoderReadInto(t *testing.T) {
	// LDA #$01 / JMP $1234 at consecutive record addresses
	src := imageSource{base: 0x200, data: []byte{
		0xA9, 0x01, 0x00,
		0x4C, 0x34, 0x12,
	}}
	d := NewDecoder(src)

	buf := make([]view.Instruction, 2)
	d.ReadInto(0x200, buf)

	assert.NotNil(t, buf[0])
	assert.Equal(t, "A9 01    LDA #$01", buf[0].Display())

	assert.NotNil(t, buf[1])
	assert.Equal(t, "4C 34 12 JMP $1234", buf[1].Display())
}

func TestDecoderOperandModes(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"implied", []byte{0x60, 0, 0}, "60       RTS"},
		{"accumulator", []byte{0x0A, 0, 0}, "0A       ASL A"},
		{"zeropage", []byte{0xA5, 0x10, 0}, "A5 10    LDA $10"},
		{"zeropage x", []byte{0xB5, 0x10, 0}, "B5 10    LDA $10,X"},
		{"absolute x", []byte{0xBD, 0x00, 0x80}, "BD 00 80 LDA $8000,X"},
		{"indirect", []byte{0x6C, 0x00, 0x30}, "6C 00 30 JMP ($3000)"},
		{"indirect y", []byte{0xB1, 0x40, 0}, "B1 40    LDA ($40),Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(imageSource{base: 0x400, data: tt.data})
			buf := make([]view.Instruction, 1)
			d.ReadInto(0x400, buf)

			assert.NotNil(t, buf[0])
			assert.Equal(t, tt.expected, buf[0].Display())
		})
	}
}

func TestDecoderRelativeBranch(t *testing.T) {
	// BNE -2 at $0400 branches to $0400
	d := NewDecoder(imageSource{base: 0x400, data: []byte{0xD0, 0xFE, 0}})
	buf := make([]view.Instruction, 1)
	d.ReadInto(0x400, buf)

	assert.NotNil(t, buf[0])
	assert.Equal(t, "D0 FE    BNE $0400", buf[0].Display())
}

func TestDecoderUnreadable(t *testing.T) {
	// record addresses outside the image stay nil
	src := imageSource{base: 0x200, data: []byte{0xA9, 0x01, 0x00}}
	d := NewDecoder(src)

	buf := make([]view.Instruction, 3)
	d.ReadInto(0x1FD, buf)

	assert.Nil(t, buf[0])
	assert.NotNil(t, buf[1])
	assert.Nil(t, buf[2])
}

func TestDecoderTruncatedOperand(t *testing.T) {
	// JMP with its second operand byte unreadable is not shown half-decoded
	src := imageSource{base: 0x200, data: []byte{0x4C, 0x34}}
	d := NewDecoder(src)

	buf := make([]view.Instruction, 1)
	d.ReadInto(0x200, buf)
	assert.Nil(t, buf[0])
}

func TestDecoderUnknownOpcode(t *testing.T) {
	d := NewDecoder(imageSource{base: 0x200, data: []byte{0x02, 0, 0}})
	buf := make([]view.Instruction, 1)
	d.ReadInto(0x200, buf)

	assert.NotNil(t, buf[0])
	assert.Equal(t, ".DB $02", buf[0].(*Instruction).Mnemonic+" "+buf[0].(*Instruction).Operand)
}

func TestDecoderPastEndOfSpace(t *testing.T) {
	d := NewDecoder(source.Ramp{})
	buf := make([]view.Instruction, 2)
	d.ReadInto(addrspace.Max-2, buf)

	// the second record's address overflows the space
	assert.Nil(t, buf[1])
}
