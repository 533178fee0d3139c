package decode

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/source"
)

func valid(bytes ...byte) []source.Byte {
	buf := make([]source.Byte, len(bytes))
	for i, b := range bytes {
		buf[i] = source.Byte{Value: b, Valid: true}
	}
	return buf
}

func TestAtLittleEndian(t *testing.T) {
	d := At(valid(0x78, 0x56, 0x34, 0x12), 0)

	assert.True(t, d.HasByte)
	assert.True(t, d.HasWord)
	assert.True(t, d.HasLong)
	assert.Equal(t, uint8(0x78), d.U8)
	assert.Equal(t, int8(0x78), d.I8)
	assert.Equal(t, uint16(0x5678), d.U16)
	assert.Equal(t, uint32(0x12345678), d.U32)
}

func TestAtSigned(t *testing.T) {
	d := At(valid(0xFF, 0xFF, 0xFF, 0xFF), 0)

	assert.Equal(t, int8(-1), d.I8)
	assert.Equal(t, int16(-1), d.I16)
	assert.Equal(t, int32(-1), d.I32)
}

func TestAtFloat(t *testing.T) {
	d := At(valid(0x00, 0x00, 0x80, 0x3F), 0)

	assert.True(t, d.HasLong)
	assert.Equal(t, float32(1.0), d.F32)
}

func TestAtMissingTail(t *testing.T) {
	buf := valid(0x78, 0x56, 0x34, 0x12)
	buf[2].Valid = false

	d := At(buf, 0)
	assert.True(t, d.HasByte)
	assert.True(t, d.HasWord)
	assert.False(t, d.HasLong)
	assert.Equal(t, uint8(0x78), d.U8)
	assert.Equal(t, uint16(0x5678), d.U16)
}

func TestAtMissingPointerByte(t *testing.T) {
	buf := []source.Byte{{}, {Value: 5, Valid: true}, {}, {}}

	d := At(buf, 0)
	assert.False(t, d.HasByte)
	assert.False(t, d.HasWord)
	assert.False(t, d.HasLong)
}

func TestAtShortWindow(t *testing.T) {
	d := At(valid(0x42), 0)

	assert.True(t, d.HasByte)
	assert.False(t, d.HasWord)
	assert.False(t, d.HasLong)
	assert.Equal(t, uint8(0x42), d.U8)
}

func TestAtOffsetOutOfRange(t *testing.T) {
	buf := valid(0x01, 0x02)

	assert.False(t, At(buf, -1).HasByte)
	assert.False(t, At(buf, 2).HasByte)
	assert.False(t, At(nil, 0).HasByte)
}

func TestAtOffsetInsideBuffer(t *testing.T) {
	d := At(valid(0xAA, 0x78, 0x56, 0x34, 0x12), 1)

	assert.Equal(t, uint32(0x12345678), d.U32)
}
