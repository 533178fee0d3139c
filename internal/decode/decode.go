// Package decode interprets the bytes at the pointer as numbers of
// several widths. All multi-byte interpretations are little-endian.
package decode

import (
	"math"

	"github.com/vxpm/anton/internal/source"
)

// Decoded holds every interpretation of the pointed-at bytes. A width is
// only available when all of its bytes are readable; a missing byte never
// decodes as zero.
type Decoded struct {
	U8  uint8
	I8  int8
	U16 uint16
	I16 int16
	U32 uint32
	I32 int32
	F32 float32

	HasByte bool // u8, i8
	HasWord bool // u16, i16
	HasLong bool // u32, i32, f32
}

// At decodes the buffer at the given offset. Offsets outside the buffer
// yield a fully unavailable result.
func At(buf []source.Byte, offset int) Decoded {
	var d Decoded
	if offset < 0 || offset >= len(buf) {
		return d
	}

	window := buf[offset:]
	if !window[0].Valid {
		return d
	}
	d.U8 = window[0].Value
	d.I8 = int8(d.U8)
	d.HasByte = true

	if len(window) >= 2 && window[1].Valid {
		d.U16 = uint16(window[0].Value) | uint16(window[1].Value)<<8
		d.I16 = int16(d.U16)
		d.HasWord = true
	}

	if len(window) >= 4 && window[1].Valid && window[2].Valid && window[3].Valid {
		d.U32 = uint32(window[0].Value) |
			uint32(window[1].Value)<<8 |
			uint32(window[2].Value)<<16 |
			uint32(window[3].Value)<<24
		d.I32 = int32(d.U32)
		d.F32 = math.Float32frombits(d.U32)
		d.HasLong = true
	}

	return d
}
