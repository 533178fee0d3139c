package style

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
)

func TestGradientEndpoints(t *testing.T) {
	assert.Equal(t, RGB{0x6E, 0x40, 0xAA}, Gradient(0))
	assert.Equal(t, RGB{0xAF, 0xF0, 0x5B}, Gradient(255))
	assert.Equal(t, RGB{0x1A, 0xC7, 0xC2}, Gradient(128))
}

func TestGradientContinuity(t *testing.T) {
	// neighbouring values stay close on every channel
	prev := Gradient(0)
	for v := 1; v <= 255; v++ {
		cur := Gradient(byte(v))
		assert.True(t, chanDiff(prev.R, cur.R) <= 4)
		assert.True(t, chanDiff(prev.G, cur.G) <= 4)
		assert.True(t, chanDiff(prev.B, cur.B) <= 4)
		prev = cur
	}
}

func chanDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestAlternateGroups(t *testing.T) {
	// groups of four, anchored at address 0
	assert.True(t, Alternate(0, 0))
	assert.True(t, Alternate(0, 3))
	assert.False(t, Alternate(0, 4))
	assert.False(t, Alternate(0, 7))
	assert.True(t, Alternate(0, 8))
}

func TestAlternateStableUnderScroll(t *testing.T) {
	// the flag for a given absolute address does not depend on where the
	// viewport starts
	for _, begin := range []addrspace.Addr{0, 1, 2, 3, 5, 96} {
		assert.Equal(t, Alternate(0, 100), Alternate(begin, int(100-begin)))
	}
}

func TestAlternateOverflow(t *testing.T) {
	assert.False(t, Alternate(addrspace.Max, 1))
}

func TestTextGlyph(t *testing.T) {
	tests := []struct {
		name     string
		b        source.Byte
		expected rune
	}{
		{"printable", source.Byte{Value: 'A', Valid: true}, 'A'},
		{"space", source.Byte{Value: ' ', Valid: true}, ' '},
		{"control", source.Byte{Value: 0x07, Valid: true}, ControlGlyph},
		{"delete", source.Byte{Value: 0x7F, Valid: true}, ControlGlyph},
		{"non-ascii", source.Byte{Value: 0xC3, Valid: true}, NonASCIIGlyph},
		{"unreadable", source.Byte{}, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextGlyph(tt.b))
		})
	}
}
