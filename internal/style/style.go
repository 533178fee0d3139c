// Package style maps byte values to display annotations: a continuous
// color gradient, the 4-byte alternation marker, the pointer highlight and
// the placeholder glyphs. Everything here is a pure function so the
// annotation rules are testable without a terminal.
package style

import (
	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
)

// Placeholder glyphs for units that cannot be shown as data.
const (
	HexPlaceholder  = "◦◦"
	UnitPlaceholder = "--"
	NonASCIIGlyph   = '∘'
	ControlGlyph    = '∙'
)

// RGB is a true-color style hint. The render sink decides how faithfully
// it can be painted.
type RGB struct {
	R, G, B uint8
}

// cool color ramp, sampled at five anchor points over the byte domain
var coolAnchors = []struct {
	pos   int
	color RGB
}{
	{0, RGB{0x6E, 0x40, 0xAA}},
	{64, RGB{0x41, 0x7D, 0xE0}},
	{128, RGB{0x1A, 0xC7, 0xC2}},
	{192, RGB{0x52, 0xE8, 0x81}},
	{255, RGB{0xAF, 0xF0, 0x5B}},
}

// Gradient maps a byte value through the cool color ramp.
func Gradient(v byte) RGB {
	p := int(v)
	for i := 1; i < len(coolAnchors); i++ {
		lo, hi := coolAnchors[i-1], coolAnchors[i]
		if p > hi.pos {
			continue
		}
		span := hi.pos - lo.pos
		t := p - lo.pos
		return RGB{
			R: lerp(lo.color.R, hi.color.R, t, span),
			G: lerp(lo.color.G, hi.color.G, t, span),
			B: lerp(lo.color.B, hi.color.B, t, span),
		}
	}
	return coolAnchors[len(coolAnchors)-1].color
}

func lerp(a, b uint8, t, span int) uint8 {
	if span == 0 {
		return a
	}
	return uint8(int(a) + (int(b)-int(a))*t/span)
}

// Alternate reports whether the unit at index belongs to an alternated
// 4-byte group. Groups are counted from the viewport's beginning address,
// not from the row start, so the marker stays put while scrolling. Units
// whose address computation overflows are never alternated; they render
// as placeholders anyway.
func Alternate(begin addrspace.Addr, index int) bool {
	a, ok := begin.CheckedAdd(addrspace.Addr(index))
	if !ok {
		return false
	}
	return (a/4)%2 == 0
}

// TextGlyph maps a unit to its character-column glyph. Unreadable units
// map to a blank, non-ASCII values to one placeholder and ASCII control
// characters to another.
func TextGlyph(b source.Byte) rune {
	if !b.Valid {
		return ' '
	}
	switch {
	case b.Value > 0x7F:
		return NonASCIIGlyph
	case b.Value < 0x20 || b.Value == 0x7F:
		return ControlGlyph
	default:
		return rune(b.Value)
	}
}
