// Package source defines the byte source capability the viewer reads from,
// along with the concrete providers shipped with the tool.
package source

import "github.com/vxpm/anton/internal/addrspace"

// Byte is a single addressable unit. Valid is false when the address is
// unreadable or out of range; such units render as placeholders.
type Byte struct {
	Value byte
	Valid bool
}

// Provider fills a buffer with the bytes starting at start, in ascending
// address order. It is total: unreadable regions are reported through
// Byte.Valid, never through an error.
type Provider interface {
	ReadInto(start addrspace.Addr, buf []Byte)
}

// Describer is implemented by providers that can name themselves for the
// top bar.
type Describer interface {
	Describe() string
}

// Describe returns the provider's self-description, or a fallback.
func Describe(p Provider) string {
	if d, ok := p.(Describer); ok {
		return d.Describe()
	}
	return "memory"
}
