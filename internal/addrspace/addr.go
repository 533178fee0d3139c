// Package addrspace provides overflow-safe arithmetic over viewer addresses.
package addrspace

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is a location in the viewed address space.
type Addr uint32

// Max is the highest representable address.
const Max Addr = ^Addr(0)

// SatAdd adds n to a, clamping at Max instead of wrapping.
func (a Addr) SatAdd(n Addr) Addr {
	if a > Max-n {
		return Max
	}
	return a + n
}

// SatSub subtracts n from a, clamping at 0 instead of wrapping.
func (a Addr) SatSub(n Addr) Addr {
	if n > a {
		return 0
	}
	return a - n
}

// CheckedAdd adds n to a and reports whether the result stayed in range.
func (a Addr) CheckedAdd(n Addr) (Addr, bool) {
	if a > Max-n {
		return 0, false
	}
	return a + n, true
}

// SatMul multiplies a by n, clamping at Max instead of wrapping.
func (a Addr) SatMul(n Addr) Addr {
	if a == 0 || n == 0 {
		return 0
	}
	if a > Max/n {
		return Max
	}
	return a * n
}

// CheckedMul multiplies a by n and reports whether the result stayed in
// range.
func (a Addr) CheckedMul(n Addr) (Addr, bool) {
	if a == 0 || n == 0 {
		return 0, true
	}
	if a > Max/n {
		return 0, false
	}
	return a * n, true
}

// AlignDown rounds a down to a multiple of size. A zero size leaves a
// unchanged.
func (a Addr) AlignDown(size Addr) Addr {
	if size == 0 {
		return a
	}
	return a - a%size
}

// Diff returns the absolute distance between a and b.
func (a Addr) Diff(b Addr) Addr {
	if a > b {
		return a - b
	}
	return b - a
}

// Hex formats a as fixed-width uppercase hexadecimal.
func (a Addr) Hex() string {
	return fmt.Sprintf("%08X", uint32(a))
}

// HexPlaceholder stands in for an address label whose computation overflowed.
const HexPlaceholder = "--------"

// Parse reads a hexadecimal address, accepting optional "$" or "0x" prefixes.
func Parse(text string) (Addr, error) {
	s := strings.TrimSpace(strings.ToLower(text))
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", text)
	}
	return Addr(v), nil
}
