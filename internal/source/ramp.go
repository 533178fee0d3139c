package source

import "github.com/vxpm/anton/internal/addrspace"

// Ramp is a synthetic provider where every readable address holds its own
// low byte. Addresses past the end of the address space are unreadable.
type Ramp struct{}

func (Ramp) ReadInto(start addrspace.Addr, buf []Byte) {
	for i := range buf {
		a, ok := start.CheckedAdd(addrspace.Addr(i))
		buf[i] = Byte{Value: byte(a), Valid: ok}
	}
}

func (Ramp) Describe() string {
	return "ramp pattern"
}
