package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vxpm/anton/internal/addrspace"
)

// FileImage serves a binary file as a read-only memory image mapped at a
// base address. Addresses outside the image are unreadable.
type FileImage struct {
	name string
	base addrspace.Addr
	data []byte
}

// LoadFile reads path into memory and maps it at base. The image is
// truncated if it would extend past the end of the address space.
func LoadFile(path string, base addrspace.Addr) (*FileImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading image %s", path)
	}
	if max := uint64(addrspace.Max-base) + 1; uint64(len(data)) > max {
		data = data[:max]
	}
	return &FileImage{
		name: filepath.Base(path),
		base: base,
		data: data,
	}, nil
}

func (f *FileImage) ReadInto(start addrspace.Addr, buf []Byte) {
	for i := range buf {
		a, ok := start.CheckedAdd(addrspace.Addr(i))
		if !ok || a < f.base {
			buf[i] = Byte{}
			continue
		}
		off := uint64(a - f.base)
		if off >= uint64(len(f.data)) {
			buf[i] = Byte{}
			continue
		}
		buf[i] = Byte{Value: f.data[off], Valid: true}
	}
}

func (f *FileImage) Describe() string {
	return fmt.Sprintf("%s @ %s", f.name, f.base.Hex())
}

// Size returns the number of mapped bytes.
func (f *FileImage) Size() int {
	return len(f.data)
}

// Base returns the address the image is mapped at.
func (f *FileImage) Base() addrspace.Addr {
	return f.base
}
