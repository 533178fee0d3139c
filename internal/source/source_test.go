package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/addrspace"
)

func TestRampReadInto(t *testing.T) {
	buf := make([]Byte, 4)
	Ramp{}.ReadInto(0x1FE, buf)

	for i, b := range buf {
		assert.True(t, b.Valid)
		assert.Equal(t, byte(0xFE+i), b.Value)
	}
}

func TestRampPastEndOfSpace(t *testing.T) {
	buf := make([]Byte, 4)
	Ramp{}.ReadInto(addrspace.Max-1, buf)

	assert.True(t, buf[0].Valid)
	assert.True(t, buf[1].Valid)
	assert.False(t, buf[2].Valid)
	assert.False(t, buf[3].Valid)
}

func TestFileImageReadInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	assert.NoError(t, os.WriteFile(path, []byte{0x10, 0x20, 0x30}, 0o644))

	img, err := LoadFile(path, 0x100)
	assert.NoError(t, err)
	assert.Equal(t, 3, img.Size())
	assert.Equal(t, addrspace.Addr(0x100), img.Base())

	buf := make([]Byte, 5)
	img.ReadInto(0xFF, buf)

	assert.False(t, buf[0].Valid)
	assert.Equal(t, Byte{Value: 0x10, Valid: true}, buf[1])
	assert.Equal(t, Byte{Value: 0x20, Valid: true}, buf[2])
	assert.Equal(t, Byte{Value: 0x30, Valid: true}, buf[3])
	assert.False(t, buf[4].Valid)
}

func TestFileImageMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.bin"), 0)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "ramp pattern", Describe(Ramp{}))
}
