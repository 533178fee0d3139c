package addrspace

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSatAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, n     Addr
		expected Addr
	}{
		{"plain", 100, 28, 128},
		{"zero", 0, 0, 0},
		{"at max", Max, 1, Max},
		{"near max", Max - 2, 5, Max},
		{"exact max", Max - 5, 5, Max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.SatAdd(tt.n))
		})
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		name     string
		a, n     Addr
		expected Addr
	}{
		{"plain", 100, 28, 72},
		{"to zero", 28, 28, 0},
		{"below zero", 5, 28, 0},
		{"at zero", 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.SatSub(tt.n))
		})
	}
}

func TestCheckedAdd(t *testing.T) {
	v, ok := Addr(0x1000).CheckedAdd(0x20)
	assert.True(t, ok)
	assert.Equal(t, Addr(0x1020), v)

	_, ok = Max.CheckedAdd(1)
	assert.False(t, ok)

	v, ok = (Max - 4).CheckedAdd(4)
	assert.True(t, ok)
	assert.Equal(t, Max, v)
}

func TestAlignDown(t *testing.T) {
	assert.Equal(t, Addr(96), Addr(100).AlignDown(8))
	assert.Equal(t, Addr(100), Addr(100).AlignDown(0))
	assert.Equal(t, Addr(0), Addr(7).AlignDown(8))
	assert.Equal(t, Addr(100), Addr(100).AlignDown(1))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "00001240", Addr(0x1240).Hex())
	assert.Equal(t, "FFFFFFFF", Max.Hex())
}

func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected Addr
		wantErr  bool
	}{
		{"1240", 0x1240, false},
		{"$ff", 0xFF, false},
		{"0xDEAD", 0xDEAD, false},
		{"FFFFFFFF", Max, false},
		{"100000000", 0, true},
		{"zz", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v, err := Parse(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}
