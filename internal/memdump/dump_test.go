package memdump

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
)

func TestLines(t *testing.T) {
	buf := Read(source.Ramp{}, 0x40, 20)
	lines := Lines(0x40, buf, 16)

	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "00000040:  40 41 42 43"))
	assert.True(t, strings.HasPrefix(lines[1], "00000050:  50 51 52 53"))
}

func TestLinesPlaceholders(t *testing.T) {
	buf := []source.Byte{
		{Value: 'O', Valid: true},
		{},
		{Value: 'K', Valid: true},
	}
	lines := Lines(0, buf, 4)

	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "4F ◦◦ 4B")
	assert.True(t, strings.HasSuffix(lines[0], "O K"))
}

func TestLinesOverflowLabel(t *testing.T) {
	buf := Read(source.Ramp{}, addrspace.Max-3, 8)
	lines := Lines(addrspace.Max-3, buf, 4)

	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "FFFFFFFC:"))
	assert.True(t, strings.HasPrefix(lines[1], addrspace.HexPlaceholder+":"))
	assert.Contains(t, lines[1], "◦◦")
}

func TestLinesDefaultColumns(t *testing.T) {
	buf := Read(source.Ramp{}, 0, 16)
	lines := Lines(0, buf, 0)
	assert.Len(t, lines, 1)
}

func TestReadEmpty(t *testing.T) {
	assert.Nil(t, Read(source.Ramp{}, 0, 0))
}
