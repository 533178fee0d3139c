// Package memdump formats byte ranges as plain-text hexdump lines for the
// non-interactive CLI commands.
package memdump

import (
	"strings"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/source"
	"github.com/vxpm/anton/internal/style"
)

const defaultColumns = 16

// Lines renders the buffer as address-labelled rows of columns bytes.
// Unreadable units show the hex placeholder and a blank character cell;
// rows whose address computation overflowed are labelled with dashes.
func Lines(begin addrspace.Addr, buf []source.Byte, columns int) []string {
	if columns <= 0 {
		columns = defaultColumns
	}
	lines := make([]string, 0, (len(buf)+columns-1)/columns)
	for offset := 0; offset < len(buf); offset += columns {
		end := offset + columns
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[offset:end]

		label := addrspace.HexPlaceholder
		if a, ok := begin.CheckedAdd(addrspace.Addr(offset)); ok {
			label = a.Hex()
		}

		hex := make([]string, 0, columns)
		var text strings.Builder
		text.Grow(columns)
		for _, b := range chunk {
			if b.Valid {
				hex = append(hex, hexByte(b.Value))
			} else {
				hex = append(hex, style.HexPlaceholder)
			}
			text.WriteRune(style.TextGlyph(b))
		}
		for len(hex) < columns {
			hex = append(hex, "  ")
		}

		lines = append(lines, label+":  "+strings.Join(hex, " ")+"  "+text.String())
	}
	return lines
}

const hexDigits = "0123456789ABCDEF"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}

// Read fills a fresh buffer of length bytes from the provider.
func Read(p source.Provider, begin addrspace.Addr, length int) []source.Byte {
	if length <= 0 {
		return nil
	}
	buf := make([]source.Byte, length)
	p.ReadInto(begin, buf)
	return buf
}
