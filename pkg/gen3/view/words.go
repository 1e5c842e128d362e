package view

import (
	"encoding/binary"
	"fmt"
	"strings"

	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

// Words reinterprets data as unsigned 2- or 4-byte words in the given byte
// order. A trailing partial word is dropped.
func Words(data []byte, width int, order binary.ByteOrder) ([]uint32, error) {
	if width != 2 && width != 4 {
		return nil, fmt.Errorf("%w: %d (want 2 or 4)", gen3errors.ErrInvalidWordWidth, width)
	}
	words := make([]uint32, 0, len(data)/width)
	for i := 0; i+width <= len(data); i += width {
		if width == 2 {
			words = append(words, uint32(order.Uint16(data[i:i+2])))
		} else {
			words = append(words, order.Uint32(data[i:i+4]))
		}
	}
	return words, nil
}

// FormatWords renders one zero-padded uppercase word per line.
func FormatWords(data []byte, width int, order binary.ByteOrder) (string, error) {
	words, err := Words(data, width, order)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%0*X", width*2, w)
	}
	return strings.Join(lines, "\n"), nil
}

// FormatCodeGen renders little-endian 32-bit words as 0x-prefixed literals,
// ready to paste into an assembler listing.
func FormatCodeGen(data []byte) string {
	words, _ := Words(data, 4, binary.LittleEndian)
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("0x%08X", w)
	}
	return strings.Join(lines, "\n")
}
