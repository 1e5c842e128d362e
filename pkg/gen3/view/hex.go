// Package view renders the raw box-name block in the text forms the editor
// shows next to the names: hex rows, word streams, code-gen words and a
// paste-friendly listing.
package view

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

// HexDigits is the digit count of a full record in hex.
const HexDigits = boxname.RecordSize * 2

// ParseHex parses a record written as 252 hex digits. Whitespace anywhere is
// ignored; any other non-hex character or a wrong digit count is an error.
func ParseHex(s string) ([]byte, error) {
	stripped := stripSpace(s)
	if len(stripped) != HexDigits {
		return nil, fmt.Errorf("%w: want %d hex digits, got %d", gen3errors.ErrInvalidHex, HexDigits, len(stripped))
	}
	return DecodeHex(stripped)
}

// DecodeHex parses hex digits of any even count, ignoring whitespace.
func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(stripSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gen3errors.ErrInvalidHex, err)
	}
	return data, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FormatHex writes data as uppercase byte pairs separated by spaces, one
// slot per line.
func FormatHex(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			if i%boxname.SlotSize == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
