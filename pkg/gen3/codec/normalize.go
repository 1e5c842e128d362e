package codec

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
)

// Bytes of the quote glyphs in the international tables.
const (
	openDoubleQuote  = 0xB1
	closeDoubleQuote = 0xB2
	apostrophe       = 0xB4
)

// Normalize rewrites text into the characters the tables of l use before
// encoding: composed accents, fullwidth forms for Japanese, narrow forms and
// the language's curly quotes for the western languages. Encode does not
// call it; it is opt-in for callers that accept keyboard input.
func Normalize(text string, l charset.Language) string {
	s := norm.NFC.String(text)
	if l.IsJapanese() {
		return width.Widen.String(s)
	}
	s = width.Fold.String(s)

	base := charset.BaseTable(l)
	var sb strings.Builder
	open := true
	for _, c := range s {
		switch c {
		case '\'':
			sb.WriteString(base.Glyph(apostrophe))
		case '"':
			if open {
				sb.WriteString(base.Glyph(openDoubleQuote))
			} else {
				sb.WriteString(base.Glyph(closeDoubleQuote))
			}
			open = !open
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
