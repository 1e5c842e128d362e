// Package codec converts between box-name slots and display strings for a
// given game version and language.
package codec

import (
	"strings"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/logging"
)

// UnwritableGlyph replaces bytes the naming screen cannot produce when
// decoding with MaskUnwritable.
const UnwritableGlyph = "□"

var codecLogger = logging.Named("gen3.codec")

// DecodeOptions tunes Decode output for display.
type DecodeOptions struct {
	MaskUnwritable bool
}

// Decode returns the visible name stored in s. Bytes without a glyph decode
// to a space and the name ends at the first terminator. Decode never fails.
func Decode(s boxname.Slot, v charset.Version, l charset.Language) string {
	return DecodeWithOptions(s, v, l, DecodeOptions{})
}

// DecodeWithOptions is Decode with display options.
func DecodeWithOptions(s boxname.Slot, v charset.Version, l charset.Language, opts DecodeOptions) string {
	table := charset.EffectiveTable(v, l)
	var sb strings.Builder
	for _, b := range s.Name() {
		if opts.MaskUnwritable && !charset.Writable(l, b) {
			sb.WriteString(UnwritableGlyph)
			continue
		}
		sb.WriteString(table.Glyph(b))
	}
	return sb.String()
}

// DecodeRecord decodes every slot of r.
func DecodeRecord(r *boxname.Record, v charset.Version, l charset.Language, opts DecodeOptions) [boxname.SlotCount]string {
	var names [boxname.SlotCount]string
	for i, s := range r.Slots() {
		names[i] = DecodeWithOptions(s, v, l, opts)
	}
	codecLogger.Trace("📤 Decoded box names",
		"version", v,
		"language", l,
		"masked", opts.MaskUnwritable,
	)
	return names
}
