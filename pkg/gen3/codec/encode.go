package codec

import (
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

// EncodeSlot encodes text into a fresh slot. Positions past the end of text
// are terminators and characters past the ninth are ignored. A character
// with no byte in the effective table yields *errors.InvalidCharacterError.
func EncodeSlot(text string, v charset.Version, l charset.Language) (boxname.Slot, error) {
	reverse := charset.EffectiveReverseTable(v, l)
	slot := boxname.EmptySlot()
	pos := 0
	for _, c := range text {
		if pos >= boxname.SlotSize {
			break
		}
		b, ok := reverse.LookupRune(c)
		if !ok {
			codecLogger.Debug("❌ Character not in table",
				"char", string(c),
				"position", pos,
				"version", v,
				"language", l,
			)
			return boxname.Slot{}, &gen3errors.InvalidCharacterError{Char: c, Position: pos}
		}
		slot[pos] = b
		pos++
	}
	return slot, nil
}

// Encode replaces slot index of r with text. On any error the record is left
// exactly as it was.
func Encode(r *boxname.Record, index int, text string, v charset.Version, l charset.Language) error {
	if _, err := r.Slot(index); err != nil {
		return err
	}
	slot, err := EncodeSlot(text, v, l)
	if err != nil {
		return err
	}
	codecLogger.Trace("📥 Encoded box name",
		"slot", index,
		"bytes", slot[:],
	)
	return r.SetSlot(index, slot)
}
