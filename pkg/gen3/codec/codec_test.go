package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

func TestEncodeProfOak(t *testing.T) {
	r := boxname.New()
	require.NoError(t, Encode(r, 0, "PROF.OAK", charset.RubySapphire, charset.English))

	s, err := r.Slot(0)
	require.NoError(t, err)
	assert.Equal(t, boxname.Slot{0xCA, 0xCC, 0xC9, 0xC0, 0xAD, 0xC9, 0xBB, 0xC5, 0xFF}, s)
	assert.Equal(t, "PROF.OAK", Decode(s, charset.RubySapphire, charset.English))
}

func TestEncodeEmpty(t *testing.T) {
	r := boxname.New()
	require.NoError(t, r.SetSlotBytes(3, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, Encode(r, 3, "", charset.Emerald, charset.English))

	s, err := r.Slot(3)
	require.NoError(t, err)
	assert.Equal(t, boxname.EmptySlot(), s)
	assert.Equal(t, "", Decode(s, charset.Emerald, charset.English))
}

func TestEncodeInvalidCharacter(t *testing.T) {
	r := boxname.New()
	require.NoError(t, Encode(r, 2, "BOX", charset.Emerald, charset.English))
	before := r.Bytes()

	err := Encode(r, 2, "AB@C", charset.Emerald, charset.English)
	require.ErrorIs(t, err, gen3errors.ErrInvalidCharacter)

	var charErr *gen3errors.InvalidCharacterError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, '@', charErr.Char)
	assert.Equal(t, 2, charErr.Position)
	assert.Equal(t, before, r.Bytes(), "record unchanged after a failed encode")
}

func TestEncodeInvalidIndex(t *testing.T) {
	r := boxname.New()
	err := Encode(r, boxname.SlotCount, "@@@", charset.Emerald, charset.English)
	assert.ErrorIs(t, err, gen3errors.ErrInvalidSlotIndex, "index is checked before characters")
}

func TestEncodeTruncates(t *testing.T) {
	s, err := EncodeSlot("ABCDEFGHIJK@", charset.Emerald, charset.English)
	require.NoError(t, err, "characters past the ninth are ignored")
	assert.False(t, s.Terminated())
	assert.Equal(t, "ABCDEFGHI", Decode(s, charset.Emerald, charset.English))
}

func TestEncodePlaceholders(t *testing.T) {
	s, err := EncodeSlot("▯*", charset.RubySapphire, charset.English)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0A), s[0])
	assert.Equal(t, byte(0x30), s[1])

	for _, v := range []charset.Version{charset.FireRedLeafGreen, charset.Emerald} {
		_, err := EncodeSlot("*", v, charset.English)
		assert.ErrorIs(t, err, gen3errors.ErrInvalidCharacter, "version %s", v)
	}
}

func TestDecodeTerminatorTruncation(t *testing.T) {
	full := boxname.Slot{0xBB, 0xBC, 0xBD, 0xBE, 0xBF, 0xC0, 0xC1, 0xC2, 0xFF}
	assert.Equal(t, "ABCDEFGH", Decode(full, charset.Emerald, charset.English))

	for _, tail := range []byte{0x00, 0xBB, 0xFF} {
		s := boxname.Slot{0xBB, 0xBC, 0xFF, tail, tail, tail, tail, tail, tail}
		assert.Equal(t, "AB", Decode(s, charset.Emerald, charset.English), "tail 0x%02X", tail)
	}
}

func TestDecodeAbsentByte(t *testing.T) {
	s := boxname.Slot{0xBB, 0x0A, 0xBB, 0xFF}
	assert.Equal(t, "A A", Decode(s, charset.Emerald, charset.English))
	assert.Equal(t, "A▯A", Decode(s, charset.RubySapphire, charset.English))
	assert.Equal(t, "AこA", Decode(s, charset.FireRedLeafGreen, charset.English))
}

func TestDecodeMaskUnwritable(t *testing.T) {
	s := boxname.Slot{0xBB, 0x53, 0x0A, 0xEF, 0xBC, 0xFF}
	opts := DecodeOptions{MaskUnwritable: true}
	assert.Equal(t, "APK▯▶B", Decode(s, charset.RubySapphire, charset.English))
	assert.Equal(t, "A□□□B", DecodeWithOptions(s, charset.RubySapphire, charset.English, opts))
}

func TestDecodeRecord(t *testing.T) {
	r := boxname.New()
	require.NoError(t, Encode(r, 0, "ポケモン", charset.Emerald, charset.Japanese))
	require.NoError(t, Encode(r, 13, "ボックス", charset.Emerald, charset.Japanese))

	names := DecodeRecord(r, charset.Emerald, charset.Japanese, DecodeOptions{})
	assert.Equal(t, "ポケモン", names[0])
	assert.Equal(t, "ボックス", names[13])
	for _, n := range names[1:13] {
		assert.Empty(t, n)
	}
}

func TestRoundTripAllTables(t *testing.T) {
	for _, v := range charset.Versions {
		for _, l := range charset.Languages {
			t.Run(string(v)+"/"+string(l), func(t *testing.T) {
				for _, g := range charset.EffectiveReverseTable(v, l).Glyphs() {
					s, err := EncodeSlot(g, v, l)
					require.NoError(t, err, "glyph %q", g)
					assert.Equal(t, g, Decode(s, v, l))
				}
			})
		}
	}
}

func TestRoundTripBytes(t *testing.T) {
	v, l := charset.Emerald, charset.English
	s := boxname.Slot{0xC2, 0xE9, 0xB5, 0xA1, 0x16, 0xB0, 0xAB, 0xF1, 0xFF}
	text := Decode(s, v, l)
	back, err := EncodeSlot(text, v, l)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lang  charset.Language
		want  string
	}{
		{"fullwidth_to_narrow", "ＰＯＫé", charset.English, "POKé"},
		{"decomposed_accent", "e\u0301", charset.French, "\u00e9"},
		{"quotes_english", `"HI" it's`, charset.English, "“HI” it’s"},
		{"quotes_french", `"OUI"`, charset.French, "«OUI»"},
		{"quotes_german", `"JA"`, charset.German, "„JA“"},
		{"narrow_to_fullwidth", "ABC 123", charset.Japanese, "ＡＢＣ　１２３"},
		{"halfwidth_katakana", "ｱｲ", charset.Japanese, "アイ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, tt.lang))
		})
	}

	_, err := EncodeSlot(Normalize("ＰＯＫé", charset.English), charset.Emerald, charset.English)
	assert.NoError(t, err)
}
