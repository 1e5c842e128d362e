package charset

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"ENG", English, false},
		{"jpn", Japanese, false},
		{" ger ", German, false},
		{"Spa", Spanish, false},
		{"", "", true},
		{"KOR", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, gen3errors.ErrUnsupportedLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"RS", RubySapphire, false},
		{"frlg", FireRedLeafGreen, false},
		{"e", Emerald, false},
		{"DP", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, gen3errors.ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagValues(t *testing.T) {
	var v Version
	require.NoError(t, v.Set("frlg"))
	assert.Equal(t, FireRedLeafGreen, v)
	assert.Equal(t, "version", v.Type())
	assert.Error(t, v.Set("XD"))
	assert.Equal(t, FireRedLeafGreen, v, "failed Set must not change the value")

	var l Language
	require.NoError(t, l.Set("ita"))
	assert.Equal(t, "ITA", l.String())
	assert.Equal(t, "language", l.Type())
}

func TestBaseTables(t *testing.T) {
	for _, l := range Languages {
		t.Run(string(l), func(t *testing.T) {
			table := BaseTable(l)
			assert.Same(t, table, BaseTable(l), "base tables are shared")
			assert.False(t, table.Has(0xFF), "terminator has no glyph")
		})
	}

	jpn := BaseTable(Japanese)
	g, ok := jpn.Lookup(0x01)
	require.True(t, ok)
	assert.Equal(t, "あ", g)
	assert.Equal(t, "‥", jpn.Glyph(0xB0))
	assert.Equal(t, 247, jpn.Len())

	eng := BaseTable(English)
	for i, want := range []string{"A", "B", "Z"} {
		b := []byte{0xBB, 0xBC, 0xD4}[i]
		assert.Equal(t, want, eng.Glyph(b))
	}
	assert.Equal(t, "a", eng.Glyph(0xD5))
	assert.Equal(t, "z", eng.Glyph(0xEE))
	assert.Equal(t, "0", eng.Glyph(0xA1))
	assert.False(t, eng.Has(0x59))
	assert.Equal(t, " ", eng.Glyph(0x59), "absent positions display as a space")

	assert.Equal(t, "«", BaseTable(French).Glyph(0xB1))
	assert.Equal(t, "„", BaseTable(German).Glyph(0xB1))
	assert.Equal(t, "“", BaseTable(Spanish).Glyph(0xB1))
}

func TestUnsupportedPanics(t *testing.T) {
	assert.Panics(t, func() { BaseTable("KOR") })
	assert.Panics(t, func() { EffectiveTable("XD", English) })
	assert.Panics(t, func() { EffectiveReverseTable(Emerald, "KOR") })
	assert.Panics(t, func() { Rules("XD") })
}

func TestRubySapphireMatchesBase(t *testing.T) {
	for _, l := range Languages {
		base := BaseTable(l)
		eff := EffectiveTable(RubySapphire, l)
		for i := 0; i < 256; i++ {
			want, _ := base.Lookup(byte(i))
			got, _ := eff.Lookup(byte(i))
			assert.Equal(t, want, got, "%s byte 0x%02X", l, i)
		}
	}
}

func TestFireRedLeafGreen(t *testing.T) {
	for _, l := range Languages {
		t.Run(string(l), func(t *testing.T) {
			table := EffectiveTable(FireRedLeafGreen, l)
			assert.Equal(t, "↑", table.Glyph(0xF7))
			assert.Equal(t, "↓", table.Glyph(0xF8))
			assert.Equal(t, "←", table.Glyph(0xF9))
			assert.Equal(t, "…", table.Glyph(0xB0))
		})
	}

	jpn := BaseTable(Japanese)
	eng := EffectiveTable(FireRedLeafGreen, English)
	base := BaseTable(English)
	reserved := make(map[byte]bool)
	for _, b := range JapaneseReserved {
		reserved[b] = true
	}
	for i := 0x0A; i <= 0x9F; i++ {
		b := byte(i)
		if base.Has(b) && !reserved[b] {
			assert.Equal(t, base.Glyph(b), eng.Glyph(b), "byte 0x%02X keeps its western glyph", b)
			continue
		}
		assert.Equal(t, jpn.Glyph(b), eng.Glyph(b), "byte 0x%02X is back-filled from Japanese", b)
	}
	assert.Equal(t, "こ", eng.Glyph(0x0A))
	assert.Equal(t, "ぃ", eng.Glyph(0x30))
	assert.Equal(t, "ケ", eng.Glyph(0x59))
	assert.Equal(t, "ʳᵉ", eng.Glyph(0xA0), "fill stops at 0x9F")
	assert.False(t, eng.Has(0xFA))
}

func TestEmerald(t *testing.T) {
	assert.Equal(t, "…", EffectiveTable(Emerald, Japanese).Glyph(0xB0))
	assert.False(t, EffectiveTable(Emerald, Japanese).Has(0xF7))

	for _, l := range Languages[1:] {
		t.Run(string(l), func(t *testing.T) {
			table := EffectiveTable(Emerald, l)
			for _, b := range JapaneseReserved {
				assert.False(t, table.Has(b), "byte 0x%02X is deleted", b)
			}
			assert.False(t, table.Has(0x37), "no back-fill")
			assert.Equal(t, BaseTable(l).Glyph(0xB1), table.Glyph(0xB1))
		})
	}
}

func TestBaseTablesUnchangedByRules(t *testing.T) {
	eng := BaseTable(English)
	assert.Equal(t, "▯", eng.Glyph(0x0A))
	assert.Equal(t, "*", eng.Glyph(0x30))
	assert.False(t, eng.Has(0xF7))
	assert.Equal(t, "‥", BaseTable(Japanese).Glyph(0xB0))
}

func TestReverseTablePlaceholders(t *testing.T) {
	base := BaseReverseTable(English)
	b, ok := base.Lookup("▯")
	require.True(t, ok)
	assert.Equal(t, byte(0x0A), b)
	b, ok = base.Lookup("*")
	require.True(t, ok)
	assert.Equal(t, byte(0x30), b)

	rs := EffectiveReverseTable(RubySapphire, French)
	b, ok = rs.LookupRune('*')
	require.True(t, ok)
	assert.Equal(t, byte(0x30), b)

	for _, v := range []Version{FireRedLeafGreen, Emerald} {
		r := EffectiveReverseTable(v, English)
		_, ok := r.Lookup("▯")
		assert.False(t, ok, "%s drops ▯", v)
		_, ok = r.Lookup("*")
		assert.False(t, ok, "%s drops *", v)
	}
}

func TestReverseTableConsistency(t *testing.T) {
	for _, v := range Versions {
		for _, l := range Languages {
			t.Run(string(v)+"/"+string(l), func(t *testing.T) {
				table := EffectiveTable(v, l)
				reverse := EffectiveReverseTable(v, l)
				require.NotZero(t, reverse.Len())
				for _, g := range reverse.Glyphs() {
					b, _ := reverse.Lookup(g)
					assert.Equal(t, g, table.Glyph(b))
					assert.Equal(t, 1, utf8.RuneCountInString(g))
				}
				_, ok := reverse.Lookup("PK")
				assert.False(t, ok, "ligatures are not typeable")
			})
		}
	}
}

func TestReverseLowestByteWins(t *testing.T) {
	var tbl Table
	tbl.set(0x40, "x")
	tbl.set(0x10, "x")
	tbl.set(0x20, "yz")
	r := buildReverse(&tbl)
	b, ok := r.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, byte(0x10), b)
	assert.Equal(t, 1, r.Len())
}

func TestApplyFillDefault(t *testing.T) {
	var base, sparse Table
	base.set(0x00, "a")
	base.set(0x03, "d")
	sparse.set(0x01, "b")

	deltas := []Delta{{
		Languages: NonJapanese,
		Delete:    []byte{0x03},
		Fill:      &Fill{From: Japanese, Lo: 0x00, Hi: 0x04, Default: " "},
	}}
	source := func(l Language) *Table {
		assert.Equal(t, Japanese, l)
		return &sparse
	}

	got := Apply(&base, deltas, English, source)
	assert.Equal(t, "a", got.Glyph(0x00))
	assert.Equal(t, "b", got.Glyph(0x01))
	for _, b := range []byte{0x02, 0x03, 0x04} {
		g, ok := got.Lookup(b)
		assert.True(t, ok, "byte 0x%02X is filled", b)
		assert.Equal(t, " ", g)
	}
	assert.False(t, got.Has(0x05))
	assert.Equal(t, "d", base.Glyph(0x03), "base is not modified")

	untouched := Apply(&base, deltas, Japanese, source)
	assert.Equal(t, "d", untouched.Glyph(0x03))
}

func TestSelector(t *testing.T) {
	assert.True(t, AllLanguages.Matches(Japanese))
	assert.True(t, JapaneseOnly.Matches(Japanese))
	assert.False(t, JapaneseOnly.Matches(German))
	assert.True(t, NonJapanese.Matches(Spanish))
	assert.False(t, NonJapanese.Matches(Japanese))
	assert.Equal(t, "non-japanese", NonJapanese.String())
}

func TestWritable(t *testing.T) {
	assert.True(t, Writable(English, 0xBB))
	assert.False(t, Writable(English, 0x0A), "placeholder")
	assert.False(t, Writable(English, 0x53), "PK ligature")
	assert.False(t, Writable(English, 0xEF))
	assert.False(t, Writable(English, 0x59), "absent")
	assert.True(t, Writable(Japanese, 0x01))
	assert.False(t, Writable(Japanese, 0xEF))
	assert.False(t, Writable(Japanese, 0xFF))
}
