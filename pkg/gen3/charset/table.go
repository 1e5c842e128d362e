package charset

import (
	"sort"
	"unicode/utf8"
)

// Table maps every byte value to a display glyph. Positions without a glyph
// are absent rather than empty strings. Tables are built once and shared;
// callers only ever see them through read accessors.
type Table struct {
	glyphs [256]string
}

// Lookup returns the glyph stored at b.
func (t *Table) Lookup(b byte) (string, bool) {
	g := t.glyphs[b]
	return g, g != ""
}

// Glyph returns the glyph stored at b, or a single space when b is absent.
func (t *Table) Glyph(b byte) string {
	if g := t.glyphs[b]; g != "" {
		return g
	}
	return " "
}

// Has reports whether b has a glyph.
func (t *Table) Has(b byte) bool {
	return t.glyphs[b] != ""
}

// Len returns the number of populated positions.
func (t *Table) Len() int {
	n := 0
	for _, g := range t.glyphs {
		if g != "" {
			n++
		}
	}
	return n
}

func (t *Table) clone() *Table {
	c := *t
	return &c
}

func (t *Table) set(b byte, glyph string) {
	t.glyphs[b] = glyph
}

func (t *Table) delete(b byte) {
	t.glyphs[b] = ""
}

// ReverseTable maps a single display character back to the byte that
// encodes it.
type ReverseTable struct {
	bytes map[string]byte
}

// Lookup returns the byte for glyph.
func (r *ReverseTable) Lookup(glyph string) (byte, bool) {
	b, ok := r.bytes[glyph]
	return b, ok
}

// LookupRune is Lookup for a single rune.
func (r *ReverseTable) LookupRune(c rune) (byte, bool) {
	return r.Lookup(string(c))
}

// Len returns the number of encodable characters.
func (r *ReverseTable) Len() int {
	return len(r.bytes)
}

// Glyphs returns every encodable character ordered by byte value.
func (r *ReverseTable) Glyphs() []string {
	out := make([]string, 0, len(r.bytes))
	for g := range r.bytes {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.bytes[out[i]] < r.bytes[out[j]]
	})
	return out
}

// Placeholder pins the byte a duplicated placeholder glyph encodes to.
type Placeholder struct {
	Glyph     string
	Canonical byte
}

// Placeholders lists the legacy placeholder glyphs of the western tables.
// A placeholder is encodable only while its canonical byte still carries it.
var Placeholders = []Placeholder{
	{Glyph: "▯", Canonical: 0x0A},
	{Glyph: "*", Canonical: 0x30},
}

func isPlaceholder(glyph string) bool {
	for _, p := range Placeholders {
		if p.Glyph == glyph {
			return true
		}
	}
	return false
}

// buildReverse derives the reverse table of t. Multi-character glyphs such
// as "PK" cannot be typed and are left out; for duplicated glyphs the lowest
// byte wins, except placeholders which use their pinned byte.
func buildReverse(t *Table) *ReverseTable {
	r := &ReverseTable{bytes: make(map[string]byte)}
	for i := 0; i < len(t.glyphs); i++ {
		g := t.glyphs[i]
		if g == "" || isPlaceholder(g) || utf8.RuneCountInString(g) != 1 {
			continue
		}
		if _, taken := r.bytes[g]; !taken {
			r.bytes[g] = byte(i)
		}
	}
	for _, p := range Placeholders {
		if g, ok := t.Lookup(p.Canonical); ok && g == p.Glyph {
			r.bytes[p.Glyph] = p.Canonical
		}
	}
	return r
}
