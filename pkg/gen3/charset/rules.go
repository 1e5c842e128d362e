package charset

import "fmt"

// Selector restricts a Delta to a group of languages.
type Selector int

const (
	AllLanguages Selector = iota
	JapaneseOnly
	NonJapanese
)

// Matches reports whether the selector applies to l.
func (s Selector) Matches(l Language) bool {
	switch s {
	case JapaneseOnly:
		return l.IsJapanese()
	case NonJapanese:
		return !l.IsJapanese()
	default:
		return true
	}
}

func (s Selector) String() string {
	switch s {
	case JapaneseOnly:
		return "japanese"
	case NonJapanese:
		return "non-japanese"
	default:
		return "all"
	}
}

// Fill back-fills absent positions in [Lo, Hi] from another language's base
// table, using Default where that table is absent too.
type Fill struct {
	From    Language
	Lo, Hi  byte
	Default string
}

// Delta is one declarative step of a version's rules. Within a delta, Set is
// applied first, then Delete, then Fill.
type Delta struct {
	Languages Selector
	Set       map[byte]string
	Delete    []byte
	Fill      *Fill
}

// versionRules holds the deltas applied to a base table for each version.
var versionRules = map[Version][]Delta{
	RubySapphire: nil,
	FireRedLeafGreen: {
		{
			Languages: AllLanguages,
			Set:       map[byte]string{0xF7: "↑", 0xF8: "↓", 0xF9: "←", 0xB0: "…"},
		},
		{
			Languages: NonJapanese,
			Delete:    JapaneseReserved,
			Fill:      &Fill{From: Japanese, Lo: 0x0A, Hi: 0x9F, Default: " "},
		},
	},
	Emerald: {
		{
			Languages: JapaneseOnly,
			Set:       map[byte]string{0xB0: "…"},
		},
		{
			Languages: NonJapanese,
			Delete:    JapaneseReserved,
		},
	},
}

// Rules returns the deltas of v in application order.
func Rules(v Version) []Delta {
	rules, ok := versionRules[v]
	if !ok {
		panic(fmt.Sprintf("charset: unsupported version %q", v))
	}
	return rules
}

// Apply derives the effective table for language l by applying deltas to
// base. Fill sources are resolved through source. base is never modified.
func Apply(base *Table, deltas []Delta, l Language, source func(Language) *Table) *Table {
	t := base.clone()
	for _, d := range deltas {
		if !d.Languages.Matches(l) {
			continue
		}
		for b, g := range d.Set {
			t.set(b, g)
		}
		for _, b := range d.Delete {
			t.delete(b)
		}
		if d.Fill != nil {
			from := source(d.Fill.From)
			for i := int(d.Fill.Lo); i <= int(d.Fill.Hi); i++ {
				b := byte(i)
				if t.Has(b) {
					continue
				}
				if g, ok := from.Lookup(b); ok {
					t.set(b, g)
				} else {
					t.set(b, d.Fill.Default)
				}
			}
		}
	}
	return t
}
