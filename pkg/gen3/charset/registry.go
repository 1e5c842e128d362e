package charset

import (
	"fmt"

	"github.com/provide-io/boxnames/go/boxnames/pkg/logging"
)

var tableLogger = logging.Named("gen3.charset")

type pair struct {
	version  Version
	language Language
}

var (
	baseTables        = make(map[Language]*Table)
	baseReverseTables = make(map[Language]*ReverseTable)
	effectiveTables   = make(map[pair]*Table)
	effectiveReverse  = make(map[pair]*ReverseTable)
	writableSets      = make(map[Language]*[256]bool)
)

func init() {
	for _, l := range Languages {
		var t *Table
		if l.IsJapanese() {
			t = buildJapanese()
		} else {
			t = buildInternational(l)
		}
		baseTables[l] = t
		baseReverseTables[l] = buildReverse(t)
		writableSets[l] = buildWritable(l, t)
	}

	for _, v := range Versions {
		for _, l := range Languages {
			t := Apply(baseTables[l], versionRules[v], l, BaseTable)
			key := pair{version: v, language: l}
			effectiveTables[key] = t
			effectiveReverse[key] = buildReverse(t)
		}
	}

	tableLogger.Trace("🗂️ Character tables loaded",
		"languages", len(baseTables),
		"effective", len(effectiveTables),
	)
}

// BaseTable returns the shared base table of l. It panics for an
// unsupported language.
func BaseTable(l Language) *Table {
	t, ok := baseTables[l]
	if !ok {
		panic(fmt.Sprintf("charset: unsupported language %q", l))
	}
	return t
}

// BaseReverseTable returns the shared reverse table of l's base table.
func BaseReverseTable(l Language) *ReverseTable {
	r, ok := baseReverseTables[l]
	if !ok {
		panic(fmt.Sprintf("charset: unsupported language %q", l))
	}
	return r
}

// EffectiveTable returns the table used by version v for language l. It
// panics for an unsupported pair; validate input with ParseVersion and
// ParseLanguage first.
func EffectiveTable(v Version, l Language) *Table {
	t, ok := effectiveTables[pair{version: v, language: l}]
	if !ok {
		panic(fmt.Sprintf("charset: unsupported version/language %q/%q", v, l))
	}
	return t
}

// EffectiveReverseTable returns the reverse table used to encode text for
// version v and language l.
func EffectiveReverseTable(v Version, l Language) *ReverseTable {
	r, ok := effectiveReverse[pair{version: v, language: l}]
	if !ok {
		panic(fmt.Sprintf("charset: unsupported version/language %q/%q", v, l))
	}
	return r
}
