// Package charset holds the Generation III character tables: one base table
// per language and the effective tables derived from them for each game
// version.
package charset

import (
	"fmt"
	"strings"

	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

// Language selects a base character table.
type Language string

const (
	Japanese Language = "JPN"
	English  Language = "ENG"
	French   Language = "FRA"
	Italian  Language = "ITA"
	German   Language = "GER"
	Spanish  Language = "SPA"
)

// Languages lists every supported language in table order.
var Languages = []Language{Japanese, English, French, Italian, German, Spanish}

// Version selects the per-game rule set applied on top of a base table.
type Version string

const (
	RubySapphire     Version = "RS"   // tables match the base tables
	FireRedLeafGreen Version = "FRLG" // arrows, ellipsis and Japanese back-fill
	Emerald          Version = "E"    // Japanese ellipsis, western reserved bytes removed
)

// Versions lists every supported game version.
var Versions = []Version{RubySapphire, FireRedLeafGreen, Emerald}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// IsJapanese reports whether l uses the Japanese table.
func (l Language) IsJapanese() bool {
	return l == Japanese
}

func (l Language) String() string {
	return string(l)
}

// Set implements pflag.Value.
func (l *Language) Set(s string) error {
	parsed, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements pflag.Value.
func (l *Language) Type() string {
	return "language"
}

// ParseLanguage parses a language tag such as "ENG" or "jpn".
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", gen3errors.ErrUnsupportedLanguage, s)
	}
	return l, nil
}

// Valid reports whether v is one of the supported game versions.
func (v Version) Valid() bool {
	for _, known := range Versions {
		if v == known {
			return true
		}
	}
	return false
}

func (v Version) String() string {
	return string(v)
}

// Set implements pflag.Value.
func (v *Version) Set(s string) error {
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Version) Type() string {
	return "version"
}

// ParseVersion parses a game version tag such as "RS", "frlg" or "E".
func ParseVersion(s string) (Version, error) {
	v := Version(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", gen3errors.ErrUnsupportedVersion, s)
	}
	return v, nil
}
