// Package shellparse splits editing-session command lines into words.
//
// Rules follow POSIX shell word splitting closely enough for box names:
// names with spaces are quoted, and characters that are awkward to type
// (the ideographic space, placeholder glyphs) can be written as \uXXXX
// inside double quotes.
package shellparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not properly closed
	ErrUnclosedQuote = errors.New("unclosed quote in command line")

	// ErrTrailingEscape is returned when a backslash appears at the end of input
	ErrTrailingEscape = errors.New("trailing escape character at end of command line")

	// ErrBadUnicodeEscape is returned for a malformed \uXXXX sequence
	ErrBadUnicodeEscape = errors.New("malformed \\u escape")
)

// Split parses a command line into words.
//
//   - Words are separated by whitespace
//   - Single quotes preserve literal values
//   - Double quotes allow \" \\ and \uXXXX escapes; other escapes are kept
//   - Backslash outside quotes escapes the next character
//   - An unquoted # at the start of a word starts a comment
//
// Examples:
//
//	Split(`set 1 "PROF OAK"`) => ["set", "1", "PROF OAK"]
//	Split(`set 2 'it''s'`)    => ["set", "2", "its"]
//	Split(`set 3 "\u3000あ"`) => ["set", "3", "　あ"]
//	Split(`show # all boxes`) => ["show"]
func Split(input string) ([]string, error) {
	result := []string{}
	var current strings.Builder
	var inSingle, inDouble, sawQuotes bool

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\\' && !inSingle:
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if !inDouble {
				current.WriteRune(next)
				continue
			}
			switch next {
			case '"', '\\':
				current.WriteRune(next)
			case 'u':
				if i+4 >= len(runes) {
					return nil, fmt.Errorf("%w: %q", ErrBadUnicodeEscape, string(runes[i-1:]))
				}
				code, err := strconv.ParseUint(string(runes[i+1:i+5]), 16, 32)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrBadUnicodeEscape, string(runes[i-1:i+5]))
				}
				current.WriteRune(rune(code))
				i += 4
			default:
				current.WriteRune('\\')
				current.WriteRune(next)
			}

		case ch == '\'' && !inDouble:
			if inSingle {
				sawQuotes = true
			}
			inSingle = !inSingle

		case ch == '"' && !inSingle:
			if inDouble {
				sawQuotes = true
			}
			inDouble = !inDouble

		case ch == '#' && !inSingle && !inDouble && current.Len() == 0 && !sawQuotes:
			i = len(runes)

		case unicode.IsSpace(ch) && !inSingle && !inDouble:
			if current.Len() > 0 || sawQuotes {
				result = append(result, current.String())
				current.Reset()
				sawQuotes = false
			}

		default:
			current.WriteRune(ch)
		}
	}

	if inSingle || inDouble {
		quoteType := "single"
		if inDouble {
			quoteType = "double"
		}
		return nil, fmt.Errorf("%w: unclosed %s quote", ErrUnclosedQuote, quoteType)
	}

	if current.Len() > 0 || sawQuotes {
		result = append(result, current.String())
	}
	return result, nil
}

// Join quotes words so that Split(Join(words)) returns them unchanged.
func Join(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = quote(w)
	}
	return strings.Join(parts, " ")
}

func quote(word string) string {
	if word == "" {
		return `""`
	}
	if !strings.ContainsFunc(word, needsQuoting) {
		return word
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, ch := range word {
		switch {
		case ch == '"' || ch == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		case unicode.IsSpace(ch) && ch != ' ':
			fmt.Fprintf(&sb, `\u%04X`, ch)
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func needsQuoting(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '\'' || ch == '"' || ch == '\\' || ch == '#'
}
