package errors

import (
	"errors"
	"fmt"
)

var (
	// Input errors ✏️
	ErrInvalidCharacter = errors.New("❌ invalid character")
	ErrMalformedInput   = errors.New("❌ malformed input")
	ErrInvalidHex       = errors.New("❌ invalid hex record")
	ErrInvalidWordWidth = errors.New("❌ invalid word width")

	// Slot errors 📂
	ErrInvalidSlotIndex = errors.New("❌ invalid slot index")

	// Table selection errors 🗂️
	ErrUnsupportedVersion  = errors.New("❌ unsupported game version")
	ErrUnsupportedLanguage = errors.New("❌ unsupported game language")
)

// InvalidCharacterError reports the first character of a name that has no
// byte in the active reverse table.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrInvalidCharacter, e.Char, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
