// Package permissions parses the file modes used when writing raw records.
package permissions

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// DefaultRecordPerms is the mode of record files written without --mode.
const DefaultRecordPerms fs.FileMode = 0o644

// ParseMode parses an octal mode such as "644", "0600" or "0o640". An empty
// string yields DefaultRecordPerms. Only permission bits are accepted.
func ParseMode(s string) (fs.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultRecordPerms, nil
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0")
	if digits == "" {
		return 0, nil
	}
	val, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", s, err)
	}
	if val > uint64(fs.ModePerm) {
		return 0, fmt.Errorf("invalid file mode %q: only permission bits are allowed", s)
	}
	return fs.FileMode(val), nil
}

// FormatMode formats the permission bits of m as a 0-prefixed octal string.
func FormatMode(m fs.FileMode) string {
	return fmt.Sprintf("0%o", m.Perm())
}

// OwnerWritable reports whether the owner can write a file with mode m.
func OwnerWritable(m fs.FileMode) bool {
	return m&0o200 != 0
}
