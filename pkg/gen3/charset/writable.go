package charset

import "fmt"

func buildWritable(l Language, t *Table) *[256]bool {
	w := &[256]bool{}
	for i := 0; i < len(w); i++ {
		g, ok := t.Lookup(byte(i))
		w[i] = ok && !isPlaceholder(g)
	}
	unwritable := internationalUnwritable
	if l.IsJapanese() {
		unwritable = japaneseUnwritable
	}
	for _, b := range unwritable {
		w[b] = false
	}
	return w
}

// Writable reports whether b can be produced on the naming screen of
// language l, independent of game version.
func Writable(l Language, b byte) bool {
	w, ok := writableSets[l]
	if !ok {
		panic(fmt.Sprintf("charset: unsupported language %q", l))
	}
	return w[b]
}
