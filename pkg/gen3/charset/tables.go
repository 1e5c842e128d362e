package charset

// Character tables.

// Japanese table, one string per 16-byte row starting at the given byte.
var japaneseRows = []struct {
	start byte
	row   string
}{
	{0x00, "　あいうえおかきくけこさしすせそ"},
	{0x10, "たちつてとなにぬねのはひふへほま"},
	{0x20, "みむめもやゆよらりるれろわをんぁ"},
	{0x30, "ぃぅぇぉゃゅょがぎぐげござじずぜ"},
	{0x40, "ぞだぢづでどばびぶべぼぱぴぷぺぽ"},
	{0x50, "っアイウエオカキクケコサシスセソ"},
	{0x60, "タチツテトナニヌネノハヒフヘホマ"},
	{0x70, "ミムメモヤユヨラリルレロワヲンァ"},
	{0x80, "ィゥェォャュョガギグゲゴザジズゼ"},
	{0x90, "ゾダヂヅデドバビブベボパピプペポ"},
	{0xA0, "ッ０１２３４５６７８９！？。ー・"},
	{0xB0, "‥『』「」♂♀円．×／ＡＢＣＤＥ"},
	{0xC0, "ＦＧＨＩＪＫＬＭＮＯＰＱＲＳＴＵ"},
	{0xD0, "ＶＷＸＹＺａｂｃｄｅｆｇｈｉｊｋ"},
	{0xE0, "ｌｍｎｏｐｑｒｓｔｕｖｗｘｙｚ▶"},
	{0xF0, "：ÄÖÜäöü"},
}

// International table shared by the western languages. Glyphs may be more
// than one character where the game font draws a ligature ("PK", "Lv").
var internationalGlyphs = map[byte]string{
	0x00: " ", 0x01: "À", 0x02: "Á", 0x03: "Â", 0x04: "Ç", 0x05: "È", 0x06: "É", 0x07: "Ê",
	0x08: "Ë", 0x09: "Ì", 0x0A: "▯", 0x0B: "Î", 0x0C: "Ï", 0x0D: "Ò", 0x0E: "Ó", 0x0F: "Ô",
	0x10: "Œ", 0x11: "Ù", 0x12: "Ú", 0x13: "Û", 0x14: "Ñ", 0x15: "ß", 0x16: "à", 0x17: "á",
	0x18: "▯", 0x19: "ç", 0x1A: "è", 0x1B: "é", 0x1C: "ê", 0x1D: "ë", 0x1E: "ì", 0x1F: "▯",
	0x20: "î", 0x21: "ï", 0x22: "ò", 0x23: "ó", 0x24: "ô", 0x25: "œ", 0x26: "ù", 0x27: "ú",
	0x28: "û", 0x29: "ñ", 0x2A: "º", 0x2B: "ª", 0x2C: "ᵉʳ", 0x2D: "&", 0x2E: "+", 0x2F: "▯",
	0x30: "*", 0x31: "*", 0x32: "*", 0x33: "*", 0x34: "Lv", 0x35: "=", 0x36: ";",

	0x51: "¿", 0x52: "¡", 0x53: "PK", 0x54: "MN", 0x55: "PO", 0x56: "Ké", 0x57: "BL", 0x58: "OC",
	0x5A: "Í", 0x5B: "%", 0x5C: "(", 0x5D: ")",
	0x68: "â", 0x6F: "í",
	0x84: "ᵉ", 0x85: "<", 0x86: ">",

	0xA0: "ʳᵉ", 0xA1: "0", 0xA2: "1", 0xA3: "2", 0xA4: "3", 0xA5: "4", 0xA6: "5", 0xA7: "6",
	0xA8: "7", 0xA9: "8", 0xAA: "9", 0xAB: "!", 0xAC: "?", 0xAD: ".", 0xAE: "-", 0xAF: "・",
	0xB0: "…", 0xB1: "“", 0xB2: "”", 0xB3: "‘", 0xB4: "’", 0xB5: "♂", 0xB6: "♀", 0xB7: "$",
	0xB8: ",", 0xB9: "×", 0xBA: "/",
	0xEF: "▶",
	0xF0: ":", 0xF1: "Ä", 0xF2: "Ö", 0xF3: "Ü", 0xF4: "ä", 0xF5: "ö", 0xF6: "ü",
}

// Per-language differences from the international table.
var languageOverrides = map[Language]map[byte]string{
	French: {0xB1: "«", 0xB2: "»"},
	German: {0xB1: "„", 0xB2: "“", 0xB3: "‚", 0xB4: "‘"},
}

// JapaneseReserved are the western positions that only carry placeholder
// glyphs; the Japanese font draws kana there.
var JapaneseReserved = []byte{0x0A, 0x18, 0x1F, 0x2F, 0x30, 0x31, 0x32, 0x33}

// Bytes the in-game naming screen cannot produce, on top of placeholders.
var (
	japaneseUnwritable      = []byte{0xEF}
	internationalUnwritable = []byte{0x2C, 0x34, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x84, 0xA0, 0xEF}
)

func buildJapanese() *Table {
	t := &Table{}
	for _, r := range japaneseRows {
		b := int(r.start)
		for _, c := range r.row {
			t.set(byte(b), string(c))
			b++
		}
	}
	return t
}

func buildInternational(l Language) *Table {
	t := &Table{}
	for b, g := range internationalGlyphs {
		t.set(b, g)
	}
	for b := 0; b < 26; b++ {
		t.set(byte(0xBB+b), string(rune('A'+b)))
		t.set(byte(0xD5+b), string(rune('a'+b)))
	}
	for b, g := range languageOverrides[l] {
		t.set(b, g)
	}
	return t
}
