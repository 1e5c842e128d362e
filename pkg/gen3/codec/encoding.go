package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

type tableEncoding struct {
	table   *charset.Table
	reverse *charset.ReverseTable
}

// Encoding exposes the effective table of (v, l) as an x/text encoding. The
// decoder drops everything from the first terminator until Reset; the
// encoder writes no terminators and fails on characters outside the table.
func Encoding(v charset.Version, l charset.Language) encoding.Encoding {
	return &tableEncoding{
		table:   charset.EffectiveTable(v, l),
		reverse: charset.EffectiveReverseTable(v, l),
	}
}

func (e *tableEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{table: e.table}}
}

func (e *tableEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{reverse: e.reverse}}
}

type decoder struct {
	table      *charset.Table
	terminated bool
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, b := range src {
		if d.terminated || b == boxname.Terminator {
			d.terminated = true
			nSrc++
			continue
		}
		g := d.table.Glyph(b)
		if len(g) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], g)
		nSrc++
	}
	return nDst, nSrc, nil
}

func (d *decoder) Reset() {
	d.terminated = false
}

type encoder struct {
	reverse *charset.ReverseTable
	pos     int
}

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])
		b, ok := e.reverse.LookupRune(c)
		if !ok {
			return nDst, nSrc, &gen3errors.InvalidCharacterError{Char: c, Position: e.pos}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc += size
		e.pos++
	}
	return nDst, nSrc, nil
}

func (e *encoder) Reset() {
	e.pos = 0
}
