package view

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/codec"
)

// Kind names one of the record views.
type Kind string

const (
	KindRaw     Kind = "raw"
	KindU16     Kind = "u16"
	KindU32     Kind = "u32"
	KindCodeGen Kind = "codegen"
	KindPaste   Kind = "paste"
)

// Kinds lists the views in menu order.
var Kinds = []Kind{KindRaw, KindU16, KindU32, KindCodeGen, KindPaste}

// ParseKind parses a view name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown view %q (want one of %v)", s, Kinds)
}

// ParseByteOrder parses "little" or "big".
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown endianness %q (want little or big)", s)
	}
}

// Options selects how a record is rendered.
type Options struct {
	Kind     Kind
	Order    binary.ByteOrder
	Version  charset.Version
	Language charset.Language
	Decode   codec.DecodeOptions
}

// Render renders r in the requested view. Version and Language are only
// used by the paste view.
func Render(r *boxname.Record, opts Options) (string, error) {
	order := opts.Order
	if order == nil {
		order = binary.LittleEndian
	}
	data := r.Bytes()
	switch opts.Kind {
	case KindRaw, "":
		return FormatHex(data), nil
	case KindU16:
		return FormatWords(data, 2, order)
	case KindU32:
		return FormatWords(data, 4, order)
	case KindCodeGen:
		return FormatCodeGen(data), nil
	case KindPaste:
		names := codec.DecodeRecord(r, opts.Version, opts.Language, opts.Decode)
		return FormatPaste(names, opts.Language), nil
	default:
		return "", fmt.Errorf("unknown view %q", opts.Kind)
	}
}
