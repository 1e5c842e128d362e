package pkg

import (
	"fmt"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/codec"
	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

// DecodeNames decodes a raw 126-byte box-name block.
func DecodeNames(data []byte, version, language string, opts codec.DecodeOptions) ([boxname.SlotCount]string, error) {
	v, l, err := parsePair(version, language)
	if err != nil {
		return [boxname.SlotCount]string{}, err
	}
	r, err := boxname.Unpack(data)
	if err != nil {
		return [boxname.SlotCount]string{}, err
	}
	return codec.DecodeRecord(r, v, l, opts), nil
}

// EncodeNames encodes up to 14 names into a fresh block; boxes without a
// name stay empty.
func EncodeNames(names []string, version, language string) ([]byte, error) {
	v, l, err := parsePair(version, language)
	if err != nil {
		return nil, err
	}
	if len(names) > boxname.SlotCount {
		return nil, fmt.Errorf("%w: %d names for %d boxes", gen3errors.ErrMalformedInput, len(names), boxname.SlotCount)
	}
	r := boxname.New()
	for i, name := range names {
		if err := codec.Encode(r, i, name, v, l); err != nil {
			return nil, fmt.Errorf("box %d: %w", i+1, err)
		}
	}
	return r.Bytes(), nil
}

func parsePair(version, language string) (charset.Version, charset.Language, error) {
	v, err := charset.ParseVersion(version)
	if err != nil {
		return "", "", err
	}
	l, err := charset.ParseLanguage(language)
	if err != nil {
		return "", "", err
	}
	return v, l, nil
}
