package pkg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/codec"
	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
)

func TestEncodeDecodeNames(t *testing.T) {
	data, err := EncodeNames([]string{"PROF.OAK", "", "BOX 3"}, "rs", "eng")
	require.NoError(t, err)
	require.Len(t, data, boxname.RecordSize)
	assert.Equal(t, []byte{0xCA, 0xCC, 0xC9, 0xC0, 0xAD, 0xC9, 0xBB, 0xC5, 0xFF}, data[:9])
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 9), data[9:18])

	names, err := DecodeNames(data, "RS", "ENG", codec.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "PROF.OAK", names[0])
	assert.Equal(t, "", names[1])
	assert.Equal(t, "BOX 3", names[2])
	assert.Equal(t, "", names[13])
}

func TestEncodeNamesErrors(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		version  string
		language string
		wantErr  error
	}{
		{"bad version", []string{"A"}, "GSC", "ENG", gen3errors.ErrUnsupportedVersion},
		{"bad language", []string{"A"}, "E", "CHS", gen3errors.ErrUnsupportedLanguage},
		{"too many names", make([]string, boxname.SlotCount+1), "E", "ENG", gen3errors.ErrMalformedInput},
		{"bad character", []string{"OK", "N@PE"}, "E", "ENG", gen3errors.ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeNames(tt.names, tt.version, tt.language)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := EncodeNames([]string{"OK", "N@PE"}, "E", "ENG")
	assert.Contains(t, err.Error(), "box 2")
}

func TestDecodeNamesErrors(t *testing.T) {
	_, err := DecodeNames(make([]byte, 10), "E", "ENG", codec.DecodeOptions{})
	assert.ErrorIs(t, err, gen3errors.ErrMalformedInput)

	_, err = DecodeNames(make([]byte, boxname.RecordSize), "X", "ENG", codec.DecodeOptions{})
	assert.ErrorIs(t, err, gen3errors.ErrUnsupportedVersion)
}
