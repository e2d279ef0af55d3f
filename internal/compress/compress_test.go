package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	compressible := bytes.Repeat([]byte("kmeans-partition-"), 512)
	random := make([]byte, 1024)
	for i := range random {
		random[i] = byte(i*7919 + i*i*31)
	}

	tests := []struct {
		name string
		typ  Type
		data []byte
	}{
		{"None", None, compressible},
		{"LZ4", LZ4, compressible},
		{"ZSTD", ZSTD, compressible},
		{"LZ4Incompressible", LZ4, random},
		{"ZSTDEmpty", ZSTD, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Encode(tt.data, tt.typ)
			require.NoError(t, err)

			got, err := Decode(block, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(got))
			assert.True(t, bytes.Equal(tt.data, got))
		})
	}
}

func TestEncode_Shrinks(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 64*1024)
	for _, typ := range []Type{LZ4, ZSTD} {
		block, err := Encode(data, typ)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data)/2, typ.String())
	}
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode([]byte{1, 2}, LZ4)
	assert.ErrorIs(t, err, ErrCorrupt)

	block, err := Encode(bytes.Repeat([]byte("abc"), 1000), ZSTD)
	require.NoError(t, err)
	_, err = Decode(block[:len(block)-4], ZSTD)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestUnknownType(t *testing.T) {
	_, err := Encode([]byte("x"), Type(9))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "unknown(9)", Type(9).String())
}
