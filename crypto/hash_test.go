package crypto

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"wirecodec/codec"

	"github.com/stretchr/testify/require"
)

func TestBlake2B256(t *testing.T) {
	tests := []struct {
		in  []string
		out string
	}{
		{
			[]string{""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"", "", "", ""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"cafe"},
			"4e400278c29c37ee640391dfb9792390a8ac9adb6200ed47c725a86099a8586c",
		},
		{
			[]string{"0000000000000000000000000000000000000000000000000000000000000000"},
			"89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3",
		},
		{
			[]string{"00000000000000000000000000000000", "00000000000000000000000000000000"},
			"89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3",
		},
	}
	for _, tt := range tests {
		var pieces [][]byte
		for _, hexPiece := range tt.in {
			piece, err := hex.DecodeString(hexPiece)
			require.NoError(t, err)
			pieces = append(pieces, piece)
		}
		out := Blake2B256(pieces...).String()
		require.Equal(t, tt.out, out)
	}
}

func TestHashOf(t *testing.T) {
	h, err := HashOf("hello", codec.NewConfig())
	require.NoError(t, err)
	require.Equal(t, "0ff0cde7b7042e0fc84c0e0c325fa238fafacdfe7a170dc2e9f45595e8deb2d4", h.String())

	enc, err := codec.Encode("hello", codec.NewConfig())
	require.NoError(t, err)
	require.Equal(t, Blake2B256(enc), h)

	_, err = HashOf("hello", codec.NewConfig().WithLimit(8))
	require.Error(t, err)
}

func TestHash_Codec(t *testing.T) {
	h := Blake2B256([]byte("cafe"))
	b, err := codec.Encode(h, codec.NewConfig().WithVarInts())
	require.NoError(t, err)
	require.Equal(t, h.Bytes(), b)

	var out Hash
	require.NoError(t, codec.Decode(b, &out, codec.NewConfig()))
	require.Equal(t, h, out)

	err = codec.Decode(b[:31], &out, codec.NewConfig())
	require.Error(t, err)
}

func TestHash_JSON(t *testing.T) {
	h := Blake2B256([]byte("cafe"))
	b, err := json.Marshal(&h)
	require.NoError(t, err)
	require.Equal(t, "\""+h.String()+"\"", string(b))

	var out Hash
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, h, out)

	_, err = NewHashFromHex("zz")
	require.Error(t, err)
	_, err = NewHashFromHex("cafe")
	require.Error(t, err)
}
