package crypto

import (
	"encoding/hex"
	"sync"
	"testing"

	"wirecodec/codec"

	"github.com/stretchr/testify/require"
)

type input struct {
	HashCacher

	data string
}

func (i *input) Encode(w codec.Writer) error {
	return codec.EncodeFields(
		w,
		i.data,
	)
}

func (i *input) Decode(r codec.Reader) error {
	return codec.DecodeFields(
		r,
		&i.data,
	)
}

func (i *input) Hash() (Hash, error) {
	return i.HashCacher.Hash(i, codec.NewConfig().WithVarInts())
}

func TestHashCacher_Hash(t *testing.T) {
	in := &input{
		data: "hello",
	}

	runs := 10
	var wg sync.WaitGroup
	wg.Add(runs)
	for i := 0; i < runs; i++ {
		go func() {
			defer wg.Done()
			h, err := in.Hash()
			require.NoError(t, err)
			require.Equal(t, "1cac82bdb18fa434f7af6bd97d5ee7dbd17e45c8eb8921a874427a0886e5a93a", hex.EncodeToString(h[:]))
		}()
	}

	wg.Wait()
}

func TestHashCacher_Error(t *testing.T) {
	var hc HashCacher
	in := &input{data: "too long for the limit"}
	_, err := hc.Hash(in, codec.NewConfig().WithLimit(4))
	require.Error(t, err)
	_, again := hc.Hash(in, codec.NewConfig())
	require.Equal(t, err, again)
}
