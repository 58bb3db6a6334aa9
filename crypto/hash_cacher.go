package crypto

import (
	"sync"

	"wirecodec/codec"
)

// HashCacher computes the hash of an encoded value once. Embed it in types
// whose encoding does not change after construction.
type HashCacher struct {
	hash Hash
	err  error
	once sync.Once
}

func (h *HashCacher) Hash(enc codec.Encoder, cfg codec.Config) (Hash, error) {
	h.once.Do(func() {
		h.hash, h.err = HashOf(enc, cfg)
	})
	return h.hash, h.err
}
