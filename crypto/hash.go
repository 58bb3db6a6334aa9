package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"wirecodec/codec"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Hash is a BLAKE2b-256 digest. On the wire it is 32 raw bytes with no
// length prefix.
type Hash [32]byte

var ZeroHash Hash

type Hasher interface {
	Hash() (Hash, error)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Encode(w codec.Writer) error {
	for _, b := range h {
		if err := w.WriteUint8(b); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hash) Decode(r codec.Reader) error {
	var buf Hash
	for i := range buf {
		b, err := r.ReadUint8()
		if err != nil {
			return err
		}
		buf[i] = b
	}
	*h = buf
	return nil
}

func (h *Hash) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%x\"", h[:])), nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var hashStr string
	if err := json.Unmarshal(b, &hashStr); err != nil {
		return err
	}
	hash, err := NewHashFromHex(hashStr)
	if err != nil {
		return err
	}
	*h = hash
	return nil
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) Hash() (Hash, error) {
	return h, nil
}

func Blake2B256(data ...[]byte) Hash {
	// never returns an error if key is nil
	h, _ := blake2b.New256(nil)
	for _, chunk := range data {
		h.Write(chunk)
	}
	b := h.Sum(nil)
	var out Hash
	copy(out[:], b)
	return out
}

// HashOf returns the BLAKE2b-256 digest of v's encoding under cfg. The
// encoding streams straight into the hash state.
func HashOf(v interface{}, cfg codec.Config) (Hash, error) {
	h, _ := blake2b.New256(nil)
	if err := codec.EncodeTo(h, v, cfg); err != nil {
		return ZeroHash, err
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out, nil
}

func NewHashFromBytes(b []byte) (Hash, error) {
	if len(b) != 32 {
		return ZeroHash, errors.New("hash must be 32 bytes")
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

func NewHashFromHex(in string) (Hash, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return ZeroHash, errors.Wrap(err, "invalid hash hex")
	}
	return NewHashFromBytes(b)
}
