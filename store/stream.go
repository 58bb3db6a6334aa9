package store

import (
	"wirecodec/codec"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// Stream walks the values stored in a keyspace in key order.
type Stream struct {
	iter iterator.Iterator
	cfg  codec.Config
	key  []byte
	raw  []byte
}

func NewStream(db *leveldb.DB, ks Keyspace, cfg codec.Config) *Stream {
	return &Stream{
		iter: db.NewIterator(ks.Range(), nil),
		cfg:  cfg,
	}
}

// Next decodes the next value into v, or only advances when v is nil. It
// returns false once the stream is exhausted.
func (s *Stream) Next(v interface{}) (bool, error) {
	if !s.iter.Next() {
		if err := s.iter.Error(); err != nil {
			return false, errors.Wrap(err, "error iterating store")
		}
		return false, nil
	}
	s.key = append(s.key[:0], s.iter.Key()...)
	s.raw = append(s.raw[:0], s.iter.Value()...)
	if v == nil {
		return true, nil
	}
	if err := codec.Decode(s.raw, v, s.cfg); err != nil {
		return false, errors.Wrapf(err, "error decoding value for key %s", s.key)
	}
	return true, nil
}

// Key returns the key of the value most recently returned by Next.
func (s *Stream) Key() []byte {
	return s.key
}

// Raw returns the encoded bytes of the value most recently returned by
// Next. They are overwritten by the following call.
func (s *Stream) Raw() []byte {
	return s.raw
}

func (s *Stream) Close() error {
	s.iter.Release()
	return nil
}
