package store

import (
	"wirecodec/codec"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// ErrNotFound is returned by Get when no value is stored under a key.
var ErrNotFound = leveldb.ErrNotFound

// Put encodes v under cfg and stores it under key.
func Put(db *leveldb.DB, key []byte, v interface{}, cfg codec.Config) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		return PutTx(tx, key, v, cfg)
	})
}

func PutTx(tx *leveldb.Transaction, key []byte, v interface{}, cfg codec.Config) error {
	data, err := codec.Encode(v, cfg)
	if err != nil {
		return errors.Wrapf(err, "error encoding value for key %s", key)
	}
	if err := tx.Put(key, data, nil); err != nil {
		return errors.Wrap(err, "error putting value")
	}
	return nil
}

// Get decodes the value stored under key into v. Stored bytes must decode
// exactly under cfg; a missing key yields an error matching ErrNotFound.
func Get(db *leveldb.DB, key []byte, v interface{}, cfg codec.Config) error {
	data, err := db.Get(key, nil)
	if err != nil {
		return errors.Wrap(err, "error getting value")
	}
	if err := codec.Decode(data, v, cfg); err != nil {
		logger.Warn("failed to decode stored value", "key", string(key), "err", err)
		return errors.Wrapf(err, "error decoding value for key %s", key)
	}
	return nil
}

func Has(db *leveldb.DB, key []byte) (bool, error) {
	has, err := db.Has(key, nil)
	if err != nil {
		return false, errors.Wrap(err, "error checking key existence")
	}
	return has, nil
}

func DeleteTx(tx *leveldb.Transaction, key []byte) error {
	if err := tx.Delete(key, nil); err != nil {
		return errors.Wrap(err, "error deleting value")
	}
	return nil
}

// Truncate deletes every key in ks.
func Truncate(db *leveldb.DB, ks Keyspace) error {
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		iter := tx.NewIterator(ks.Range(), nil)
		defer iter.Release()
		for iter.Next() {
			if err := tx.Delete(iter.Key(), nil); err != nil {
				return errors.Wrap(err, "error deleting store key")
			}
		}
		return iter.Error()
	})
	if err != nil {
		return errors.Wrap(err, "error truncating store")
	}
	return nil
}
