package store

import (
	"wirecodec/codec"
	"wirecodec/log"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

type TxCb func(tx *leveldb.Transaction) error

var logger = log.WithModule("store")

func Open(path string) (*leveldb.DB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}
	logger.Debug("opened database", "path", path)
	return db, nil
}

// OpenBound opens the database at path and binds it to the layout of cfg.
// The database is closed again if the binding fails.
func OpenBound(path string, cfg codec.Config) (*leveldb.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := BindConfig(db, cfg); err != nil {
		if cErr := db.Close(); cErr != nil {
			logger.Error("error closing database", "err", cErr)
		}
		return nil, err
	}
	return db, nil
}

// WithTx runs cb inside a transaction. The transaction commits when cb
// returns nil and is discarded otherwise, including when cb panics.
func WithTx(db *leveldb.DB, cb TxCb) (err error) {
	tx, err := db.OpenTransaction()
	if err != nil {
		return errors.Wrap(err, "error opening transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Discard()
			panic(p)
		} else if err != nil {
			tx.Discard()
		} else if err = tx.Commit(); err != nil {
			err = errors.Wrap(err, "error committing transaction")
		}
	}()

	return cb(tx)
}
