package store

import (
	"fmt"

	"wirecodec/codec"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

var (
	metaSpace      = Keyspace("meta")
	codecConfigKey = metaSpace.Key("codec-config")
)

// BindConfig records the wire layout of cfg as the one values in db are
// encoded with. The first call stores it; later calls fail if cfg lays
// values out differently, since stored values are not self-describing.
// Limits and the trailing bytes policy may change freely.
func BindConfig(db *leveldb.DB, cfg codec.Config) error {
	desc := layout(cfg)
	var stored string
	err := Get(db, codecConfigKey, &stored, codec.NewConfig())
	if errors.Is(err, ErrNotFound) {
		logger.Info("binding codec config", "config", desc)
		return Put(db, codecConfigKey, desc, codec.NewConfig())
	}
	if err != nil {
		return errors.Wrap(err, "error reading bound codec config")
	}
	if stored != desc {
		return errors.Errorf("database is bound to codec config %q, not %q", stored, desc)
	}
	return nil
}

func layout(cfg codec.Config) string {
	return fmt.Sprintf("endian=%s ints=%s", cfg.Endianness(), cfg.IntEncoding())
}
