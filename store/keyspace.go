package store

import (
	"bytes"
	"strings"

	"github.com/syndtr/goleveldb/leveldb/util"
)

// Keyspace namespaces keys so unrelated records can share a database. A key
// is the keyspace name and its parts joined by "/".
type Keyspace string

func (k Keyspace) Key(parts ...string) []byte {
	return []byte(strings.Join(append([]string{string(k)}, parts...), "/"))
}

// Sub returns a keyspace nested under k.
func (k Keyspace) Sub(name string) Keyspace {
	return Keyspace(k.Key(name))
}

// Range covers every key stored under k.
func (k Keyspace) Range() *util.Range {
	return util.BytesPrefix(k.Key(""))
}

// Trim strips the keyspace from key.
func (k Keyspace) Trim(key []byte) string {
	return string(bytes.TrimPrefix(key, k.Key("")))
}
