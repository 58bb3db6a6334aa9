package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyspace_Key(t *testing.T) {
	base := Keyspace("foo")

	tests := []struct {
		in  []byte
		out string
	}{
		{base.Key("bar"), "foo/bar"},
		{base.Key(), "foo"},
		{base.Key(""), "foo/"},
		{base.Key("bar", "baz"), "foo/bar/baz"},
		{base.Sub("bar").Key("baz"), "foo/bar/baz"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, string(tt.in))
	}
}

func TestKeyspace_RangeAndTrim(t *testing.T) {
	ks := Keyspace("records")
	r := ks.Range()
	require.Equal(t, "records/", string(r.Start))
	require.Equal(t, "records0", string(r.Limit))
	require.Equal(t, "alpha", ks.Trim(ks.Key("alpha")))
	require.Equal(t, "other/alpha", ks.Trim([]byte("other/alpha")))
}
