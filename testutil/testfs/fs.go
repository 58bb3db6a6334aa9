package testfs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const tempPrefix = "wirectest_"

// NewTempDir creates an empty directory and returns it along with a func
// that removes it.
func NewTempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", tempPrefix)
	require.NoError(t, err)
	return dir, func() {
		require.NoError(t, os.RemoveAll(dir))
	}
}

func NewTempFile(t *testing.T) (*os.File, func()) {
	f, err := ioutil.TempFile("", tempPrefix)
	require.NoError(t, err)
	return f, func() {
		require.NoError(t, f.Close())
		require.NoError(t, os.Remove(f.Name()))
	}
}

// WriteFile writes data to name inside dir, creating intermediate
// directories, and returns the file's path.
func WriteFile(t *testing.T, dir string, name string, data []byte) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0700))
	require.NoError(t, ioutil.WriteFile(p, data, 0644))
	return p
}
