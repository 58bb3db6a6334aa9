package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	for level, name := range levelNames {
		parsed, err := NewLevel(name)
		require.NoError(t, err)
		require.Equal(t, level, parsed)
		require.Equal(t, name, level.String())
	}

	parsed, err := NewLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, parsed)

	_, err = NewLevel("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetJSON(true)
	defer func() {
		SetOutput(os.Stderr)
		SetJSON(false)
		SetLevel(LevelTrace)
	}()

	SetLevel(LevelInfo)
	lgr := WithModule("test").Sub("call", "decode")
	lgr.Debug("hidden")
	require.Equal(t, 0, buf.Len())

	lgr.Info("rejected stream", "remaining", 3)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rejected stream", entry["msg"])
	require.Equal(t, "test", entry["module"])
	require.Equal(t, "decode", entry["call"])
	require.EqualValues(t, 3, entry["remaining"])
}

func TestLogger_OddFields(t *testing.T) {
	require.Panics(t, func() {
		WithModule("test").Sub("lonely")
	})
	require.Panics(t, func() {
		WithModule("test").Sub(1, 2)
	})
}
