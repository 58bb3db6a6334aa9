package config

import (
	"bytes"
	"testing"

	"wirecodec/codec"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)

	codecCfg, err := cfg.Codec.Codec()
	require.NoError(t, err)
	require.Equal(t, codec.NewConfig(), codecCfg)
}

func TestCodecConfig_Codec(t *testing.T) {
	cfg, err := ReadConfig(bytes.NewReader([]byte(`
log_level = "debug"

[codec]
  endianness = "big"
  int_encoding = "variable"
  size_limit = 1024
  trailing_bytes = "allow"
  depth_limit = 16
`)))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)

	codecCfg, err := cfg.Codec.Codec()
	require.NoError(t, err)
	exp := codec.NewConfig().
		WithBigEndian().
		WithVarInts().
		WithLimit(1024).
		AllowTrailingBytes().
		WithDepthLimit(16)
	require.Equal(t, exp, codecCfg)
}

func TestCodecConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  CodecConfig
		msg  string
	}{
		{"endianness", CodecConfig{Endianness: "middle"}, "codec.endianness"},
		{"int encoding", CodecConfig{IntEncoding: "zigzag"}, "codec.int_encoding"},
		{"trailing bytes", CodecConfig{TrailingBytes: "keep"}, "codec.trailing_bytes"},
		{"depth limit", CodecConfig{DepthLimit: -1}, "codec.depth_limit"},
	}
	for _, tt := range tests {
		_, err := tt.cfg.Codec()
		require.Error(t, err, tt.name)
		require.Contains(t, err.Error(), tt.msg, tt.name)
	}
}

func TestReadConfig_Malformed(t *testing.T) {
	_, err := ReadConfig(bytes.NewReader([]byte("log_level = ")))
	require.Error(t, err)
	require.Contains(t, err.Error(), "error decoding config file")
}
