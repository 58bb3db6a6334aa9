package config

import (
	"io"

	"wirecodec/codec"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Codec    CodecConfig `mapstructure:"codec"`
}

type CodecConfig struct {
	Endianness    string `mapstructure:"endianness"`
	IntEncoding   string `mapstructure:"int_encoding"`
	SizeLimit     int64  `mapstructure:"size_limit"`
	TrailingBytes string `mapstructure:"trailing_bytes"`
	DepthLimit    int    `mapstructure:"depth_limit"`
}

// Codec converts the file representation into a codec.Config. A size
// limit of zero or less means no limit.
func (c CodecConfig) Codec() (codec.Config, error) {
	cfg := codec.NewConfig()
	endian, err := codec.ParseEndianness(c.Endianness)
	if err != nil {
		return cfg, errors.Wrap(err, "invalid codec.endianness")
	}
	ints, err := codec.ParseIntEncoding(c.IntEncoding)
	if err != nil {
		return cfg, errors.Wrap(err, "invalid codec.int_encoding")
	}
	trailing, err := codec.ParseTrailingBytes(c.TrailingBytes)
	if err != nil {
		return cfg, errors.Wrap(err, "invalid codec.trailing_bytes")
	}
	if c.DepthLimit < 0 {
		return cfg, errors.New("invalid codec.depth_limit: must not be negative")
	}

	cfg = cfg.
		WithEndianness(endian).
		WithIntEncoding(ints).
		WithDepthLimit(c.DepthLimit)
	if trailing == codec.AllowTrailing {
		cfg = cfg.AllowTrailingBytes()
	}
	if c.SizeLimit > 0 {
		cfg = cfg.WithLimit(uint64(c.SizeLimit))
	}
	return cfg, nil
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
