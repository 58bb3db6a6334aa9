package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"wirecodec/codec"
	"wirecodec/log"

	"github.com/pkg/errors"
)

const ConfigFilename = "config.toml"

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Codec: CodecConfig{
		Endianness:    codec.LittleEndian.String(),
		IntEncoding:   codec.FixedInt.String(),
		SizeLimit:     0,
		TrailingBytes: codec.RejectTrailing.String(),
		DepthLimit:    0,
	},
}

const defaultConfigTemplateText = `# wirec Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures how values are laid out on the wire. Both sides of an
# exchange must agree on every setting in this section.
[codec]
  # Sets the byte order of multi-byte integers and floats.
  # Can be "little" or "big".
  endianness = "{{.Codec.Endianness}}"
  # Sets how integers of 16 bits and wider are written. "fixed" uses
  # the declared width, "variable" uses tagged varints.
  int_encoding = "{{.Codec.IntEncoding}}"
  # Sets the maximum number of bytes a single encode or decode may
  # produce or consume. 0 disables the limit.
  size_limit = {{.Codec.SizeLimit}}
  # Sets what happens to input left over after a value is decoded.
  # Can be "reject" or "allow".
  trailing_bytes = "{{.Codec.TrailingBytes}}"
  # Sets how deeply containers may nest while decoding. 0 disables
  # the check.
  depth_limit = {{.Codec.DepthLimit}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(filename string) error {
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
