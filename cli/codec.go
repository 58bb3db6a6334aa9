package cli

import (
	"wirecodec/codec"
	"wirecodec/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// LoadConfig reads config.toml from the home directory. A home directory
// that was never initialized yields the defaults.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	home, err := GetHome(cmd)
	if err != nil {
		return nil, err
	}
	return home.ReadConfig()
}

// CodecConfig returns the codec configuration from the config file with
// any codec flags set on the command line applied on top.
func CodecConfig(cmd *cobra.Command) (codec.Config, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return codec.Config{}, err
	}
	fileCfg := cfg.Codec
	flags := cmd.Flags()
	if flags.Changed(FlagEndian) {
		fileCfg.Endianness, _ = flags.GetString(FlagEndian)
	}
	if flags.Changed(FlagIntEncoding) {
		fileCfg.IntEncoding, _ = flags.GetString(FlagIntEncoding)
	}
	if flags.Changed(FlagLimit) {
		fileCfg.SizeLimit, _ = flags.GetInt64(FlagLimit)
	}
	if flags.Changed(FlagDepthLimit) {
		fileCfg.DepthLimit, _ = flags.GetInt(FlagDepthLimit)
	}
	if flags.Changed(FlagAllowTrailing) {
		allow, _ := flags.GetBool(FlagAllowTrailing)
		fileCfg.TrailingBytes = codec.RejectTrailing.String()
		if allow {
			fileCfg.TrailingBytes = codec.AllowTrailing.String()
		}
	}
	codecCfg, err := fileCfg.Codec()
	if err != nil {
		return codec.Config{}, errors.Wrap(err, "error building codec config")
	}
	return codecCfg, nil
}
