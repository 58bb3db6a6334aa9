package cli

import (
	"path"
	"testing"

	"wirecodec/codec"
	"wirecodec/config"
	"wirecodec/testutil/testfs"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd(home string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(FlagHome, home, "")
	cmd.Flags().String(FlagEndian, "", "")
	cmd.Flags().String(FlagIntEncoding, "", "")
	cmd.Flags().Int64(FlagLimit, 0, "")
	cmd.Flags().Int(FlagDepthLimit, 0, "")
	cmd.Flags().Bool(FlagAllowTrailing, false, "")
	return cmd
}

func TestCodecConfig(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := path.Join(dir, "home")

	cmd := newTestCmd(home)
	cfg, err := CodecConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, codec.NewConfig(), cfg)

	initialized, err := InitHome(cmd)
	require.NoError(t, err)
	require.Equal(t, home, initialized.Path())
	_, err = InitHome(cmd)
	require.Error(t, err)

	testfs.WriteFile(t, home, config.ConfigFilename, []byte(`
log_level = "info"

[codec]
  endianness = "big"
  int_encoding = "variable"
  size_limit = 64
  trailing_bytes = "reject"
  depth_limit = 0
`))
	cfg, err = CodecConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, codec.NewConfig().WithBigEndian().WithVarInts().WithLimit(64), cfg)

	require.NoError(t, cmd.ParseFlags([]string{
		"--" + FlagEndian, "little",
		"--" + FlagLimit, "0",
		"--" + FlagAllowTrailing,
		"--" + FlagDepthLimit, "3",
	}))
	cfg, err = CodecConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, codec.NewConfig().WithVarInts().AllowTrailingBytes().WithDepthLimit(3), cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--" + FlagIntEncoding, "leb128"}))
	_, err = CodecConfig(cmd)
	require.Error(t, err)
}
