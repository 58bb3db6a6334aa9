package cmd

import (
	"fmt"
	"os"

	"wirecodec/cli"
	"wirecodec/config"
	"wirecodec/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "wirec",
	Short:        "Encode, decode and inspect values in the wire format.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" || cmd.CalledAs() == "version" {
			return nil
		}
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return errors.Wrap(err, "error loading config")
		}
		lvl, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "error parsing log level")
		}
		log.SetLevel(lvl)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, config.DefaultHomePath, "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagEndian, "", "Byte order to use, overriding the config file. One of little, big.")
	rootCmd.PersistentFlags().String(cli.FlagIntEncoding, "", "Integer encoding to use, overriding the config file. One of fixed, variable.")
	rootCmd.PersistentFlags().Int64(cli.FlagLimit, 0, "Maximum bytes per value, overriding the config file. 0 disables the limit.")
	rootCmd.PersistentFlags().Int(cli.FlagDepthLimit, 0, "Maximum decode nesting depth, overriding the config file. 0 disables the check.")
	rootCmd.PersistentFlags().Bool(cli.FlagAllowTrailing, false, "Accept input left over after the decoded value.")
}
