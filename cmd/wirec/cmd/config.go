package cmd

import (
	"os"
	"strconv"

	"wirecodec/cli"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective codec configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := cli.GetHome(cmd)
		if err != nil {
			return err
		}
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}

		limit := "none"
		if n, ok := cfg.Limit(); ok {
			limit = strconv.FormatUint(n, 10)
		}
		depth := "none"
		if cfg.DepthLimit() > 0 {
			depth = strconv.Itoa(cfg.DepthLimit())
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Append([]string{
			"Home", home.Path(),
		})
		table.Append([]string{
			"Endianness", cfg.Endianness().String(),
		})
		table.Append([]string{
			"Int Encoding", cfg.IntEncoding().String(),
		})
		table.Append([]string{
			"Size Limit", limit,
		})
		table.Append([]string{
			"Trailing Bytes", cfg.TrailingBytes().String(),
		})
		table.Append([]string{
			"Depth Limit", depth,
		})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
