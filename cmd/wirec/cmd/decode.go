package cmd

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"wirecodec/cli"
	"wirecodec/codec"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	HexFlag = "hex"
)

var (
	hexInput string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <type>...",
	Short: "Decodes a hex-encoded record of primitive fields.",
	Long: "Decodes a hex-encoded record of primitive fields with the given types, in order. " +
		"The input is read from --hex, or from stdin when it is piped.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}

		input := hexInput
		if input == "" {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				return errors.New("no input: pass --hex or pipe hex to stdin")
			}
			raw, err := ioutil.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "error reading stdin")
			}
			input = string(raw)
		}
		data, err := hex.DecodeString(strings.TrimSpace(input))
		if err != nil {
			return errors.Wrap(err, "input is not valid hex")
		}

		r := codec.NewSliceReader(data, cfg)
		rec, err := cli.DecodeRecord(r, args)
		if err != nil {
			return err
		}
		if err := r.Finish(); err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"#", "Type", "Value"})
		for i, f := range rec {
			table.Append([]string{
				strconv.Itoa(i),
				f.Type,
				cli.FormatValue(f.Value),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&hexInput, HexFlag, "", "Hex-encoded input.")
	rootCmd.AddCommand(decodeCmd)
}
