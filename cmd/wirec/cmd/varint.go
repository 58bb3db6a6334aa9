package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"wirecodec/cli"
	"wirecodec/codec"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	SignedFlag = "signed"
)

var (
	signed bool
)

var varintCmd = &cobra.Command{
	Use:   "varint",
	Short: "Commands for inspecting the varint integer encoding.",
}

var varintEncodeCmd = &cobra.Command{
	Use:   "encode <n>",
	Short: "Shows how an integer is written with varint encoding.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}

		var v codec.Uint128
		if signed {
			i, err := codec.ParseInt128(args[0])
			if err != nil {
				return err
			}
			v = codec.ZigZag128(i)
		} else {
			v, err = codec.ParseUint128(args[0])
			if err != nil {
				return err
			}
		}

		b := codec.AppendUvarint128(nil, v, cfg.ByteOrder())
		renderVarint(args[0], v, b)
		return nil
	},
}

var varintDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decodes a single varint from hex.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrap(err, "input is not valid hex")
		}

		v, n, err := codec.DecodeUvarint128(data, cfg.ByteOrder())
		if err != nil {
			return err
		}
		if n != len(data) && cfg.TrailingBytes() == codec.RejectTrailing {
			return errors.Wrapf(codec.ErrTrailingBytes, "%d bytes left over", len(data)-n)
		}

		value := v.String()
		if signed {
			value = codec.UnZigZag128(v).String()
		}
		renderVarint(value, v, data[:n])
		return nil
	},
}

func renderVarint(value string, raw codec.Uint128, b []byte) {
	width, _ := codec.TagWidth(b[0])
	tag := "none"
	if width > 0 {
		tag = fmt.Sprintf("0x%02x", b[0])
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Append([]string{
		"Value", value,
	})
	table.Append([]string{
		"Unsigned", raw.String(),
	})
	table.Append([]string{
		"Tag", tag,
	})
	table.Append([]string{
		"Payload Width", strconv.Itoa(width),
	})
	table.Append([]string{
		"Bytes", hex.EncodeToString(b),
	})
	table.Render()
}

func init() {
	varintCmd.PersistentFlags().BoolVar(&signed, SignedFlag, false, "Treat the value as a zig-zag encoded signed integer.")
	varintCmd.AddCommand(varintEncodeCmd)
	varintCmd.AddCommand(varintDecodeCmd)
	rootCmd.AddCommand(varintCmd)
}
