package cmd

import (
	"encoding/hex"
	"fmt"

	"wirecodec/cli"
	"wirecodec/codec"
	"wirecodec/crypto"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <type:value>...",
	Short: "Encodes a record of primitive fields and prints it as hex.",
	Long: "Encodes a record of primitive fields and prints it as hex. Fields are written " +
		"as type:value, for example u32:70000 string:hello bytes:cafe.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}
		rec, err := cli.ParseRecord(args)
		if err != nil {
			return err
		}
		b, err := codec.Encode(rec, cfg)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(b))
		return nil
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size <type:value>...",
	Short: "Prints the encoded size of a record of primitive fields.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}
		rec, err := cli.ParseRecord(args)
		if err != nil {
			return err
		}
		size, err := codec.EncodedSize(rec, cfg)
		if err != nil {
			return err
		}
		fmt.Println(size)
		return nil
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <type:value>...",
	Short: "Prints the BLAKE2b-256 digest of a record's encoding.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.CodecConfig(cmd)
		if err != nil {
			return err
		}
		rec, err := cli.ParseRecord(args)
		if err != nil {
			return err
		}
		h, err := crypto.HashOf(rec, cfg)
		if err != nil {
			return err
		}
		fmt.Println(h)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(hashCmd)
}
