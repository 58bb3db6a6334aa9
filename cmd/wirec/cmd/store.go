package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"wirecodec/cli"
	"wirecodec/codec"
	"wirecodec/crypto"
	"wirecodec/store"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var records = store.Keyspace("records")

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Commands for keeping encoded records in the home directory's database.",
}

var storePutCmd = &cobra.Command{
	Use:   "put <key> <type:value>...",
	Short: "Encodes a record and stores it under key.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := cli.ParseRecord(args[1:])
		if err != nil {
			return err
		}
		return withStore(cmd, func(db *leveldb.DB, cfg codec.Config) error {
			if err := store.Put(db, records.Key(args[0]), rec, cfg); err != nil {
				return err
			}
			fmt.Printf("Stored %s.\n", args[0])
			return nil
		})
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get <key> <type>...",
	Short: "Decodes the record stored under key with the given field types.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(db *leveldb.DB, cfg codec.Config) error {
			raw := &typedRecord{types: args[1:]}
			if err := store.Get(db, records.Key(args[0]), raw, cfg); err != nil {
				return err
			}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Type", "Value"})
			for _, f := range raw.rec {
				table.Append([]string{f.Type, cli.FormatValue(f.Value)})
			}
			table.Render()
			return nil
		})
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored keys with their encoded bytes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(db *leveldb.DB, cfg codec.Config) error {
			stream := store.NewStream(db, records, cfg)
			defer stream.Close()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Key", "Bytes", "Digest"})
			for {
				ok, err := stream.Next(nil)
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				key := records.Trim(stream.Key())
				table.Append([]string{key, hex.EncodeToString(stream.Raw()), crypto.Blake2B256(stream.Raw()).String()})
			}
			table.Render()
			return nil
		})
	},
}

// typedRecord decodes a stored record once the caller names its field
// types.
type typedRecord struct {
	types []string
	rec   cli.Record
}

func (t *typedRecord) Decode(r codec.Reader) error {
	rec, err := cli.DecodeRecord(r, t.types)
	if err != nil {
		return err
	}
	t.rec = rec
	return nil
}

func withStore(cmd *cobra.Command, cb func(db *leveldb.DB, cfg codec.Config) error) error {
	home, err := cli.GetHome(cmd)
	if err != nil {
		return err
	}
	if err := home.Ensure(); err != nil {
		return err
	}
	cfg, err := cli.CodecConfig(cmd)
	if err != nil {
		return err
	}
	db, err := store.OpenBound(home.DBPath(), cfg)
	if err != nil {
		return errors.Wrap(err, "error opening record store")
	}
	defer db.Close()
	return cb(db, cfg)
}

func init() {
	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeListCmd)
	rootCmd.AddCommand(storeCmd)
}
