package cmd

import (
	"fmt"

	"wirecodec/cli"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the CLI's home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := cli.InitHome(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Successfully initialized wirec in %s.\n", home.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
