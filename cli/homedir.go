package cli

import (
	"wirecodec/config"

	"github.com/spf13/cobra"
)

// GetHome returns the home directory named by the --home flag.
func GetHome(cmd *cobra.Command) (*config.Home, error) {
	p, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		return nil, err
	}
	return config.NewHome(p)
}

func InitHome(cmd *cobra.Command) (*config.Home, error) {
	home, err := GetHome(cmd)
	if err != nil {
		return nil, err
	}
	if err := home.Init(); err != nil {
		return nil, err
	}
	return home, nil
}
