package commands

import (
	"context"
	"fmt"
	"os"

	"heatindex-backend/lib/configutil"
	"heatindex-backend/services/heatindex"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "heatindex-cli",
	Short: "heatindex-cli extracts, scores and previews restaurant heat index issues.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readConfig loads config.json5 but tolerates its absence; extraction
// against the default sources needs no config file at all.
func readConfig() heatindex.Config {
	cfg, err := configutil.ReadConfig[heatindex.Config]("config.json5")
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return heatindex.Config{}
	}
	return cfg
}
