// Command chartrender draws the semester performance chart without a window.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "chartrender",
		Short: "Render the performance column chart",
		Long: `chartrender renders the semester performance column chart to PNG,
prints the size a chart would be measured to and seeds the SQLite store.

Settings are read from --config and can be overridden with COLUMNCHART_*
environment variables, for example COLUMNCHART_DATA_BACKEND=sqlite.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newMeasureCmd(opts),
		newSeedCmd(opts),
	)
	return rootCmd
}
