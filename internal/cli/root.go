// Package cli is the flyaway command line: the web server and operator tools.
package cli

import (
	"fmt"
	"os"

	"flyaway/internal/config"
	"flyaway/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	env     config.Env
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "flyaway",
	Short: "FlyAway flight booking site",
	Long:  "Serves the FlyAway landing page, the reservation page and their JSON API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env = config.LoadEnv()
		var err error
		logger, err = utils.NewLogger(env.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		for _, w := range env.Warnings {
			logger.Warn("config", zap.String("warning", w))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides APP_ADDR)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
