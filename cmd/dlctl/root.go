package main

import (
	"context"
	"log/slog"
	"os"

	"dlctl/pkg/config"
	_ "dlctl/pkg/driver/prelude"
	"dlctl/pkg/logging"
	"dlctl/pkg/registry"
	"dlctl/pkg/version"

	"github.com/spf13/cobra"
)

var Registry registry.CommandRegistry

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "dlctl",
		Short:         "dlctl - Downloads folder launcher commands",
		Version:       version.GetBuildID(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := logging.Setup(level)
			c.SetContext(logging.WithLogger(c.Context(), logger))

			// Load config early to set driver weights
			if _, err := config.Load(); err != nil {
				logger.Debug("failed to load config", "error", err)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	Registry.FillCommands(cmd)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("error", "err", err)
		os.Exit(1)
	}
}
