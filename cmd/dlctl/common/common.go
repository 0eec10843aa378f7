// Package common holds the wiring shared by the dlctl subcommands.
package common

import (
	"context"
	"io"
	"os"

	"dlctl/pkg/config"
	"dlctl/pkg/downloads"
	"dlctl/pkg/driver/clipboard"
	"dlctl/pkg/driver/env"
	"dlctl/pkg/driver/notification"
	"dlctl/pkg/driver/trash"
	"dlctl/pkg/logging"

	"github.com/spf13/cobra"
)

// AddFolderFlag registers the --folder override on cmd.
func AddFolderFlag(cmd *cobra.Command) {
	cmd.Flags().String("folder", "", "Downloads folder to use when it exists (overrides config and DLCTL_FOLDER)")
}

// Candidates returns the Downloads lookup order for cmd, honouring --folder
// before the configured override.
func Candidates(cmd *cobra.Command, cfg *config.Config) []string {
	override := cfg.FolderOverride()
	if folder, _ := cmd.Flags().GetString("folder"); folder != "" {
		override = env.ExpandPath(folder)
	}
	return downloads.DefaultCandidates(cmd.Context(), override)
}

// Config returns the loaded settings, falling back to defaults when the file is unusable.
func Config(ctx context.Context) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logging.GetLogger(ctx).Warn("using default config", "error", err)
	}
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// Drivers adapts the driver facades to the interfaces pkg/downloads consumes.
// Drivers are resolved on first use, so a missing clipboard only surfaces as a
// failed copy and a missing trash as a swallowed trash error.
type Drivers struct{}

func (Drivers) CopyFile(ctx context.Context, path string) error {
	return clipboard.CopyFile(ctx, path)
}

func (Drivers) Trash(ctx context.Context, paths []string) error {
	return trash.Trash(ctx, paths)
}

func (Drivers) Notify(ctx context.Context, n notification.Notification) error {
	return notification.Notify(ctx, n)
}

// ProgressWriter returns stderr when it is a terminal, nil otherwise.
func ProgressWriter() io.Writer {
	if logging.IsInteractive(os.Stderr) {
		return os.Stderr
	}
	return nil
}
