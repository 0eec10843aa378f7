package empty

import (
	"dlctl/cmd/dlctl/common"
	"dlctl/pkg/downloads"
	"dlctl/pkg/driver/env"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Move everything in Downloads to the trash",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := common.Config(ctx)
			if platform == "" {
				platform = env.Platform(ctx)
			}
			run := &downloads.Empty{
				Fs:         afero.NewOsFs(),
				Candidates: common.Candidates(c, cfg),
				Trasher:    common.Drivers{},
				Notifier:   common.Drivers{},
				Platform:   platform,
				Runner:     downloads.ExecRunner{},
				Progress:   common.ProgressWriter(),
			}
			return run.Run(ctx)
		},
	}
	common.AddFolderFlag(cmd)
	cmd.Flags().StringVar(&platform, "platform", "", "Host platform in GOOS form (default: detected)")
	_ = cmd.Flags().MarkHidden("platform")
	return cmd
}
