package copylatest

import (
	"dlctl/cmd/dlctl/common"
	"dlctl/pkg/downloads"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy-latest",
		Aliases: []string{"latest"},
		Short:   "Copy the newest file in Downloads to the clipboard",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := common.Config(ctx)
			run := &downloads.CopyLatest{
				Fs:         afero.NewOsFs(),
				Candidates: common.Candidates(c, cfg),
				Clipboard:  common.Drivers{},
				Notifier:   common.Drivers{},
				StatJobs:   cfg.Downloads.StatJobs,
			}
			return run.Run(ctx)
		},
	}
	common.AddFolderFlag(cmd)
	return cmd
}
