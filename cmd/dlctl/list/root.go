package list

import (
	"fmt"
	"time"

	"dlctl/cmd/dlctl/common"
	"dlctl/pkg/api"
	"dlctl/pkg/downloads"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Downloads entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := common.Config(ctx)
			fs := afero.NewOsFs()
			candidates := common.Candidates(c, cfg)

			dir, ok := downloads.ResolveExistingDirectory(fs, candidates)
			if !ok {
				return fmt.Errorf("%w: tried %v", api.ErrFolderNotFound, candidates)
			}

			paths, _ := c.Flags().GetBool("paths")
			out := c.OutOrStdout()
			for _, e := range downloads.Scan(ctx, fs, dir, cfg.Downloads.StatJobs) {
				name := e.Name
				if paths {
					name = e.Path
				}
				if e.IsDir {
					name += "/"
				}
				fmt.Fprintf(out, "%s\t%s\n", name, e.ModTime.Format(time.RFC3339))
			}
			return nil
		},
	}
	common.AddFolderFlag(cmd)
	cmd.Flags().Bool("paths", false, "Print absolute paths instead of names")
	return cmd
}
