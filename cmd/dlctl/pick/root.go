package pick

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dlctl/cmd/dlctl/common"
	"dlctl/pkg/api"
	"dlctl/pkg/downloads"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [query]",
		Short: "Fuzzy-find a Downloads entry and copy it to the clipboard",
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := common.Config(ctx)
			fs := afero.NewOsFs()
			candidates := common.Candidates(c, cfg)

			dir, ok := downloads.ResolveExistingDirectory(fs, candidates)
			if !ok {
				return fmt.Errorf("%w: tried %v", api.ErrFolderNotFound, candidates)
			}
			entries := downloads.Scan(ctx, fs, dir, cfg.Downloads.StatJobs)
			if len(entries) == 0 {
				return fmt.Errorf("%s: %s", downloads.TitleNoAccessible, dir)
			}

			options := []fuzzyfinder.Option{
				fuzzyfinder.WithPreviewWindow(func(i int, width int, height int) string {
					if i == -1 {
						return ""
					}
					e := entries[i]
					kind := "file"
					if e.IsDir {
						kind = "directory"
					}
					return fmt.Sprintf("Path:     %s\nModified: %s\nType:     %s",
						e.Path, e.ModTime.Format("2006-01-02 15:04:05"), kind)
				}),
			}
			if len(args) > 0 {
				query := strings.Trim(strings.Join(args, " "), "'\"")
				if query != "" {
					options = append(options, fuzzyfinder.WithQuery(query))
				}
			}

			idx, err := fuzzyfinder.Find(
				entries,
				func(i int) string {
					return entries[i].Name + "  " + humanAge(time.Since(entries[i].ModTime))
				},
				options...,
			)
			if err != nil {
				if errors.Is(err, fuzzyfinder.ErrAbort) {
					return nil
				}
				return fmt.Errorf("fuzzy finder failed: %w", err)
			}

			return downloads.CopyEntry(ctx, common.Drivers{}, common.Drivers{}, entries[idx])
		},
	}
	common.AddFolderFlag(cmd)
	return cmd
}

func humanAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
