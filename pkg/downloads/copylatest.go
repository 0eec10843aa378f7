package downloads

import (
	"context"

	"dlctl/pkg/config"
	"dlctl/pkg/logging"

	"github.com/spf13/afero"
)

// CopyLatest copies the most recently modified entry of the Downloads folder
// to the clipboard as a file reference.
type CopyLatest struct {
	Fs         afero.Fs
	Candidates []string
	Clipboard  Clipboard
	Notifier   Notifier
	// StatJobs bounds concurrent stat calls; values < 1 mean config.DefaultStatJobs.
	StatJobs int
}

// Run executes the command. Every outcome is reported through the Notifier;
// the returned error only signals that a notification could not be shown.
func (c *CopyLatest) Run(ctx context.Context) error {
	logger := logging.GetLogger(ctx)

	dir, ok := ResolveExistingDirectory(c.Fs, c.Candidates)
	if !ok {
		logger.Debug("no downloads folder", "candidates", c.Candidates)
		return c.Notifier.Notify(ctx, failure(TitleFolderNotFound, ""))
	}
	logger.Debug("downloads folder resolved", "folder", dir)

	names := ListNames(ctx, c.Fs, dir)
	if len(names) == 0 {
		return c.Notifier.Notify(ctx, failure(TitleFolderEmpty, ""))
	}

	jobs := c.StatJobs
	if jobs < 1 {
		jobs = config.DefaultStatJobs
	}
	entries := StatEntries(ctx, c.Fs, dir, names, jobs)
	if len(entries) == 0 {
		return c.Notifier.Notify(ctx, failure(TitleNoAccessible, ""))
	}

	SortNewestFirst(entries)
	latest := entries[0]
	logger.Debug("latest entry", "name", latest.Name, "mtime", latest.ModTime)
	return CopyEntry(ctx, c.Clipboard, c.Notifier, latest)
}
