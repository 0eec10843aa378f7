package downloads

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"dlctl/pkg/logging"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Entry is a folder entry whose metadata could be read.
type Entry struct {
	Name    string
	Path    string
	ModTime time.Time
	IsDir   bool
}

// ListNames returns the names inside dir. A listing error yields an empty list.
func ListNames(ctx context.Context, fsys afero.Fs, dir string) []string {
	f, err := fsys.Open(dir)
	if err != nil {
		logging.GetLogger(ctx).Debug("open folder failed", "folder", dir, "error", err)
		return nil
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		logging.GetLogger(ctx).Debug("list folder failed", "folder", dir, "error", err)
		return nil
	}
	return names
}

// StatEntries stats every name in dir using at most jobs concurrent calls.
// Entries that cannot be stat'ed are dropped. The result keeps the order of names.
func StatEntries(ctx context.Context, fsys afero.Fs, dir string, names []string, jobs int) []Entry {
	if jobs < 1 {
		jobs = 1
	}
	logger := logging.GetLogger(ctx)
	results := make([]*Entry, len(names))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range names {
		g.Go(func() error {
			path := filepath.Join(dir, name)
			info, err := fsys.Stat(path)
			if err != nil {
				logger.Debug("skipping inaccessible entry", "path", path, "error", err)
				return nil
			}
			results[i] = &Entry{
				Name:    name,
				Path:    path,
				ModTime: info.ModTime(),
				IsDir:   info.IsDir(),
			}
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]Entry, 0, len(names))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

// SortNewestFirst orders entries by modification time, most recent first.
// Equal timestamps keep their relative order.
func SortNewestFirst(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.ModTime.Compare(a.ModTime)
	})
}

// Scan lists dir and returns its accessible entries, newest first.
func Scan(ctx context.Context, fsys afero.Fs, dir string, jobs int) []Entry {
	entries := StatEntries(ctx, fsys, dir, ListNames(ctx, fsys, dir), jobs)
	SortNewestFirst(entries)
	return entries
}
