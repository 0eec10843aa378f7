// Package downloads implements the Downloads folder commands: resolving the
// folder, picking its newest entry for the clipboard and emptying it into the
// trash.
package downloads

import (
	"context"
	"log/slog"
	"path/filepath"

	"dlctl/pkg/driver/env"

	"github.com/spf13/afero"
)

// Candidates returns the Downloads lookup order: the override (when set), the
// OneDrive-redirected folder, the plain local folder, then any extra locations.
func Candidates(override, home string, extra ...string) []string {
	var out []string
	if override != "" {
		out = append(out, override)
	}
	if home != "" {
		out = append(out,
			filepath.Join(home, "OneDrive", "Downloads"),
			filepath.Join(home, "Downloads"),
		)
	}
	return append(out, extra...)
}

// DefaultCandidates builds Candidates from the environment driver.
func DefaultCandidates(ctx context.Context, override string) []string {
	home, err := env.GetHomeDir(ctx)
	if err != nil {
		slog.Debug("home directory unavailable", "error", err)
		home = ""
	}
	return Candidates(override, home, env.ExtraDownloadsDirs(ctx)...)
}

// ResolveExistingDirectory returns the first candidate that exists and is a
// directory. Missing paths, stat errors and plain files are skipped; when
// nothing qualifies it returns false.
func ResolveExistingDirectory(fsys afero.Fs, candidates []string) (string, bool) {
	for _, dir := range candidates {
		info, err := fsys.Stat(dir)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return dir, true
		}
	}
	return "", false
}
