package env

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"dlctl/pkg/driver"
)

// Driver provides platform-specific environment information.
type Driver interface {
	// GetHomeDir returns the actual user home directory (handles Termux chroot)
	GetHomeDir(ctx context.Context) (string, error)

	// GetConfigDir returns the path to the user config directory for dlctl.
	GetConfigDir(ctx context.Context) (string, error)

	// Platform returns the operating system name in runtime.GOOS form.
	Platform(ctx context.Context) string

	// ExtraDownloadsDirs returns platform-specific Downloads locations that are tried
	// after the well-known ones.
	ExtraDownloadsDirs(ctx context.Context) []string
}

// Facade functions

// GetHomeDir returns the actual user home directory.
func GetHomeDir(ctx context.Context) (string, error) {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		return os.UserHomeDir()
	}
	return d.GetHomeDir(ctx)
}

// GetConfigDir returns the path to the user config directory for dlctl.
func GetConfigDir(ctx context.Context) (string, error) {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		return "", err
	}
	return d.GetConfigDir(ctx)
}

// Platform returns the host operating system, falling back to runtime.GOOS.
func Platform(ctx context.Context) string {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		return runtime.GOOS
	}
	return d.Platform(ctx)
}

// ExtraDownloadsDirs returns platform-specific Downloads locations.
func ExtraDownloadsDirs(ctx context.Context) []string {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		return nil
	}
	return d.ExtraDownloadsDirs(ctx)
}

// ExpandPath expands ~ to home directory and environment variables in a path.
// Examples:
//   - "~/Downloads" -> "/home/user/Downloads"
//   - "$HOME/inbox" -> "/home/user/inbox"
//   - "~/dir with spaces" -> "/home/user/dir with spaces"
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			if len(path) == 1 {
				return home
			}
			if path[1] == '/' || path[1] == filepath.Separator {
				return filepath.Join(home, path[2:])
			}
		}
	}
	return os.ExpandEnv(path)
}
