package freedesktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// maxCollisions bounds the search for a free name inside the trash.
const maxCollisions = 10000

// Driver implements the home trash of the freedesktop.org Trash layout:
// the entry is renamed into Dir/files and described by Dir/info/<name>.trashinfo.
type Driver struct {
	Fs  afero.Fs
	Dir string
	// Now is used for DeletionDate; nil means time.Now.
	Now func() time.Time
}

// HomeTrashDir returns $XDG_DATA_HOME/Trash, defaulting to ~/.local/share/Trash.
func HomeTrashDir(home string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" || !filepath.IsAbs(dataHome) {
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "Trash")
}

func (d *Driver) Trash(ctx context.Context, paths []string) error {
	filesDir := filepath.Join(d.Dir, "files")
	infoDir := filepath.Join(d.Dir, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := d.Fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create trash directory: %w", err)
		}
	}

	var errs []error
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := d.trashOne(p, filesDir, infoDir); err != nil {
			slog.Debug("trash failed", "path", p, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

func (d *Driver) trashOne(path, filesDir, infoDir string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := d.lstat(abs); err != nil {
		return err
	}

	name, infoPath, err := d.reserve(filepath.Base(abs), infoDir, abs)
	if err != nil {
		return err
	}

	if err := d.Fs.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		_ = d.Fs.Remove(infoPath)
		return err
	}
	return nil
}

// lstat does not follow symlinks, so a dangling link is trashed as itself.
func (d *Driver) lstat(path string) (os.FileInfo, error) {
	if l, ok := d.Fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return d.Fs.Stat(path)
}

// reserve atomically creates the .trashinfo file for the first free name.
// Creating the info file first acts as the lock on the name.
func (d *Driver) reserve(base, infoDir, original string) (string, string, error) {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	content := InfoFile(original, now())

	for i := 1; i <= maxCollisions; i++ {
		name := CandidateName(base, i)
		infoPath := filepath.Join(infoDir, name+".trashinfo")
		f, err := d.Fs.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return "", "", err
		}
		_, werr := f.WriteString(content)
		cerr := f.Close()
		if werr != nil || cerr != nil {
			_ = d.Fs.Remove(infoPath)
			return "", "", errors.Join(werr, cerr)
		}
		return name, infoPath, nil
	}
	return "", "", fmt.Errorf("no free trash name for %s", base)
}

// CandidateName returns base for the first attempt and "stem.N.ext" afterwards.
func CandidateName(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// dotfiles like ".bashrc"
		stem, ext = base, ""
	}
	return stem + "." + strconv.Itoa(attempt) + ext
}

// InfoFile renders a .trashinfo document. Path is percent-encoded and the
// deletion date is local time without zone, as freedesktop.org requires.
func InfoFile(original string, deleted time.Time) string {
	u := url.URL{Path: filepath.ToSlash(original)}
	return "[Trash Info]\n" +
		"Path=" + u.EscapedPath() + "\n" +
		"DeletionDate=" + deleted.Format("2006-01-02T15:04:05") + "\n"
}
