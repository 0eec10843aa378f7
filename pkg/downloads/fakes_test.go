package downloads_test

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"
	"time"

	"dlctl/pkg/driver/notification"

	"github.com/spf13/afero"
)

type recordingNotifier struct {
	got []notification.Notification
}

func (n *recordingNotifier) Notify(ctx context.Context, note notification.Notification) error {
	n.got = append(n.got, note)
	return nil
}

// only returns the single notification shown, failing the test otherwise.
func (n *recordingNotifier) only(t *testing.T) notification.Notification {
	t.Helper()
	if len(n.got) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d: %+v", len(n.got), n.got)
	}
	return n.got[0]
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) CopyFile(ctx context.Context, path string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, path)
	return nil
}

// fakeTrasher records calls and removes the paths for which remove returns true.
type fakeTrasher struct {
	fs     afero.Fs
	calls  [][]string
	err    error
	remove func(path string) bool
}

func (f *fakeTrasher) Trash(ctx context.Context, paths []string) error {
	f.calls = append(f.calls, slices.Clone(paths))
	for _, p := range paths {
		if f.remove != nil && f.remove(p) {
			_ = f.fs.RemoveAll(p)
		}
	}
	return f.err
}

type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

// statFailFs fails Stat for paths matching fail.
type statFailFs struct {
	afero.Fs
	fail func(name string) bool
}

func (f statFailFs) Stat(name string) (os.FileInfo, error) {
	if f.fail(name) {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Stat(name)
}

// openFailFs fails every Open, so directories cannot be listed.
type openFailFs struct {
	afero.Fs
}

func (f openFailFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

var errTrash = errors.New("trash exploded")

func writeFile(t *testing.T, fs afero.Fs, path string, mtime time.Time) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(path), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if !mtime.IsZero() {
		if err := fs.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes %s: %v", path, err)
		}
	}
}

func mkdir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func at(hhmm string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04", "2024-05-01 "+hhmm)
	if err != nil {
		panic(err)
	}
	return ts
}
