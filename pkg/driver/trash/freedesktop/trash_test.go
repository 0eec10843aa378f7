package freedesktop

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func newTestDriver(t *testing.T) (*Driver, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	d := &Driver{
		Fs:  fs,
		Dir: "/home/u/.local/share/Trash",
		Now: func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local) },
	}
	return d, fs
}

func TestTrashMovesEntriesAndWritesInfo(t *testing.T) {
	d, fs := newTestDriver(t)
	if err := afero.WriteFile(fs, "/home/u/Downloads/report final.pdf", []byte("pdf"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll("/home/u/Downloads/photos", 0755); err != nil {
		t.Fatal(err)
	}

	err := d.Trash(context.Background(), []string{
		"/home/u/Downloads/report final.pdf",
		"/home/u/Downloads/photos",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, gone := range []string{"/home/u/Downloads/report final.pdf", "/home/u/Downloads/photos"} {
		if ok, _ := afero.Exists(fs, gone); ok {
			t.Errorf("%s still exists", gone)
		}
	}
	if ok, _ := afero.Exists(fs, "/home/u/.local/share/Trash/files/report final.pdf"); !ok {
		t.Error("file not moved into trash")
	}
	if ok, _ := afero.DirExists(fs, "/home/u/.local/share/Trash/files/photos"); !ok {
		t.Error("directory not moved into trash")
	}

	info, err := afero.ReadFile(fs, "/home/u/.local/share/Trash/info/report final.pdf.trashinfo")
	if err != nil {
		t.Fatalf("read trashinfo: %v", err)
	}
	want := "[Trash Info]\nPath=/home/u/Downloads/report%20final.pdf\nDeletionDate=2024-03-09T14:05:07\n"
	if string(info) != want {
		t.Errorf("trashinfo mismatch:\ngot  %q\nwant %q", info, want)
	}
}

func TestTrashAvoidsNameCollisions(t *testing.T) {
	d, fs := newTestDriver(t)
	for _, dir := range []string{"/a", "/b"} {
		if err := afero.WriteFile(fs, filepath.Join(dir, "setup.exe"), []byte(dir), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := d.Trash(context.Background(), []string{"/a/setup.exe", "/b/setup.exe"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := afero.ReadFile(fs, "/home/u/.local/share/Trash/files/setup.exe")
	if err != nil || string(first) != "/a" {
		t.Errorf("first entry mismatch: %q %v", first, err)
	}
	second, err := afero.ReadFile(fs, "/home/u/.local/share/Trash/files/setup.2.exe")
	if err != nil || string(second) != "/b" {
		t.Errorf("second entry mismatch: %q %v", second, err)
	}
	if ok, _ := afero.Exists(fs, "/home/u/.local/share/Trash/info/setup.2.exe.trashinfo"); !ok {
		t.Error("missing trashinfo for collided name")
	}
}

func TestTrashReportsMissingPathsAndContinues(t *testing.T) {
	d, fs := newTestDriver(t)
	if err := afero.WriteFile(fs, "/dl/keep-going.txt", nil, 0644); err != nil {
		t.Fatal(err)
	}

	err := d.Trash(context.Background(), []string{"/dl/missing.txt", "/dl/keep-going.txt"})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	if !strings.Contains(err.Error(), "/dl/missing.txt") {
		t.Errorf("error should name the missing path: %v", err)
	}
	if ok, _ := afero.Exists(fs, "/dl/keep-going.txt"); ok {
		t.Error("later path was not trashed")
	}
	if ok, _ := afero.Exists(fs, "/home/u/.local/share/Trash/info/missing.txt.trashinfo"); ok {
		t.Error("stale trashinfo left for missing path")
	}
}

func TestTrashTreatsGlobCharactersLiterally(t *testing.T) {
	d, fs := newTestDriver(t)
	for _, name := range []string{"/dl/[draft]*.txt", "/dl/other.txt"} {
		if err := afero.WriteFile(fs, name, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := d.Trash(context.Background(), []string{"/dl/[draft]*.txt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := afero.Exists(fs, "/dl/other.txt"); !ok {
		t.Error("pattern-like name matched an unrelated file")
	}
}

func TestCandidateName(t *testing.T) {
	tests := []struct {
		base    string
		attempt int
		want    string
	}{
		{"a.txt", 1, "a.txt"},
		{"a.txt", 2, "a.2.txt"},
		{"archive.tar.gz", 3, "archive.tar.3.gz"},
		{"noext", 2, "noext.2"},
		{".bashrc", 2, ".bashrc.2"},
	}
	for _, tt := range tests {
		if got := CandidateName(tt.base, tt.attempt); got != tt.want {
			t.Errorf("CandidateName(%q, %d) = %q, want %q", tt.base, tt.attempt, got, tt.want)
		}
	}
}

func TestHomeTrashDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	if got := HomeTrashDir("/home/u"); got != "/home/u/.local/share/Trash" {
		t.Errorf("default mismatch: %s", got)
	}
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := HomeTrashDir("/home/u"); got != "/data/Trash" {
		t.Errorf("XDG_DATA_HOME mismatch: %s", got)
	}
	t.Setenv("XDG_DATA_HOME", "relative/path")
	if got := HomeTrashDir("/home/u"); got != "/home/u/.local/share/Trash" {
		t.Errorf("relative XDG_DATA_HOME should be ignored: %s", got)
	}
}

func TestTrashMovesDanglingSymlink(t *testing.T) {
	root := t.TempDir()
	downloads := filepath.Join(root, "Downloads")
	if err := os.Mkdir(downloads, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(downloads, "dangling")
	if err := os.Symlink(filepath.Join(root, "nowhere"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	d := &Driver{Fs: afero.NewOsFs(), Dir: filepath.Join(root, "Trash")}
	if err := d.Trash(context.Background(), []string{link}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Lstat(link); !os.IsNotExist(err) {
		t.Errorf("link should be gone from Downloads, lstat err=%v", err)
	}
	moved := filepath.Join(root, "Trash", "files", "dangling")
	info, err := os.Lstat(moved)
	if err != nil {
		t.Fatalf("link not in trash: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("expected the link itself to be trashed, got mode %v", info.Mode())
	}
	if _, err := os.Stat(filepath.Join(root, "Trash", "info", "dangling.trashinfo")); err != nil {
		t.Errorf("missing trashinfo: %v", err)
	}
}
