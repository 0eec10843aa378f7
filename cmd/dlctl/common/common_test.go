package common

import (
	"context"
	"path/filepath"
	"testing"

	"dlctl/pkg/config"

	"github.com/spf13/cobra"
)

func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddFolderFlag(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	cmd.SetContext(context.Background())
	return cmd
}

func TestCandidatesFlagBeatsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	cfg.Downloads.Folder = "/srv/inbox"

	got := Candidates(newCommand(t, "--folder", "~/elsewhere"), cfg)
	if len(got) == 0 || got[0] != filepath.Join(home, "elsewhere") {
		t.Fatalf("expected flag override first, got %v", got)
	}
	for _, c := range got {
		if c == "/srv/inbox" {
			t.Errorf("config folder should be replaced by the flag: %v", got)
		}
	}
}

func TestCandidatesConfigOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	cfg.Downloads.Folder = "/srv/inbox"

	got := Candidates(newCommand(t), cfg)
	want := []string{
		"/srv/inbox",
		filepath.Join(home, "OneDrive", "Downloads"),
		filepath.Join(home, "Downloads"),
	}
	if len(got) < len(want) {
		t.Fatalf("got %v, want prefix %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
