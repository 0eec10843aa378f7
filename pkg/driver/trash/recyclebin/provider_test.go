package recyclebin

import (
	"strings"
	"testing"
)

func TestBatchesSplitsByQuotedLength(t *testing.T) {
	paths := []string{
		`C:\dl\` + strings.Repeat("a", 10),
		`C:\dl\` + strings.Repeat("b", 10),
		`C:\dl\` + strings.Repeat("c", 10),
	}
	// each quoted path is 18 chars + 2 separator = 20
	got := Batches(paths, 40)
	if len(got) != 2 {
		t.Fatalf("expected 2 batches, got %d: %v", len(got), got)
	}
	if len(got[0]) != 2 || len(got[1]) != 1 {
		t.Errorf("unexpected batch sizes: %d, %d", len(got[0]), len(got[1]))
	}
}

func TestBatchesKeepsOversizedPath(t *testing.T) {
	long := `C:\` + strings.Repeat("x", 100)
	got := Batches([]string{long, `C:\y`}, 10)
	if len(got) != 2 || got[0][0] != long {
		t.Errorf("oversized path should get its own batch: %v", got)
	}
}

func TestBatchesEmpty(t *testing.T) {
	if got := Batches(nil, 100); len(got) != 0 {
		t.Errorf("expected no batches, got %v", got)
	}
}
