package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/coreos/go-systemd/v22/journal"
)

type sent struct {
	message  string
	priority journal.Priority
	vars     map[string]string
}

func TestJournalHandlerFields(t *testing.T) {
	var got []sent
	h := NewJournalHandler(slog.LevelDebug)
	h.send = func(message string, priority journal.Priority, vars map[string]string) error {
		got = append(got, sent{message, priority, vars})
		return nil
	}

	logger := slog.New(h).With("folder", "/home/u/Downloads").WithGroup("entry")
	logger.Warn("stat failed", "name", "a.txt", "error", "permission denied")

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	rec := got[0]
	if rec.message != "stat failed" {
		t.Errorf("message mismatch: %q", rec.message)
	}
	if rec.priority != journal.PriWarning {
		t.Errorf("priority mismatch: %v", rec.priority)
	}
	want := map[string]string{
		"SYSLOG_IDENTIFIER": "dlctl",
		"FOLDER":            "/home/u/Downloads",
		"ENTRY_NAME":        "a.txt",
		"ENTRY_ERROR":       "permission denied",
	}
	for k, v := range want {
		if rec.vars[k] != v {
			t.Errorf("field %s: got=%q want=%q", k, rec.vars[k], v)
		}
	}
}

func TestJournalHandlerLevel(t *testing.T) {
	h := NewJournalHandler(slog.LevelInfo)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be filtered at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should pass at info level")
	}
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"path":      "PATH",
		"stat-jobs": "STAT_JOBS",
		"9lives":    "F_9LIVES",
		"_private":  "PRIVATE",
	}
	for in, want := range tests {
		if got := fieldName(in); got != want {
			t.Errorf("fieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetLoggerFallsBackToDefault(t *testing.T) {
	if GetLogger(context.Background()) != slog.Default() {
		t.Error("expected default logger")
	}
	l := slog.New(slog.DiscardHandler)
	if GetLogger(WithLogger(context.Background(), l)) != l {
		t.Error("expected logger from context")
	}
}
