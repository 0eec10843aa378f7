package downloads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"dlctl/pkg/driver/notification"
	"dlctl/pkg/logging"
	"dlctl/pkg/powershell"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
)

// Empty moves every entry of the Downloads folder to the trash. It never
// reports failure: a missing folder counts as empty and trash errors are
// swallowed.
type Empty struct {
	Fs         afero.Fs
	Candidates []string
	Trasher    Trasher
	Notifier   Notifier
	// Platform is the host OS in runtime.GOOS form. The Recycle Bin fallback
	// only runs when it is "windows".
	Platform string
	// Runner executes the fallback commands.
	Runner CommandRunner
	// Progress receives a progress bar for the fallback; nil disables it.
	Progress io.Writer
}

func (e *Empty) Run(ctx context.Context) error {
	logger := logging.GetLogger(ctx)

	dir, ok := ResolveExistingDirectory(e.Fs, e.Candidates)
	if !ok {
		logger.Debug("no downloads folder", "candidates", e.Candidates)
		return e.notifyAlreadyEmpty(ctx)
	}

	names := ListNames(ctx, e.Fs, dir)
	if len(names) == 0 {
		return e.notifyAlreadyEmpty(ctx)
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}

	if err := e.Trasher.Trash(ctx, paths); err != nil {
		logger.Debug("trash failed", "folder", dir, "error", err)
	}

	if e.Platform == "windows" {
		e.recycleRemaining(ctx, paths)
	}

	return e.Notifier.Notify(ctx, success(TitleTrashed, ""))
}

func (e *Empty) notifyAlreadyEmpty(ctx context.Context) error {
	return e.Notifier.Notify(ctx, notification.Notification{
		Style: notification.Success,
		Kind:  notification.HUD,
		Title: TitleAlreadyEmpty,
	})
}

// recycleRemaining sends paths that survived the batch trash call to the
// Recycle Bin one at a time. Failures are logged and skipped.
func (e *Empty) recycleRemaining(ctx context.Context, paths []string) {
	logger := logging.GetLogger(ctx)

	type remaining struct {
		path  string
		isDir bool
	}
	var left []remaining
	for _, p := range paths {
		info, err := e.Fs.Stat(p)
		if err != nil {
			continue
		}
		left = append(left, remaining{path: p, isDir: info.IsDir()})
	}
	if len(left) == 0 {
		return
	}
	logger.Debug("recycling leftovers", "count", len(left))

	bar := e.progressBar(len(left))
	for _, r := range left {
		script := powershell.RecycleCommand(r.path, r.isDir)
		if err := e.Runner.Run(ctx, powershell.Executable, powershell.Args(script)...); err != nil {
			logger.Debug("recycle failed", "path", r.path, "error", err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
}

func (e *Empty) progressBar(total int) *progressbar.ProgressBar {
	if e.Progress == nil {
		return nil
	}
	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(e.Progress),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(fmt.Sprintf("recycle(%d)", total)),
		progressbar.OptionThrottle(80*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(e.Progress)
		}),
	)
}
