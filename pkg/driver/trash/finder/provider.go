package finder

import (
	"context"
	"fmt"
	"strings"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/env"
	execdriver "dlctl/pkg/driver/exec"
	"dlctl/pkg/driver/trash"
)

func init() {
	driver.Register[trash.Driver](&Provider{})
}

// Paths travel as argv, so names containing quotes need no AppleScript escaping.
var script = []string{
	"-e", "on run argv",
	"-e", "set targets to {}",
	"-e", "repeat with p in argv",
	"-e", "set end of targets to (POSIX file (contents of p)) as alias",
	"-e", "end repeat",
	"-e", `tell application "Finder" to delete targets`,
	"-e", "end run",
}

type Provider struct{}

func (p *Provider) ID() string         { return "trash_finder" }
func (p *Provider) Name() string       { return "macOS Finder" }
func (p *Provider) DefaultWeight() int { return driver.DefaultWeight }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if env.Platform(ctx) != "darwin" {
		return fmt.Errorf("%w: not macOS", driver.ErrIncompatible)
	}
	if !execdriver.IsBinaryAvailable(ctx, "osascript") {
		return fmt.Errorf("%w: osascript not found", driver.ErrIncompatible)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (trash.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) Trash(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append(append([]string(nil), script...), paths...)
	cmd, err := execdriver.Run(ctx, "osascript", args...)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("finder delete failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
