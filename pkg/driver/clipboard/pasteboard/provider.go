package pasteboard

import (
	"context"
	"fmt"
	"strings"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/clipboard"
	"dlctl/pkg/driver/env"
	execdriver "dlctl/pkg/driver/exec"
)

func init() {
	driver.Register[clipboard.Driver](&Provider{})
}

// The path travels as argv so it never needs AppleScript escaping.
var script = []string{
	"-e", "on run argv",
	"-e", "set the clipboard to (POSIX file (item 1 of argv))",
	"-e", "end run",
}

type Provider struct{}

func (p *Provider) ID() string         { return "clipboard_pasteboard" }
func (p *Provider) Name() string       { return "macOS pasteboard (osascript)" }
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

func (p *Provider) New(ctx context.Context) (clipboard.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) CopyFile(ctx context.Context, path string) error {
	args := append(append([]string(nil), script...), path)
	cmd, err := execdriver.Run(ctx, "osascript", args...)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
