package wayland

import (
	"context"
	"fmt"
	"os"
	"strings"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/clipboard"
	execdriver "dlctl/pkg/driver/exec"
)

func init() {
	driver.Register[clipboard.Driver](&Provider{})
}

type Provider struct{}

func (p *Provider) ID() string         { return "clipboard_wayland" }
func (p *Provider) Name() string       { return "wl-clipboard" }
func (p *Provider) DefaultWeight() int { return 70 }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: WAYLAND_DISPLAY not set", driver.ErrIncompatible)
	}
	if !execdriver.IsBinaryAvailable(ctx, "wl-copy") {
		return fmt.Errorf("%w: wl-copy not found", driver.ErrIncompatible)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (clipboard.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) CopyFile(ctx context.Context, path string) error {
	cmd, err := execdriver.Run(ctx, "wl-copy", "--type", "text/uri-list")
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(clipboard.URIList(path))
	// wl-copy forks a server that keeps serving the selection; capturing its
	// output would hold a pipe open until the clipboard changes hands.
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy failed: %w", err)
	}
	return nil
}
