package xclip

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

func (p *Provider) ID() string         { return "clipboard_xclip" }
func (p *Provider) Name() string       { return "xclip" }
func (p *Provider) DefaultWeight() int { return 60 }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if os.Getenv("DISPLAY") == "" {
		return fmt.Errorf("%w: DISPLAY not set", driver.ErrIncompatible)
	}
	if !execdriver.IsBinaryAvailable(ctx, "xclip") {
		return fmt.Errorf("%w: xclip not found", driver.ErrIncompatible)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (clipboard.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) CopyFile(ctx context.Context, path string) error {
	// xclip forks a selection owner and the parent exits, so Run returns promptly.
	cmd, err := execdriver.Run(ctx, "xclip", "-selection", "clipboard", "-t", "text/uri-list")
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(clipboard.URIList(path))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xclip failed: %w", err)
	}
	return nil
}
