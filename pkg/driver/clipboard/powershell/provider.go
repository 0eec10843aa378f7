package powershell

import (
	"context"
	"fmt"
	"strings"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/clipboard"
	"dlctl/pkg/driver/env"
	execdriver "dlctl/pkg/driver/exec"
	"dlctl/pkg/powershell"
)

func init() {
	driver.Register[clipboard.Driver](&Provider{})
}

type Provider struct{}

func (p *Provider) ID() string         { return "clipboard_powershell" }
func (p *Provider) Name() string       { return "Windows clipboard (Set-Clipboard)" }
func (p *Provider) DefaultWeight() int { return driver.DefaultWeight }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if env.Platform(ctx) != "windows" {
		return fmt.Errorf("%w: not Windows", driver.ErrIncompatible)
	}
	if !execdriver.IsBinaryAvailable(ctx, powershell.Executable) {
		return fmt.Errorf("%w: %s not found", driver.ErrIncompatible, powershell.Executable)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (clipboard.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

// CopyFile sets a CF_HDROP file list, which Explorer pastes as a file copy.
func (d *Driver) CopyFile(ctx context.Context, path string) error {
	script := "Set-Clipboard -LiteralPath " + powershell.Quote(path)
	cmd, err := execdriver.Run(ctx, powershell.Executable, powershell.Args(script)...)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("Set-Clipboard failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
