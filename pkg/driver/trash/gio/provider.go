package gio

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

type Provider struct{}

func (p *Provider) ID() string   { return "trash_gio" }
func (p *Provider) Name() string { return "GIO (gio trash)" }

// DefaultWeight is above the built-in XDG trash: GIO also handles
// per-volume trash directories for removable drives.
func (p *Provider) DefaultWeight() int { return 60 }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	switch platform := env.Platform(ctx); platform {
	case "darwin", "windows", "android":
		return fmt.Errorf("%w: %s", driver.ErrIncompatible, platform)
	}
	if !execdriver.IsBinaryAvailable(ctx, "gio") {
		return fmt.Errorf("%w: gio not found", driver.ErrIncompatible)
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
	args := append([]string{"trash", "--"}, paths...)
	cmd, err := execdriver.Run(ctx, "gio", args...)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("gio trash failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
