package native

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"dlctl/pkg/driver"
	envdriver "dlctl/pkg/driver/env"
)

type Provider struct{}

func (p *Provider) ID() string {
	return "env_native"
}

func (p *Provider) Name() string {
	return "Native Environment"
}

func (p *Provider) DefaultWeight() int {
	return driver.DefaultWeight
}

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	// Always compatible
	return nil
}

func (p *Provider) New(ctx context.Context) (envdriver.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) GetHomeDir(ctx context.Context) (string, error) {
	return os.UserHomeDir()
}

func (d *Driver) GetConfigDir(ctx context.Context) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dlctl"), nil
}

func (d *Driver) Platform(ctx context.Context) string {
	return runtime.GOOS
}

func (d *Driver) ExtraDownloadsDirs(ctx context.Context) []string {
	// xdg-user-dirs may relocate Downloads (localized names, custom paths)
	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return []string{envdriver.ExpandPath(dir)}
	}
	return nil
}

func init() {
	driver.Register[envdriver.Driver](&Provider{})
}
