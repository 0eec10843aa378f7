package freedesktop

import (
	"context"
	"fmt"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/env"
	"dlctl/pkg/driver/trash"

	"github.com/spf13/afero"
)

func init() {
	driver.Register[trash.Driver](&Provider{})
}

type Provider struct{}

func (p *Provider) ID() string         { return "trash_freedesktop" }
func (p *Provider) Name() string       { return "XDG home trash" }
func (p *Provider) DefaultWeight() int { return driver.DefaultWeight }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	switch platform := env.Platform(ctx); platform {
	case "darwin", "windows", "android", "plan9", "js", "wasip1":
		return fmt.Errorf("%w: %s has no XDG trash", driver.ErrIncompatible, platform)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (trash.Driver, error) {
	home, err := env.GetHomeDir(ctx)
	if err != nil {
		return nil, err
	}
	return &Driver{Fs: afero.NewOsFs(), Dir: HomeTrashDir(home)}, nil
}
