package text

import (
	"context"
	"fmt"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/clipboard"

	atotto "github.com/atotto/clipboard"
)

func init() {
	driver.Register[clipboard.Driver](&Provider{})
}

// Provider is the last resort: it copies the path as plain text, which most
// applications still accept in a file name field.
type Provider struct{}

func (p *Provider) ID() string         { return "clipboard_text" }
func (p *Provider) Name() string       { return "Plain text path (atotto/clipboard)" }
func (p *Provider) DefaultWeight() int { return 10 }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if atotto.Unsupported {
		return fmt.Errorf("%w: no clipboard utility available", driver.ErrIncompatible)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (clipboard.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) CopyFile(ctx context.Context, path string) error {
	return atotto.WriteAll(path)
}
