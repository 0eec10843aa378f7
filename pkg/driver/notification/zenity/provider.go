package zenity

import (
	"context"
	"fmt"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/env"
	"dlctl/pkg/driver/notification"

	"github.com/ncruces/zenity"
)

func init() {
	driver.Register[notification.Driver](&Provider{})
}

type Provider struct{}

func (p *Provider) ID() string         { return "notification_zenity" }
func (p *Provider) Name() string       { return "Native notifications (zenity)" }
func (p *Provider) DefaultWeight() int { return driver.DefaultWeight }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	// On other Unixes zenity shells out to the zenity binary; D-Bus covers those.
	switch platform := env.Platform(ctx); platform {
	case "darwin", "windows":
		return nil
	default:
		return fmt.Errorf("%w: %s", driver.ErrIncompatible, platform)
	}
}

func (p *Provider) New(ctx context.Context) (notification.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) Notify(ctx context.Context, n notification.Notification) error {
	icon := zenity.InfoIcon
	if n.Style == notification.Failure {
		icon = zenity.ErrorIcon
	}
	text := n.Message
	if text == "" || n.Kind == notification.HUD {
		text = n.Title
	}
	return zenity.Notify(text,
		zenity.Title(n.Title),
		zenity.Icon(icon),
		zenity.Context(ctx),
	)
}
