package stderr

import (
	"context"
	"fmt"
	"io"
	"os"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/notification"
)

func init() {
	driver.Register[notification.Driver](&Provider{})
}

// Provider prints notifications; it keeps the commands usable over SSH and in CI.
type Provider struct{}

func (p *Provider) ID() string         { return "notification_stderr" }
func (p *Provider) Name() string       { return "Standard error" }
func (p *Provider) DefaultWeight() int { return 10 }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	return nil
}

func (p *Provider) New(ctx context.Context) (notification.Driver, error) {
	return &Driver{Out: os.Stderr}, nil
}

type Driver struct {
	Out io.Writer
}

func (d *Driver) Notify(ctx context.Context, n notification.Notification) error {
	mark := "✓"
	if n.Style == notification.Failure {
		mark = "✗"
	}
	if n.Message == "" {
		_, err := fmt.Fprintf(d.Out, "%s %s\n", mark, n.Title)
		return err
	}
	_, err := fmt.Fprintf(d.Out, "%s %s: %s\n", mark, n.Title, n.Message)
	return err
}
