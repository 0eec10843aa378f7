package notification

import (
	"context"

	"dlctl/pkg/driver"
)

// Style is the outcome a notification reports.
type Style int

const (
	Success Style = iota
	Failure
)

func (s Style) String() string {
	if s == Failure {
		return "failure"
	}
	return "success"
}

// Kind selects how the notification is presented.
type Kind int

const (
	// Toast is a transient status message with an optional detail line.
	Toast Kind = iota
	// HUD is a short, title-only confirmation.
	HUD
)

// Notification is a user-visible, auto-dismissing message.
type Notification struct {
	Style   Style
	Kind    Kind
	Title   string
	Message string
}

// Driver shows notifications to the user.
type Driver interface {
	Notify(ctx context.Context, n Notification) error
}

// Get returns the active notification driver
func Get(ctx context.Context) (Driver, error) {
	return driver.Get[Driver](ctx)
}

// Notify shows n using the active driver
func Notify(ctx context.Context, n Notification) error {
	d, err := Get(ctx)
	if err != nil {
		return err
	}
	return d.Notify(ctx, n)
}
