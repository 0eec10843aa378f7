package dbus

import (
	"context"
	"fmt"
	"os"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/notification"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = busName + ".Notify"

	appName = "dlctl"

	// Expiry in milliseconds; -1 lets the server decide.
	toastTimeout = int32(-1)
	hudTimeout   = int32(1500)
)

func init() {
	driver.Register[notification.Driver](&Provider{})
}

type Provider struct{}

func (p *Provider) ID() string         { return "notification_dbus" }
func (p *Provider) Name() string       { return "freedesktop notifications (D-Bus)" }
func (p *Provider) DefaultWeight() int { return 70 }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" && os.Getenv("XDG_RUNTIME_DIR") == "" {
		return fmt.Errorf("%w: no session bus", driver.ErrIncompatible)
	}
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %v", driver.ErrIncompatible, err)
	}
	defer conn.Close()

	var owned bool
	if err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.NameHasOwner", 0, busName).Store(&owned); err != nil {
		return fmt.Errorf("%w: %v", driver.ErrIncompatible, err)
	}
	if !owned {
		// Servers are often D-Bus activated, so an activatable name is enough.
		var activatable []string
		if err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListActivatableNames", 0).Store(&activatable); err != nil {
			return fmt.Errorf("%w: %v", driver.ErrIncompatible, err)
		}
		for _, name := range activatable {
			if name == busName {
				return nil
			}
		}
		return fmt.Errorf("%w: %s not available", driver.ErrIncompatible, busName)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (notification.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) Notify(ctx context.Context, n notification.Notification) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	icon, urgency := "dialog-information", byte(1)
	if n.Style == notification.Failure {
		icon, urgency = "dialog-error", byte(2)
	}
	timeout := toastTimeout
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgency),
	}
	if n.Kind == notification.HUD {
		timeout = hudTimeout
		hints["transient"] = dbus.MakeVariant(true)
	}

	obj := conn.Object(busName, objectPath)
	call := obj.CallWithContext(ctx, method, 0,
		appName,
		uint32(0),
		icon,
		n.Title,
		n.Message,
		[]string{},
		hints,
		timeout,
	)
	if call.Err != nil {
		return fmt.Errorf("notify failed: %w", call.Err)
	}
	return nil
}
