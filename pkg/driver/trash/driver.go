package trash

import (
	"context"

	"dlctl/pkg/driver"
)

// Driver moves paths to the operating system's trash.
//
// Paths are always literal: implementations never expand globs and pass "--"
// before paths to external tools. Trash attempts every path and returns the
// per-path failures joined with errors.Join.
type Driver interface {
	Trash(ctx context.Context, paths []string) error
}

// Get returns the active trash driver
func Get(ctx context.Context) (Driver, error) {
	return driver.Get[Driver](ctx)
}

// Trash moves paths to the trash using the active driver
func Trash(ctx context.Context, paths []string) error {
	d, err := Get(ctx)
	if err != nil {
		return err
	}
	return d.Trash(ctx, paths)
}
