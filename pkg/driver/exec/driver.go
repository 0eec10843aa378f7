package exec

import (
	"context"
	"errors"
	"os/exec"

	"dlctl/pkg/driver"
)

// Driver spawns external programs.
type Driver interface {
	// Run prepares a command; the caller decides how to start it.
	Run(ctx context.Context, name string, args ...string) *exec.Cmd
	// Which resolves a binary name to an absolute path.
	Which(ctx context.Context, name string) (string, error)
}

// Run prepares name with the active exec driver.
func Run(ctx context.Context, name string, args ...string) (*exec.Cmd, error) {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		return nil, err
	}
	return d.Run(ctx, name, args...), nil
}

// Which resolves name with the active exec driver.
func Which(ctx context.Context, name string) (string, error) {
	d, err := driver.Get[Driver](ctx)
	if err != nil {
		return "", err
	}
	return d.Which(ctx, name)
}

// IsBinaryAvailable reports whether name can be found.
func IsBinaryAvailable(ctx context.Context, name string) bool {
	_, err := Which(ctx, name)
	return err == nil
}

// Output runs name and returns its stdout. Stderr is folded into the error.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd, err := Run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, &CommandError{Name: name, Err: err, Stderr: string(exitErr.Stderr)}
		}
		return out, &CommandError{Name: name, Err: err}
	}
	return out, nil
}

// CommandError carries the stderr of a failed command.
type CommandError struct {
	Name   string
	Err    error
	Stderr string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return e.Name + ": " + e.Err.Error()
	}
	return e.Name + ": " + e.Err.Error() + ": " + e.Stderr
}

func (e *CommandError) Unwrap() error { return e.Err }
