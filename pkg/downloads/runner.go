package downloads

import (
	"context"

	execdriver "dlctl/pkg/driver/exec"
)

// CommandRunner runs an external command to completion.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands through the active exec driver, discarding output.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	_, err := execdriver.Output(ctx, name, args...)
	return err
}
