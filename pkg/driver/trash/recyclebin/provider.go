package recyclebin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/env"
	execdriver "dlctl/pkg/driver/exec"
	"dlctl/pkg/driver/trash"
	"dlctl/pkg/powershell"
)

// maxScriptLen keeps each invocation well under the 32767 character
// CreateProcess command line limit.
const maxScriptLen = 24000

func init() {
	driver.Register[trash.Driver](&Provider{})
}

type Provider struct{}

func (p *Provider) ID() string         { return "trash_recyclebin" }
func (p *Provider) Name() string       { return "Windows Recycle Bin (PowerShell)" }
func (p *Provider) DefaultWeight() int { return driver.DefaultWeight }

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if env.Platform(ctx) != "windows" {
		return fmt.Errorf("%w: not Windows", driver.ErrIncompatible)
	}
	if !execdriver.IsBinaryAvailable(ctx, powershell.Executable) {
		return fmt.Errorf("%w: %s not found", driver.ErrIncompatible, powershell.Executable)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (trash.Driver, error) {
	return &Driver{}, nil
}

type Driver struct{}

func (d *Driver) Trash(ctx context.Context, paths []string) error {
	var errs []error
	for _, batch := range Batches(paths, maxScriptLen) {
		script := powershell.RecycleBatchScript(batch)
		cmd, err := execdriver.Run(ctx, powershell.Executable, powershell.Args(script)...)
		if err != nil {
			return err
		}
		if out, err := cmd.CombinedOutput(); err != nil {
			errs = append(errs, fmt.Errorf("recycle failed: %w: %s", err, strings.TrimSpace(string(out))))
		}
	}
	return errors.Join(errs...)
}

// Batches splits paths so that the quoted paths of each batch stay under limit
// characters. A single oversized path still gets a batch of its own.
func Batches(paths []string, limit int) [][]string {
	var out [][]string
	var cur []string
	size := 0
	for _, p := range paths {
		n := len(powershell.Quote(p)) + 2
		if len(cur) > 0 && size+n > limit {
			out = append(out, cur)
			cur, size = nil, 0
		}
		cur = append(cur, p)
		size += n
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
