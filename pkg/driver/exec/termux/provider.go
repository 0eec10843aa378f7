package termux

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"dlctl/pkg/api"
	"dlctl/pkg/driver"
	execdriver "dlctl/pkg/driver/exec"
)

const defaultPrefix = "/data/data/com.termux/files/usr"

type Provider struct{}

func (p *Provider) ID() string {
	return "exec_termux"
}

func (p *Provider) Name() string {
	return "Termux"
}

func (p *Provider) DefaultWeight() int {
	// Preferred over exec_native on Android
	return 60
}

func (p *Provider) CheckCompatibility(ctx context.Context) error {
	if os.Getenv("TERMUX_VERSION") == "" {
		return fmt.Errorf("%w: not running in Termux", driver.ErrIncompatible)
	}
	return nil
}

func (p *Provider) New(ctx context.Context) (execdriver.Driver, error) {
	prefix := os.Getenv("PREFIX")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Driver{Prefix: prefix, Path: os.Getenv("PATH")}, nil
}

type Driver struct {
	Prefix string
	Path   string
}

func (d *Driver) Run(ctx context.Context, name string, args ...string) *exec.Cmd {
	fullPath, err := d.Which(ctx, name)
	if err != nil {
		fullPath = name
	}
	slog.Debug("exec", "command", fullPath, "args", args)
	cmd := exec.CommandContext(ctx, fullPath, args...)
	cmd.Env = Environ(os.Environ(), d.Prefix)
	return cmd
}

// Which walks PATH by hand; exec.LookPath can trigger SIGSYS on Android.
func (d *Driver) Which(ctx context.Context, name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", api.ErrBinaryNotFound, name)
	}

	for _, dir := range filepath.SplitList(d.Path) {
		fullPath := filepath.Join(dir, name)
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			slog.Debug("which", "binary", name, "result", fullPath)
			return fullPath, nil
		}
	}
	slog.Debug("which", "binary", name, "result", api.ErrBinaryNotFound)
	return "", fmt.Errorf("%w: %s", api.ErrBinaryNotFound, name)
}

// Environ returns base without LD_PRELOAD (termux-exec breaks some helpers)
// and with PREFIX set.
func Environ(base []string, prefix string) []string {
	out := make([]string, 0, len(base)+1)
	hasPrefix := false
	for _, e := range base {
		if strings.HasPrefix(e, "LD_PRELOAD=") {
			continue
		}
		if strings.HasPrefix(e, "PREFIX=") {
			hasPrefix = true
		}
		out = append(out, e)
	}
	if !hasPrefix {
		out = append(out, "PREFIX="+prefix)
	}
	return out
}

func init() {
	driver.Register[execdriver.Driver](&Provider{})
}
