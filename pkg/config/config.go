package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"dlctl/pkg/driver"
	"dlctl/pkg/driver/env"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultStatJobs bounds concurrent stat calls while scanning a folder.
	DefaultStatJobs = 8

	fileName = "settings.toml"
)

type DownloadsConfig struct {
	// Folder overrides the Downloads folder lookup when it exists.
	Folder   string `toml:"folder"`
	StatJobs int    `toml:"stat_jobs"`
}

type Config struct {
	Downloads DownloadsConfig `toml:"downloads"`
	// Drivers maps provider IDs to weights; <= 0 disables the provider.
	Drivers map[string]int `toml:"drivers"`
}

var (
	mu     sync.Mutex
	cached *Config
)

// Path returns the settings file location ($DLCTL_CONFIG wins).
func Path(ctx context.Context) (string, error) {
	if p := os.Getenv("DLCTL_CONFIG"); p != "" {
		return env.ExpandPath(p), nil
	}
	dir, err := env.GetConfigDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the settings once per process and applies driver weights.
// A missing settings file yields the defaults. On error the returned config
// is still usable: defaults with the environment overrides applied.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	cfg, err := load(context.Background())
	cached = cfg
	return cfg, err
}

func load(ctx context.Context) (*Config, error) {
	path, err := Path(ctx)
	if err != nil {
		cfg := Default()
		applyEnv(cfg)
		return cfg, fmt.Errorf("failed to locate config: %w", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		cfg = Default()
		applyEnv(cfg)
		return cfg, err
	}
	applyEnv(cfg)
	driver.SetWeights(cfg.Drivers)
	return cfg, nil
}

// LoadFile parses the settings at path without consulting the environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("config not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Downloads.StatJobs < 1 {
		cfg.Downloads.StatJobs = DefaultStatJobs
	}
	if cfg.Drivers == nil {
		cfg.Drivers = map[string]int{}
	}
	slog.Debug("config loaded", "path", path)
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Downloads: DownloadsConfig{StatJobs: DefaultStatJobs},
		Drivers:   map[string]int{},
	}
}

func applyEnv(cfg *Config) {
	if folder := os.Getenv("DLCTL_FOLDER"); folder != "" {
		cfg.Downloads.Folder = folder
	}
}

// FolderOverride returns the configured folder with ~ and $VARS expanded.
func (c *Config) FolderOverride() string {
	if c.Downloads.Folder == "" {
		return ""
	}
	return env.ExpandPath(c.Downloads.Folder)
}
