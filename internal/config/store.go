package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hnrobert/hr/internal/hostfs"
)

const (
	defaultDumpMode = "0600"

	EnvConfig   = "HR_CONFIG"
	EnvHostRoot = "HR_HOST_ROOT"
	EnvLogDir   = "HR_LOG_DIR"
	EnvDumpMode = "HR_DUMP_MODE"
)

type Config struct {
	// HostRoot is where etc/passwd, etc/shadow and etc/group live.
	HostRoot string `yaml:"host_root"`
	// LogDir enables daily log files under LogDir/logs when set.
	LogDir string `yaml:"log_dir"`
	// DumpMode is the octal permission of written dump files.
	DumpMode string `yaml:"dump_mode"`
}

func DefaultPath() string {
	return "/etc/hr/config.yaml"
}

func DefaultConfig() Config {
	return Config{
		HostRoot: hostfs.DefaultRoot,
		DumpMode: defaultDumpMode,
	}
}

func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.HostRoot == "" {
		c.HostRoot = d.HostRoot
	}
	if c.DumpMode == "" {
		c.DumpMode = d.DumpMode
	}
	return c
}

// FileMode parses DumpMode.
func (c Config) FileMode() (os.FileMode, error) {
	n, err := strconv.ParseUint(c.DumpMode, 8, 32)
	if err != nil || n > 0777 {
		return 0, fmt.Errorf("invalid dump_mode %q", c.DumpMode)
	}
	return os.FileMode(n), nil
}

// Load reads the YAML file at path, applies environment overrides and
// fills defaults. An empty path falls back to $HR_CONFIG and then to
// DefaultPath; only the default location may be missing.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}

	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg = applyEnv(cfg).WithDefaults()
	if _, err := cfg.FileMode(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvHostRoot); v != "" {
		cfg.HostRoot = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv(EnvDumpMode); v != "" {
		cfg.DumpMode = v
	}
	return cfg
}
