// Package projectconfig provides the Config struct and loader for
// .detect.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file looked up from the
// working directory.
const ConfigFileName = ".detect.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultModel      = "detect.model.yaml"
	DefaultOutputDir  = "Output"
	DefaultServerPort = 3000
	DefaultSessionDir = ".detect/sessions"
)

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Dir      string `yaml:"dir,omitempty" env:"DETECT_OUTPUT_DIR"`
	Compress *bool  `yaml:"compress,omitempty" env:"DETECT_OUTPUT_COMPRESS"`
}

// ServerConfig holds web UI server settings.
type ServerConfig struct {
	Port int `yaml:"port,omitempty" env:"DETECT_SERVER_PORT" validate:"min=0,max=65535"`
}

// SessionConfig holds session log settings.
type SessionConfig struct {
	Log *bool  `yaml:"log,omitempty" env:"DETECT_SESSION_LOG"`
	Dir string `yaml:"dir,omitempty" env:"DETECT_SESSION_DIR"`
}

// Config is the top-level configuration loaded from .detect.yaml.
type Config struct {
	Model   string        `yaml:"model,omitempty" env:"DETECT_MODEL"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Session SessionConfig `yaml:"session,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Model: DefaultModel,
		Output: OutputConfig{
			Dir:      DefaultOutputDir,
			Compress: boolPtr(false),
		},
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
		Session: SessionConfig{
			Log: boolPtr(false),
			Dir: DefaultSessionDir,
		},
	}
}

// Load resolves the effective configuration: defaults, overlaid with the
// nearest .detect.yaml (walking up from startDir, max 10 levels),
// overlaid with DETECT_* environment variables, then validated.
// If no config file is found, file values are simply skipped.
func Load(startDir string) (*Config, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
		}
	} else {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
		}
		mergeConfig(cfg, &fileCfg)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// findConfigFile walks up from dir looking for .detect.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Output.Dir != "" {
		dst.Output.Dir = src.Output.Dir
	}
	if src.Output.Compress != nil {
		dst.Output.Compress = src.Output.Compress
	}
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Session.Log != nil {
		dst.Session.Log = src.Session.Log
	}
	if src.Session.Dir != "" {
		dst.Session.Dir = src.Session.Dir
	}
}

func boolPtr(b bool) *bool {
	return &b
}
