// Package config holds application constants and the optional YAML config
// file read at startup. File values seed first-run defaults; settings stored
// in the database take precedence afterwards.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arjunmw/focal/internal/timer"
	"github.com/arjunmw/focal/internal/util"
)

// FileConfig is the on-disk configuration shape.
type FileConfig struct {
	Theme        string `yaml:"theme"`
	Muted        bool   `yaml:"muted"`
	WorkMinutes  int    `yaml:"work_minutes"`
	BreakMinutes int    `yaml:"break_minutes"`
	ExtraMinutes int    `yaml:"extra_minutes"`
}

// Default returns the built-in configuration.
func Default() FileConfig {
	return FileConfig{
		Theme:        DefaultTheme,
		WorkMinutes:  timer.DefaultWorkMinutes,
		BreakMinutes: timer.DefaultBreakMinutes,
		ExtraMinutes: timer.DefaultExtraMinutes,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), "config.yaml")
}

// Load reads the config file at path, or the standard location when path is
// empty. A missing file is not an error; built-in defaults are returned.
func Load(path string) (FileConfig, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// TimerConfig converts the file values into a timer configuration, clamping
// each duration to its mode's valid range.
func (c FileConfig) TimerConfig() timer.Config {
	cfg := timer.DefaultConfig()
	if c.WorkMinutes > 0 {
		cfg.SetMinutes(timer.ModeWork, c.WorkMinutes)
	}
	if c.BreakMinutes > 0 {
		cfg.SetMinutes(timer.ModeBreak, c.BreakMinutes)
	}
	if c.ExtraMinutes > 0 {
		cfg.SetMinutes(timer.ModeExtra, c.ExtraMinutes)
	}
	return cfg
}
