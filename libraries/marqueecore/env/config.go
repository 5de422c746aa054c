// Copyright 2024 Marqueeworks, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package env

import (
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"

	"github.com/marqueeworks/marquee/libraries/utils/filesys"
)

const (
	marqueeDir     = ".marquee"
	configFileName = "config.yaml"
)

// ErrBadConfig is returned when the user config file cannot be decoded.
var ErrBadConfig = errors.NewKind("invalid config at %s")

// Config is the user-level marquee configuration, stored at
// ~/.marquee/config.yaml. Fields are pointers so that an absent key can
// be told apart from an explicit zero value.
type Config struct {
	// ThemesDir is the directory scanned for theme documents when no
	// path is given on the command line.
	ThemesDir *string `yaml:"themes_dir,omitempty"`

	// DefaultTheme is the theme file commands fall back to.
	DefaultTheme *string `yaml:"default_theme,omitempty"`

	// LogLevel controls diagnostic verbosity (logrus level names).
	LogLevel *string `yaml:"log_level,omitempty" default:"warn"`

	// WarnMissingAssets toggles the warning logged when a theme
	// references a file that does not exist.
	WarnMissingAssets *bool `yaml:"warn_missing_assets,omitempty" default:"true"`
}

// DefaultConfig returns a Config with every field at its default value.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// ConfigPath returns the path of the user config file under the given
// home directory.
func ConfigPath(home string) string {
	return filepath.Join(home, marqueeDir, configFileName)
}

// LoadConfig reads the user config, applying defaults for any missing
// fields. A missing config file yields the default config, not an error.
func LoadConfig(hdp HomeDirProvider, fs filesys.ReadableFS) (*Config, error) {
	cfg := DefaultConfig()

	home, err := hdp()
	if err != nil {
		return nil, err
	}

	path := ConfigPath(home)
	if exists, isDir := fs.Exists(path); !exists || isDir {
		return cfg, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err = yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, ErrBadConfig.Wrap(err, path)
	}

	return cfg, nil
}

// GetThemesDir returns the configured themes directory, or "" if unset.
func (cfg *Config) GetThemesDir() string {
	if cfg.ThemesDir != nil {
		return *cfg.ThemesDir
	}
	return ""
}

// GetDefaultTheme returns the configured default theme file, or "" if
// unset.
func (cfg *Config) GetDefaultTheme() string {
	if cfg.DefaultTheme != nil {
		return *cfg.DefaultTheme
	}
	return ""
}

// GetLogLevel returns the configured log level name.
func (cfg *Config) GetLogLevel() string {
	if cfg.LogLevel != nil {
		return *cfg.LogLevel
	}
	return "warn"
}

// GetWarnMissingAssets reports whether missing-asset warnings are
// enabled.
func (cfg *Config) GetWarnMissingAssets() bool {
	if cfg.WarnMissingAssets != nil {
		return *cfg.WarnMissingAssets
	}
	return true
}

// LogrusLevel converts the configured log level to a logrus level,
// falling back to warn when the name does not parse.
func (cfg *Config) LogrusLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// String returns the config serialized as yaml.
func (cfg *Config) String() string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "(invalid config)"
	}
	return string(data)
}
