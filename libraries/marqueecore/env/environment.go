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
	"io"

	"github.com/sirupsen/logrus"

	"github.com/marqueeworks/marquee/libraries/utils/filesys"
)

// ThemeEnv holds the process-level collaborators commands operate with:
// the filesystem, the user config, and the shared logger.
type ThemeEnv struct {
	Version string
	Config  *Config
	FS      filesys.Filesys
	Logger  *logrus.Logger

	hdp HomeDirProvider

	// ConfigLoadErr is non-nil when the user config could not be read;
	// the env falls back to defaults in that case.
	ConfigLoadErr error
}

// Load assembles a ThemeEnv from the host filesystem and user config.
// Diagnostics are written to errOut at the configured log level. A
// broken config file does not fail the load; the error is recorded in
// ConfigLoadErr and defaults are used.
func Load(hdp HomeDirProvider, fs filesys.Filesys, errOut io.Writer, version string) *ThemeEnv {
	logger := logrus.New()
	logger.SetOutput(errOut)

	cfg, err := LoadConfig(hdp, fs)
	if err != nil {
		cfg = DefaultConfig()
	}

	logger.SetLevel(cfg.LogrusLevel())

	return &ThemeEnv{
		Version:       version,
		Config:        cfg,
		FS:            fs,
		Logger:        logger,
		hdp:           hdp,
		ConfigLoadErr: err,
	}
}

// HomeProvider returns the env's home directory provider.
func (tEnv *ThemeEnv) HomeProvider() HomeDirProvider {
	return tEnv.hdp
}

// HomeDir returns the current user's home directory.
func (tEnv *ThemeEnv) HomeDir() (string, error) {
	return tEnv.hdp()
}
