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

// Package env ties together the pieces a running marquee process needs:
// the user's home directory, the user-level configuration file, and the
// logger that diagnostics are reported through.
package env

import "os"

// HomeDirProvider is a function that returns the current user's home
// directory. Injecting one keeps home-relative path expansion testable.
type HomeDirProvider func() (string, error)

// GetCurrentUserHomeDir is the default HomeDirProvider, backed by the
// operating system.
func GetCurrentUserHomeDir() (string, error) {
	return os.UserHomeDir()
}
