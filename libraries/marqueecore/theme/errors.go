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

package theme

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrThemeLoad is the single failure kind raised while loading a theme
// document. The message is always prefixed with the source file path.
// Callers should treat any ErrThemeLoad as "theme unavailable" and fall
// back to a previous or default theme.
var ErrThemeLoad = errors.NewKind(`error loading theme from "%s": %s`)

// Query failures raised by Theme lookups. Each condition fails
// distinctly so callers can tell a missing view from a missing element
// from a property of the wrong kind.
var (
	ErrViewNotFound     = errors.NewKind("view %q not found")
	ErrElementNotFound  = errors.NewKind("element %q not found in view %q")
	ErrElementType      = errors.NewKind("element %q is of type %s, not %s")
	ErrPropNotFound     = errors.NewKind("property %q not found on element %q")
	ErrPropKindMismatch = errors.NewKind("property %q holds a %s, not a %s")
	ErrCueNotFound      = errors.NewKind("no sound cue named %q")
)

// loadErrf composes an ErrThemeLoad for the theme at path.
func loadErrf(path string, format string, args ...interface{}) error {
	return ErrThemeLoad.New(path, fmt.Sprintf(format, args...))
}
