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

// Package typeinfo implements the value coders: one decoding routine
// per schema property type, converting the raw text of a property into
// its typed value.
package typeinfo

import (
	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/libraries/utils/filesys"
	"github.com/marqueeworks/marquee/store/props"
)

var (
	// ErrBadPair is returned when a geometry pair token has no space
	// separating its two halves.
	ErrBadPair = errors.NewKind("invalid normalized pair (%q)")

	// ErrEmptyColor is returned when a color token is absent or empty.
	ErrEmptyColor = errors.NewKind("empty color")

	// ErrColorLength is returned when a color token is not 6 or 8
	// digits long.
	ErrColorLength = errors.NewKind("invalid color (bad length, %q - must be 6 or 8)")

	// ErrColorDigits is returned when a color token contains non-hex
	// characters.
	ErrColorDigits = errors.NewKind("invalid color (bad hex digits, %q)")
)

// DecodeContext carries the surrounding state a Coder may need: the
// theme file the raw token came from, the filesystem used for existence
// probes, the home dir provider used for ~ expansion, and the logger
// non-fatal diagnostics go to.
type DecodeContext struct {
	ThemeFile string
	FS        filesys.ReadableFS
	Home      env.HomeDirProvider
	Logger    *logrus.Logger

	// WarnMissingAssets gates the warning logged when a path property
	// points at a file that does not exist.
	WarnMissingAssets bool
}

// Warnf logs a non-fatal diagnostic, if a logger is present.
func (ctx DecodeContext) Warnf(fields logrus.Fields, format string, args ...interface{}) {
	if ctx.Logger == nil {
		return
	}
	ctx.Logger.WithFields(fields).Warnf(format, args...)
}

// Coder decodes the raw text of one property into its typed value.
type Coder interface {
	// PropType reports the schema property type this Coder handles.
	PropType() schema.PropType

	// Decode converts raw into a typed value, or fails with a
	// descriptive error. Decode never modifies ctx.
	Decode(ctx DecodeContext, raw string) (props.Value, error)

	// String returns a name for this Coder for use in messages.
	String() string
}

// FromPropType returns the Coder for the given schema property type,
// or nil if the type is not one of the closed set.
func FromPropType(t schema.PropType) Coder {
	switch t {
	case schema.NormalizedPairProp:
		return PairCoder
	case schema.PathProp:
		return PathCoder
	case schema.TextProp:
		return TextCoder
	case schema.ColorProp:
		return ColorCoder
	case schema.ScalarProp:
		return ScalarCoder
	case schema.BoolProp:
		return BoolCoder
	}
	return nil
}
