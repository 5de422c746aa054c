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

package typeinfo

import (
	"github.com/sirupsen/logrus"

	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/store/props"
)

// pathCoder resolves path properties against the theme file's directory
// and the user's home directory. A token that resolves to a missing
// file logs a warning but never fails the decode; the resolved string
// is stored either way.
type pathCoder struct{}

var _ Coder = (*pathCoder)(nil)

// PathCoder decodes path properties.
var PathCoder Coder = &pathCoder{}

// PropType implements the Coder interface.
func (c *pathCoder) PropType() schema.PropType {
	return schema.PathProp
}

// Decode implements the Coder interface.
func (c *pathCoder) Decode(ctx DecodeContext, raw string) (props.Value, error) {
	resolved, err := ResolvePath(raw, ctx.ThemeFile, ctx.Home)
	if err != nil {
		return nil, err
	}

	if ctx.WarnMissingAssets && resolved != "" && ctx.FS != nil {
		if exists, _ := ctx.FS.Exists(resolved); !exists {
			ctx.Warnf(logrus.Fields{
				"theme":    ctx.ThemeFile,
				"token":    raw,
				"resolved": resolved,
			}, "could not find file referenced by theme")
		}
	}

	return props.String(resolved), nil
}

// String implements the Coder interface.
func (c *pathCoder) String() string {
	return "PathCoder"
}
