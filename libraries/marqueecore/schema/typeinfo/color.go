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
	"strconv"

	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/store/props"
)

// colorCoder decodes hex color properties. Six digit tokens are RGB and
// are widened with a full alpha byte; eight digit tokens are RGBA.
type colorCoder struct{}

var _ Coder = (*colorCoder)(nil)

// ColorCoder decodes color properties.
var ColorCoder Coder = &colorCoder{}

// PropType implements the Coder interface.
func (c *colorCoder) PropType() schema.PropType {
	return schema.ColorProp
}

// Decode implements the Coder interface.
func (c *colorCoder) Decode(ctx DecodeContext, raw string) (props.Value, error) {
	if raw == "" {
		return nil, ErrEmptyColor.New()
	}
	if len(raw) != 6 && len(raw) != 8 {
		return nil, ErrColorLength.New(raw)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return nil, ErrColorDigits.New(raw)
	}

	if len(raw) == 6 {
		v = v<<8 | 0xFF
	}
	return props.Color(uint32(v)), nil
}

// String implements the Coder interface.
func (c *colorCoder) String() string {
	return "ColorCoder"
}
