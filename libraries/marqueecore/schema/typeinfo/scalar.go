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
	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/store/props"
)

// scalarCoder decodes float scalar properties. Parsing is permissive;
// unparsable text yields 0 rather than an error.
type scalarCoder struct{}

var _ Coder = (*scalarCoder)(nil)

// ScalarCoder decodes scalar properties.
var ScalarCoder Coder = &scalarCoder{}

// PropType implements the Coder interface.
func (c *scalarCoder) PropType() schema.PropType {
	return schema.ScalarProp
}

// Decode implements the Coder interface.
func (c *scalarCoder) Decode(ctx DecodeContext, raw string) (props.Value, error) {
	return props.Float(PermissiveFloat(raw)), nil
}

// String implements the Coder interface.
func (c *scalarCoder) String() string {
	return "ScalarCoder"
}
