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
	"strings"

	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/store/props"
)

// pairCoder decodes geometry pair properties of the form "x y". The
// split happens at the first space; both halves parse permissively, so
// only a missing separator fails.
type pairCoder struct{}

var _ Coder = (*pairCoder)(nil)

// PairCoder decodes geometry pair properties.
var PairCoder Coder = &pairCoder{}

// PropType implements the Coder interface.
func (c *pairCoder) PropType() schema.PropType {
	return schema.NormalizedPairProp
}

// Decode implements the Coder interface.
func (c *pairCoder) Decode(ctx DecodeContext, raw string) (props.Value, error) {
	divider := strings.IndexByte(raw, ' ')
	if divider == -1 {
		return nil, ErrBadPair.New(raw)
	}

	x := PermissiveFloat(raw[:divider])
	y := PermissiveFloat(raw[divider:])
	return props.NewPair(x, y), nil
}

// String implements the Coder interface.
func (c *pairCoder) String() string {
	return "PairCoder"
}
