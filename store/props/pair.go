// Copyright 2023 Marqueeworks, Inc.
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

package props

import "strconv"

// Pair is a 2D float value, the decoded form of a geometry pair
// property such as pos, size, or origin. Values are conventionally
// normalized to [0, 1] but that is not enforced here.
type Pair struct {
	X float32
	Y float32
}

var _ Value = Pair{}

// NewPair creates a Pair from its two components.
func NewPair(x, y float32) Pair {
	return Pair{X: x, Y: y}
}

// Kind implements the Value interface.
func (v Pair) Kind() Kind {
	return PairKind
}

// Equals implements the Value interface.
func (v Pair) Equals(other Value) bool {
	v2, ok := other.(Pair)
	return ok && v == v2
}

// HumanReadableString implements the Value interface.
func (v Pair) HumanReadableString() string {
	return formatFloat(v.X) + " " + formatFloat(v.Y)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
