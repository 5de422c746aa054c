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

import "fmt"

// Color is a 32 bit color packed as 0xRRGGBBAA.
type Color uint32

var _ Value = Color(0)

// Kind implements the Value interface.
func (v Color) Kind() Kind {
	return ColorKind
}

// Equals implements the Value interface.
func (v Color) Equals(other Value) bool {
	v2, ok := other.(Color)
	return ok && v == v2
}

// HumanReadableString implements the Value interface.
func (v Color) HumanReadableString() string {
	return fmt.Sprintf("#%08x", uint32(v))
}

// R returns the red channel.
func (v Color) R() uint8 {
	return uint8(v >> 24)
}

// G returns the green channel.
func (v Color) G() uint8 {
	return uint8(v >> 16)
}

// B returns the blue channel.
func (v Color) B() uint8 {
	return uint8(v >> 8)
}

// A returns the alpha channel.
func (v Color) A() uint8 {
	return uint8(v)
}
