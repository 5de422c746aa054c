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

package schema

// PropFlags selects which decoded properties an apply operation copies
// onto a live widget. Flags combine with bitwise or.
type PropFlags uint32

const (
	FlagPath PropFlags = 1 << iota
	FlagPosition
	FlagSize
	FlagOrigin
	FlagColor
	FlagFontPath
	FlagFontSize
	FlagTiling
	FlagSound
	FlagCenter
	FlagText

	FlagAll PropFlags = 0xFFFFFFFF
)

// Has reports whether any flag in other is set in f.
func (f PropFlags) Has(other PropFlags) bool {
	return f&other != 0
}

// FlagForProp maps a property name to the flag that gates it during
// apply. The four textlist colors all answer to FlagColor. Unknown
// names map to zero, which no mask selects.
func FlagForProp(name string) PropFlags {
	switch name {
	case "path":
		return FlagPath
	case "pos":
		return FlagPosition
	case "size":
		return FlagSize
	case "origin":
		return FlagOrigin
	case "color", "selectorColor", "selectedColor", "primaryColor", "secondaryColor":
		return FlagColor
	case "fontPath":
		return FlagFontPath
	case "fontSize":
		return FlagFontSize
	case "tile":
		return FlagTiling
	case "center":
		return FlagCenter
	case "text":
		return FlagText
	}
	return 0
}
