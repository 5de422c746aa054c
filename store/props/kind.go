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

// Kind identifies which variant a property Value holds. The set is
// closed: every property a theme schema declares decodes to one of
// these kinds. Text and path properties share StringKind storage.
type Kind uint8

const (
	PairKind Kind = iota
	StringKind
	ColorKind
	FloatKind
	BoolKind

	UnknownKind Kind = 255
)

// KindToString maps a Kind to the name used in messages.
var KindToString = map[Kind]string{
	UnknownKind: "unknown",
	PairKind:    "pair",
	StringKind:  "string",
	ColorKind:   "color",
	FloatKind:   "float",
	BoolKind:    "bool",
}

// String returns the name of the Kind.
func (k Kind) String() string {
	if s, ok := KindToString[k]; ok {
		return s
	}
	return "invalid kind"
}
