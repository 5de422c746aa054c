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

// Value is a single typed theme property value.
type Value interface {
	// Kind reports the variant held by this Value.
	Kind() Kind

	// Equals determines if two values are equal.
	Equals(other Value) bool

	// HumanReadableString returns a display form of the value.
	HumanReadableString() string
}

// KindOf returns the Kind of v, or UnknownKind for a nil Value.
func KindOf(v Value) Kind {
	if v == nil {
		return UnknownKind
	}
	return v.Kind()
}
