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

// Bool is a boolean value.
type Bool bool

var _ Value = Bool(false)

// Kind implements the Value interface.
func (v Bool) Kind() Kind {
	return BoolKind
}

// Equals implements the Value interface.
func (v Bool) Equals(other Value) bool {
	v2, ok := other.(Bool)
	return ok && v == v2
}

// HumanReadableString implements the Value interface.
func (v Bool) HumanReadableString() string {
	return strconv.FormatBool(bool(v))
}
