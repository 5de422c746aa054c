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

// String is a UTF-8 string value. Both text properties and resolved
// path properties decode to String.
type String string

var _ Value = String("")

// Kind implements the Value interface.
func (v String) Kind() Kind {
	return StringKind
}

// Equals implements the Value interface.
func (v String) Equals(other Value) bool {
	v2, ok := other.(String)
	return ok && v == v2
}

// HumanReadableString implements the Value interface.
func (v String) HumanReadableString() string {
	return strconv.Quote(string(v))
}
