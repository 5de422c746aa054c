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
	"strings"
)

// PermissiveFloat converts the longest numeric prefix of s to a float,
// skipping leading whitespace. Text with no numeric prefix converts to
// 0. This matches the C-style atof conventions theme documents were
// historically parsed with, so "0.5x" is 0.5 and "abc" is 0.
func PermissiveFloat(s string) float32 {
	s = strings.TrimLeft(s, " \t\r\n")

	end := 0
	seenDigit := false

	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		seenDigit = true
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			seenDigit = true
		}
	}
	if seenDigit && end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		// The exponent only counts if digits follow it.
		mark := end
		end++
		if end < len(s) && (s[end] == '+' || s[end] == '-') {
			end++
		}
		expDigits := false
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			expDigits = true
		}
		if !expDigits {
			end = mark
		}
	}

	if !seenDigit {
		return 0
	}

	f, err := strconv.ParseFloat(s[:end], 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// Truthy reports whether the raw token reads as true. Only a leading
// '1', 't', 'T', 'y', or 'Y' counts; everything else, including an
// empty token, is false.
func Truthy(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '1', 't', 'T', 'y', 'Y':
		return true
	}
	return false
}
