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
	"path/filepath"
	"strings"

	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
)

// ResolvePath rewrites a raw path token using home-directory and
// theme-file-relative expansion.
//
// A token whose first path segment is exactly "~" has that character
// replaced by the user's home directory; a token whose first segment is
// exactly "." has it replaced by the directory containing the theme
// file. Anything else, including tokens that merely begin with those
// characters ("~backup", ".hidden", ".."), passes through unchanged, as
// does an empty token.
func ResolvePath(token string, themeFile string, hdp env.HomeDirProvider) (string, error) {
	if token == "" {
		return token, nil
	}

	switch firstPathSegment(token) {
	case "~":
		if hdp == nil {
			return token, nil
		}
		home, err := hdp()
		if err != nil {
			return "", err
		}
		return home + token[1:], nil
	case ".":
		return filepath.Dir(themeFile) + token[1:], nil
	default:
		return token, nil
	}
}

// firstPathSegment returns the leading path component of p: everything
// up to the first slash, or all of p if it has none.
func firstPathSegment(p string) string {
	if i := strings.IndexByte(p, '/'); i != -1 {
		return p[:i]
	}
	return p
}
