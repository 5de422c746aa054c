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

package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/sirupsen/logrus"

	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/libraries/marqueecore/schema/typeinfo"
	"github.com/marqueeworks/marquee/libraries/utils/filesys"
	"github.com/marqueeworks/marquee/store/props"
)

const (
	// MinVersion is the lowest document format version the parser
	// accepts.
	MinVersion = 3

	// CurrentVersion is the format version written by current tooling.
	CurrentVersion = 3

	// versionSentinel marks an absent or empty <version> tag.
	versionSentinel = -404
)

// Parser loads theme documents. It holds no per-document state, so a
// single Parser may load any number of documents, concurrently if
// desired. Construct with NewParser.
type Parser struct {
	fs     filesys.ReadableFS
	hdp    env.HomeDirProvider
	logger *logrus.Logger

	// WarnMissingAssets controls whether path properties pointing at
	// nonexistent files log a warning. On by default.
	WarnMissingAssets bool
}

// NewParser returns a Parser reading through fs, expanding ~ through
// hdp, and reporting non-fatal diagnostics through logger. A nil logger
// falls back to the logrus standard logger.
func NewParser(fs filesys.ReadableFS, hdp env.HomeDirProvider, logger *logrus.Logger) *Parser {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Parser{
		fs:                fs,
		hdp:               hdp,
		logger:            logger,
		WarnMissingAssets: true,
	}
}

// LoadFile reads and parses the theme document at path using the local
// filesystem and the current user's home directory.
func LoadFile(path string) (*Theme, error) {
	return NewParser(filesys.LocalFS, env.GetCurrentUserHomeDir, nil).Load(path)
}

// Load reads and parses the theme document at path. Load either returns
// a fully valid Theme or an ErrThemeLoad; it never publishes partial
// state, so a failed reload cannot clobber a previously loaded Theme.
func (p *Parser) Load(path string) (*Theme, error) {
	if exists, isDir := p.fs.Exists(path); !exists || isDir {
		return nil, loadErrf(path, "missing file")
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, loadErrf(path, "%s", err)
	}

	return p.Parse(path, data)
}

// Parse decodes data as the theme document at path. The path is used
// for error prefixes and for resolving theme-relative asset paths.
func (p *Parser) Parse(path string, data []byte) (*Theme, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, loadErrf(path, "xml parsing error: %s", err)
	}

	rootVal, ok := m["theme"]
	if !ok {
		return nil, loadErrf(path, "missing <theme> tag")
	}
	root, _ := rootVal.(map[string]interface{})

	version, err := p.parseVersion(path, root)
	if err != nil {
		return nil, err
	}

	th := &Theme{
		sourcePath: path,
		version:    version,
		views:      map[string]*View{},
	}

	for _, viewNode := range childNodes(root["view"]) {
		name, ok := attrOf(viewNode, "name")
		if !ok {
			return nil, loadErrf(path, `view missing "name" attribute`)
		}

		view, err := p.parseView(path, name, viewNode)
		if err != nil {
			return nil, err
		}

		// Views that parsed no elements carry no information and are
		// dropped.
		if len(view.elements) > 0 {
			th.views[name] = view
		}
	}

	return th, nil
}

func (p *Parser) parseVersion(path string, root map[string]interface{}) (float32, error) {
	var version float32 = versionSentinel

	raw := strings.TrimSpace(textOf(root["version"]))
	if raw != "" {
		version = typeinfo.PermissiveFloat(raw)
	}

	if version == versionSentinel {
		return 0, loadErrf(path, "<version> tag missing! It may be out of date; add <version>%d</version> inside your <theme> tag", CurrentVersion)
	}
	if version < MinVersion {
		return 0, loadErrf(path, "theme is version %s, minimum supported version is %d", formatVersion(version), MinVersion)
	}

	return version, nil
}

func (p *Parser) parseView(path, name string, viewNode map[string]interface{}) (*View, error) {
	view := &View{
		name:     name,
		elements: map[string]*Element{},
	}

	for _, elemType := range childKeys(viewNode) {
		sch, known := schema.LookupElement(elemType)

		for _, elemNode := range childNodes(viewNode[elemType]) {
			elemName, hasName := attrOf(elemNode, "name")
			if !hasName {
				return nil, loadErrf(path, `element of type %q missing "name" attribute`, elemType)
			}
			if !known {
				return nil, loadErrf(path, "unknown element of type %q", elemType)
			}

			el, err := p.parseElement(path, elemName, elemType, sch, elemNode)
			if err != nil {
				return nil, err
			}

			// A repeated element name replaces the earlier element.
			view.elements[elemName] = el
		}
	}

	return view, nil
}

func (p *Parser) parseElement(path, name, elemType string, sch schema.ElementSchema, node map[string]interface{}) (*Element, error) {
	extraRaw, _ := attrOf(node, "extra")

	el := &Element{
		name:     name,
		elemType: elemType,
		extra:    typeinfo.Truthy(extraRaw),
		values:   map[string]props.Value{},
	}

	dctx := typeinfo.DecodeContext{
		ThemeFile:         path,
		FS:                p.fs,
		Home:              p.hdp,
		Logger:            p.logger,
		WarnMissingAssets: p.WarnMissingAssets,
	}

	for _, propName := range childKeys(node) {
		propType, ok := sch[propName]
		if !ok {
			return nil, loadErrf(path, "unknown property type %q (for element of type %s)", propName, elemType)
		}

		coder := typeinfo.FromPropType(propType)

		// Every occurrence decodes, in document order; the last one
		// wins. An earlier malformed occurrence still fails the parse.
		for _, raw := range textValues(node[propName]) {
			v, err := coder.Decode(dctx, raw)
			if err != nil {
				return nil, loadErrf(path, "%s", err)
			}
			el.values[propName] = v
		}
	}

	return el, nil
}

func formatVersion(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// The helpers below normalize the map shapes mxj produces: a bare
// string for a simple element, a map when attributes or children are
// present, and a slice when a tag repeats. Attribute keys carry a
// hyphen prefix and element text sits under "#text".

// textOf extracts the text content of a decoded node. For a repeated
// tag the last occurrence wins.
func textOf(node interface{}) string {
	switch n := node.(type) {
	case nil:
		return ""
	case string:
		return n
	case map[string]interface{}:
		return textOf(n["#text"])
	case []interface{}:
		if len(n) == 0 {
			return ""
		}
		return textOf(n[len(n)-1])
	default:
		return fmt.Sprintf("%v", n)
	}
}

// textValues returns the text of every occurrence of a child tag in
// document order.
func textValues(v interface{}) []string {
	if list, ok := v.([]interface{}); ok {
		out := make([]string, 0, len(list))
		for _, c := range list {
			out = append(out, textValues(c)...)
		}
		return out
	}
	return []string{textOf(v)}
}

// attrOf returns the value of the named attribute and whether it was
// present.
func attrOf(node map[string]interface{}, name string) (string, bool) {
	v, ok := node["-"+name]
	if !ok {
		return "", false
	}
	return textOf(v), true
}

// childNodes normalizes a child entry to a slice of element maps in
// document order. A bare string leaf has no attributes or children and
// normalizes to an empty map.
func childNodes(v interface{}) []map[string]interface{} {
	switch n := v.(type) {
	case nil:
		return nil
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(n))
		for _, c := range n {
			out = append(out, childNodes(c)...)
		}
		return out
	case map[string]interface{}:
		return []map[string]interface{}{n}
	default:
		return []map[string]interface{}{{}}
	}
}

// childKeys returns the child tag names of node, skipping attribute and
// text keys. mxj groups repeated tags under one key, losing document
// order across different tags, so keys come back sorted to keep parse
// results deterministic.
func childKeys(node map[string]interface{}) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		if strings.HasPrefix(k, "-") || k == "#text" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
