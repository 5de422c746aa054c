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

// Package schema defines the element types a theme document may contain
// and the typed properties each element type allows.
package schema

import (
	"sort"

	"github.com/marqueeworks/marquee/store/props"
)

// PropType enumerates the closed set of property types an element
// schema may declare.
type PropType uint8

const (
	NormalizedPairProp PropType = iota
	PathProp
	TextProp
	ColorProp
	ScalarProp
	BoolProp
)

var propTypeToString = map[PropType]string{
	NormalizedPairProp: "normalized_pair",
	PathProp:           "path",
	TextProp:           "text",
	ColorProp:          "color",
	ScalarProp:         "scalar",
	BoolProp:           "bool",
}

// String returns the name of the PropType.
func (t PropType) String() string {
	if s, ok := propTypeToString[t]; ok {
		return s
	}
	return "invalid prop type"
}

// ValueKind reports the props.Kind a decoded value of this type holds.
// Text and path properties share string storage.
func (t PropType) ValueKind() props.Kind {
	switch t {
	case NormalizedPairProp:
		return props.PairKind
	case PathProp, TextProp:
		return props.StringKind
	case ColorProp:
		return props.ColorKind
	case ScalarProp:
		return props.FloatKind
	case BoolProp:
		return props.BoolKind
	}
	return props.UnknownKind
}

// ElementSchema is the property table of one element type, mapping each
// allowed property name to its type.
type ElementSchema map[string]PropType

// PropNames returns the schema's property names in sorted order.
func (es ElementSchema) PropNames() []string {
	names := make([]string, 0, len(es))
	for name := range es {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// elementSchemas is the full registry of element types the parser
// understands. The table is fixed at build time. Supporting a new
// element type means adding a row here, not touching the parser.
var elementSchemas = map[string]ElementSchema{
	"image": {
		"pos":    NormalizedPairProp,
		"size":   NormalizedPairProp,
		"origin": NormalizedPairProp,
		"path":   PathProp,
		"tile":   BoolProp,
	},
	"text": {
		"pos":      NormalizedPairProp,
		"size":     NormalizedPairProp,
		"text":     TextProp,
		"color":    ColorProp,
		"fontPath": PathProp,
		"fontSize": ScalarProp,
		"center":   BoolProp,
	},
	"textlist": {
		"pos":            NormalizedPairProp,
		"size":           NormalizedPairProp,
		"selectorColor":  ColorProp,
		"selectedColor":  ColorProp,
		"primaryColor":   ColorProp,
		"secondaryColor": ColorProp,
		"fontPath":       PathProp,
		"fontSize":       ScalarProp,
	},
	"sound": {
		"path": PathProp,
	},
}

// LookupElement returns the schema for the named element type, or false
// if the type is not registered.
func LookupElement(elemType string) (ElementSchema, bool) {
	sch, ok := elementSchemas[elemType]
	return sch, ok
}

// ElementTypes returns the names of all registered element types in
// sorted order.
func ElementTypes() []string {
	names := make([]string, 0, len(elementSchemas))
	for name := range elementSchemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
