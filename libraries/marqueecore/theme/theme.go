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

// Package theme parses declarative theme documents into typed,
// queryable structures. A theme describes named views, each a set of
// named elements (images, text, lists, sounds) whose allowed properties
// are fixed by the element type's schema.
package theme

import (
	"sort"
	"sync"

	"github.com/marqueeworks/marquee/store/props"
)

// Element is a named, typed node in a view holding decoded property
// values. Elements are immutable once parsed.
type Element struct {
	name     string
	elemType string
	extra    bool
	values   map[string]props.Value
}

// Name returns the element's name, unique within its view.
func (e *Element) Name() string {
	return e.name
}

// Type returns the element's schema type, e.g. "image".
func (e *Element) Type() string {
	return e.elemType
}

// IsExtra reports whether the element was flagged for decorative
// rendering outside the widget binding flow.
func (e *Element) IsExtra() bool {
	return e.extra
}

// Has reports whether the named property was set on this element.
func (e *Element) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Get returns the raw value of the named property.
func (e *Element) Get(name string) (props.Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// PropNames returns the names of the element's set properties in sorted
// order.
func (e *Element) PropNames() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getTyped[T props.Value](e *Element, name string) (T, error) {
	var zero T

	v, ok := e.values[name]
	if !ok {
		return zero, ErrPropNotFound.New(name, e.name)
	}

	t, ok := v.(T)
	if !ok {
		return zero, ErrPropKindMismatch.New(name, v.Kind().String(), zero.Kind().String())
	}

	return t, nil
}

// GetPair returns the named geometry pair property.
func (e *Element) GetPair(name string) (props.Pair, error) {
	return getTyped[props.Pair](e, name)
}

// GetString returns the named text or path property.
func (e *Element) GetString(name string) (string, error) {
	v, err := getTyped[props.String](e, name)
	return string(v), err
}

// GetColor returns the named color property.
func (e *Element) GetColor(name string) (props.Color, error) {
	return getTyped[props.Color](e, name)
}

// GetFloat returns the named scalar property.
func (e *Element) GetFloat(name string) (float32, error) {
	v, err := getTyped[props.Float](e, name)
	return float32(v), err
}

// GetBool returns the named boolean property.
func (e *Element) GetBool(name string) (bool, error) {
	v, err := getTyped[props.Bool](e, name)
	return bool(v), err
}

// View is a named collection of elements making up one screen layout.
type View struct {
	name     string
	elements map[string]*Element

	extrasOnce sync.Once
	extras     []*Element
}

// Name returns the view's name, unique within its theme.
func (v *View) Name() string {
	return v.name
}

// Element returns the named element of the view.
func (v *View) Element(name string) (*Element, bool) {
	el, ok := v.elements[name]
	return el, ok
}

// ElementNames returns the view's element names in sorted order.
func (v *View) ElementNames() []string {
	names := make([]string, 0, len(v.elements))
	for name := range v.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extras returns the view's extra-flagged elements in element-name
// order. The slice is computed on first use and cached for the life of
// the Theme; callers must not modify it.
func (v *View) Extras() []*Element {
	v.extrasOnce.Do(func() {
		for _, name := range v.ElementNames() {
			if el := v.elements[name]; el.extra {
				v.extras = append(v.extras, el)
			}
		}
	})
	return v.extras
}

// Theme is the fully parsed result of loading a theme document. A Theme
// is immutable and safe for concurrent readers; reloading produces a
// new Theme rather than mutating an existing one.
type Theme struct {
	sourcePath string
	version    float32
	views      map[string]*View

	cuesOnce sync.Once
	cues     map[string]string
}

// SourcePath returns the path the theme was loaded from.
func (t *Theme) SourcePath() string {
	return t.sourcePath
}

// Version returns the format version the document declared.
func (t *Theme) Version() float32 {
	return t.version
}

// View returns the named view.
func (t *Theme) View(name string) (*View, bool) {
	v, ok := t.views[name]
	return v, ok
}

// ViewNames returns the theme's view names in sorted order.
func (t *Theme) ViewNames() []string {
	names := make([]string, 0, len(t.views))
	for name := range t.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Element returns the named element of the named view, failing
// distinctly when the view or the element is absent.
func (t *Theme) Element(viewName, elemName string) (*Element, error) {
	view, ok := t.views[viewName]
	if !ok {
		return nil, ErrViewNotFound.New(viewName)
	}

	el, ok := view.elements[elemName]
	if !ok {
		return nil, ErrElementNotFound.New(elemName, viewName)
	}

	return el, nil
}

// Lookup fetches property prop of element elem in view view, checking
// that the stored value holds the wanted kind.
func (t *Theme) Lookup(view, elem, prop string, want props.Kind) (props.Value, error) {
	el, err := t.Element(view, elem)
	if err != nil {
		return nil, err
	}

	v, ok := el.Get(prop)
	if !ok {
		return nil, ErrPropNotFound.New(prop, elem)
	}
	if v.Kind() != want {
		return nil, ErrPropKindMismatch.New(prop, v.Kind().String(), want.String())
	}

	return v, nil
}

// Cues returns the theme's sound cue table: every sound element keyed
// by its element name, mapped to its resolved path. Views contribute in
// sorted name order, so a later view wins a cue-name collision. The
// table is computed once and cached; callers must not modify it.
func (t *Theme) Cues() map[string]string {
	t.cuesOnce.Do(func() {
		t.cues = map[string]string{}
		for _, viewName := range t.ViewNames() {
			view := t.views[viewName]
			for _, elemName := range view.ElementNames() {
				el := view.elements[elemName]
				if el.elemType != "sound" {
					continue
				}
				if path, err := el.GetString("path"); err == nil {
					t.cues[elemName] = path
				}
			}
		}
	})
	return t.cues
}

// Cue returns the resolved path of the named sound cue.
func (t *Theme) Cue(name string) (string, error) {
	if path, ok := t.Cues()[name]; ok {
		return path, nil
	}
	return "", ErrCueNotFound.New(name)
}
