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
	"github.com/marqueeworks/marquee/libraries/marqueecore/schema"
	"github.com/marqueeworks/marquee/store/props"
)

// The widget interfaces below are the seam between parsed theme data
// and the host rendering layer. The apply calls copy a masked subset of
// an element's properties onto a live widget; properties the element
// does not set are left untouched, so widgets keep their defaults.

// ImageWidget receives image element properties.
type ImageWidget interface {
	SetPosition(x, y float32)
	SetSize(w, h float32)
	SetOrigin(x, y float32)
	SetImage(path string)
	SetTiling(tile bool)
}

// TextWidget receives text element properties.
type TextWidget interface {
	SetPosition(x, y float32)
	SetSize(w, h float32)
	SetColor(c props.Color)
	SetFontPath(path string)
	SetFontSize(size float32)
	SetText(text string)
	SetCentered(centered bool)
}

// TextListWidget receives textlist element properties.
type TextListWidget interface {
	SetPosition(x, y float32)
	SetSize(w, h float32)
	SetSelectorColor(c props.Color)
	SetSelectedColor(c props.Color)
	SetPrimaryColor(c props.Color)
	SetSecondaryColor(c props.Color)
	SetFontPath(path string)
	SetFontSize(size float32)
}

// ApplyToImage copies the masked properties of the named image element
// onto widget.
func (t *Theme) ApplyToImage(view, elem string, widget ImageWidget, mask schema.PropFlags) error {
	el, err := t.typedElement(view, elem, "image")
	if err != nil {
		return err
	}

	if mask.Has(schema.FlagPosition) {
		if v, err := el.GetPair("pos"); err == nil {
			widget.SetPosition(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagSize) {
		if v, err := el.GetPair("size"); err == nil {
			widget.SetSize(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagOrigin) {
		if v, err := el.GetPair("origin"); err == nil {
			widget.SetOrigin(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagPath) {
		if v, err := el.GetString("path"); err == nil {
			widget.SetImage(v)
		}
	}
	if mask.Has(schema.FlagTiling) {
		if v, err := el.GetBool("tile"); err == nil {
			widget.SetTiling(v)
		}
	}

	return nil
}

// ApplyToText copies the masked properties of the named text element
// onto widget.
func (t *Theme) ApplyToText(view, elem string, widget TextWidget, mask schema.PropFlags) error {
	el, err := t.typedElement(view, elem, "text")
	if err != nil {
		return err
	}

	if mask.Has(schema.FlagPosition) {
		if v, err := el.GetPair("pos"); err == nil {
			widget.SetPosition(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagSize) {
		if v, err := el.GetPair("size"); err == nil {
			widget.SetSize(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagColor) {
		if v, err := el.GetColor("color"); err == nil {
			widget.SetColor(v)
		}
	}
	if mask.Has(schema.FlagFontPath) {
		if v, err := el.GetString("fontPath"); err == nil {
			widget.SetFontPath(v)
		}
	}
	if mask.Has(schema.FlagFontSize) {
		if v, err := el.GetFloat("fontSize"); err == nil {
			widget.SetFontSize(v)
		}
	}
	if mask.Has(schema.FlagText) {
		if v, err := el.GetString("text"); err == nil {
			widget.SetText(v)
		}
	}
	if mask.Has(schema.FlagCenter) {
		if v, err := el.GetBool("center"); err == nil {
			widget.SetCentered(v)
		}
	}

	return nil
}

// ApplyToTextList copies the masked properties of the named textlist
// element onto widget. All four colors answer to FlagColor.
func (t *Theme) ApplyToTextList(view, elem string, widget TextListWidget, mask schema.PropFlags) error {
	el, err := t.typedElement(view, elem, "textlist")
	if err != nil {
		return err
	}

	if mask.Has(schema.FlagPosition) {
		if v, err := el.GetPair("pos"); err == nil {
			widget.SetPosition(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagSize) {
		if v, err := el.GetPair("size"); err == nil {
			widget.SetSize(v.X, v.Y)
		}
	}
	if mask.Has(schema.FlagColor) {
		if v, err := el.GetColor("selectorColor"); err == nil {
			widget.SetSelectorColor(v)
		}
		if v, err := el.GetColor("selectedColor"); err == nil {
			widget.SetSelectedColor(v)
		}
		if v, err := el.GetColor("primaryColor"); err == nil {
			widget.SetPrimaryColor(v)
		}
		if v, err := el.GetColor("secondaryColor"); err == nil {
			widget.SetSecondaryColor(v)
		}
	}
	if mask.Has(schema.FlagFontPath) {
		if v, err := el.GetString("fontPath"); err == nil {
			widget.SetFontPath(v)
		}
	}
	if mask.Has(schema.FlagFontSize) {
		if v, err := el.GetFloat("fontSize"); err == nil {
			widget.SetFontSize(v)
		}
	}

	return nil
}

func (t *Theme) typedElement(view, elem, wantType string) (*Element, error) {
	el, err := t.Element(view, elem)
	if err != nil {
		return nil, err
	}
	if el.elemType != wantType {
		return nil, ErrElementType.New(elem, el.elemType, wantType)
	}
	return el, nil
}

// Transform positions a view's extra elements when they are rendered.
type Transform struct {
	OffsetX float32
	OffsetY float32
	ScaleX  float32
	ScaleY  float32
}

// IdentityTransform leaves extra elements where the theme put them.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1}

// ExtraDrawer receives each extra element of a view during
// RenderExtras.
type ExtraDrawer interface {
	DrawExtra(el *Element, tf Transform) error
}

// ExtraDrawerFunc adapts a function to the ExtraDrawer interface.
type ExtraDrawerFunc func(el *Element, tf Transform) error

// DrawExtra implements the ExtraDrawer interface.
func (f ExtraDrawerFunc) DrawExtra(el *Element, tf Transform) error {
	return f(el, tf)
}

// RenderExtras hands every extra element of the named view to drawer in
// element-name order under the given transform, stopping at the first
// error.
func (t *Theme) RenderExtras(view string, tf Transform, drawer ExtraDrawer) error {
	v, ok := t.views[view]
	if !ok {
		return ErrViewNotFound.New(view)
	}

	for _, el := range v.Extras() {
		if err := drawer.DrawExtra(el, tf); err != nil {
			return err
		}
	}

	return nil
}
