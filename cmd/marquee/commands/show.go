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

package commands

import (
	"context"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"

	"github.com/marqueeworks/marquee/cmd/marquee/cli"
	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/marqueecore/theme"
	"github.com/marqueeworks/marquee/libraries/utils/argparser"
	"github.com/marqueeworks/marquee/store/props"
)

const (
	jsonFlag  = "json"
	viewParam = "view"
)

var showDocs = cli.CommandDocumentationContent{
	ShortDesc: "Print the contents of a theme file",
	LongDesc: "show loads a theme file and prints every view, element, and property it defines, " +
		"with asset paths resolved. With no file argument it prints the default_theme from the " +
		"user config. Pass --view to limit output to a single view, or --json for machine " +
		"readable output.",
	Synopsis: []string{"[--view <view_name>] [--json] [<file>]"},
}

type ShowCmd struct{}

// Name returns the name of the command
func (cmd ShowCmd) Name() string {
	return "show"
}

// Description returns a description of the command
func (cmd ShowCmd) Description() string {
	return showDocs.ShortDesc
}

// Docs returns the documentation for the command
func (cmd ShowCmd) Docs() *cli.CommandDocumentationContent {
	return &showDocs
}

// ArgParser returns the arg parser for the command
func (cmd ShowCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "theme file to print"})
	ap.SupportsFlag(jsonFlag, "j", "print the theme as json")
	ap.SupportsString(viewParam, "v", "view_name", "only print the named view")
	return ap
}

// Exec executes the command
func (cmd ShowCmd) Exec(ctx context.Context, commandStr string, args []string, tEnv *env.ThemeEnv) int {
	ap := cmd.ArgParser()
	help, usage := cli.HelpAndUsagePrinters(commandStr, cmd.Docs(), ap)
	apr := cli.ParseArgsOrDie(ap, args, help)

	file := tEnv.Config.GetDefaultTheme()
	if apr.NArg() == 1 {
		file = apr.Arg(0)
	}

	if file == "" {
		usage()
		return 1
	}

	th, err := loadTheme(newThemeParser(tEnv), tEnv, file)

	if err != nil {
		cli.PrintErrln(color.RedString(err.Error()))
		return 1
	}

	viewNames := th.ViewNames()
	if name, ok := apr.GetValue(viewParam); ok {
		if _, found := th.View(name); !found {
			cli.PrintErrln(color.RedString("view %q not found in %s", name, th.SourcePath()))
			return 1
		}
		viewNames = []string{name}
	}

	if apr.Contains(jsonFlag) {
		return printThemeJSON(th, viewNames)
	}

	printThemeText(th, viewNames)
	return 0
}

type elementJSON struct {
	Type  string                 `json:"type"`
	Extra bool                   `json:"extra,omitempty"`
	Props map[string]interface{} `json:"props"`
}

type themeJSON struct {
	Path    string                            `json:"path"`
	Version float32                           `json:"version"`
	Views   map[string]map[string]elementJSON `json:"views"`
}

func printThemeJSON(th *theme.Theme, viewNames []string) int {
	out := themeJSON{
		Path:    th.SourcePath(),
		Version: th.Version(),
		Views:   map[string]map[string]elementJSON{},
	}

	for _, viewName := range viewNames {
		view, _ := th.View(viewName)

		elements := map[string]elementJSON{}
		for _, elemName := range view.ElementNames() {
			el, _ := view.Element(elemName)

			elProps := map[string]interface{}{}
			for _, propName := range el.PropNames() {
				v, _ := el.Get(propName)
				elProps[propName] = propJSONValue(v)
			}

			elements[elemName] = elementJSON{
				Type:  el.Type(),
				Extra: el.IsExtra(),
				Props: elProps,
			}
		}

		out.Views[viewName] = elements
	}

	data, err := json.MarshalIndent(out, "", "  ")

	if err != nil {
		cli.PrintErrln(color.RedString("failed to encode theme: %v", err))
		return 1
	}

	cli.Println(string(data))
	return 0
}

// propJSONValue maps a property value to its natural json shape: pairs
// become two element arrays, colors keep their hex notation, the rest
// map to json primitives.
func propJSONValue(v props.Value) interface{} {
	switch v := v.(type) {
	case props.Pair:
		return [2]float32{v.X, v.Y}
	case props.String:
		return string(v)
	case props.Color:
		return v.HumanReadableString()
	case props.Float:
		return float32(v)
	case props.Bool:
		return bool(v)
	}

	return v.HumanReadableString()
}

func printThemeText(th *theme.Theme, viewNames []string) {
	cli.Printf("%s (version %g)\n", th.SourcePath(), th.Version())

	for _, viewName := range viewNames {
		view, _ := th.View(viewName)
		cli.Printf("view %s\n", viewName)

		for _, elemName := range view.ElementNames() {
			el, _ := view.Element(elemName)

			if el.IsExtra() {
				cli.Printf("  %s %s [extra]\n", el.Type(), elemName)
			} else {
				cli.Printf("  %s %s\n", el.Type(), elemName)
			}

			for _, propName := range el.PropNames() {
				v, _ := el.Get(propName)
				cli.Printf("    %s = %s\n", propName, v.HumanReadableString())
			}
		}
	}
}
