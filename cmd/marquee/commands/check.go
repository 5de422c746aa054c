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

	"github.com/marqueeworks/marquee/cmd/marquee/cli"
	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/marqueecore/theme"
	"github.com/marqueeworks/marquee/libraries/utils/argparser"
)

const quietFlag = "quiet"

var checkDocs = cli.CommandDocumentationContent{
	ShortDesc: "Validate theme files",
	LongDesc: "check parses every theme file given and reports whether it loads cleanly. " +
		"A file is reported as ok when the document parses, declares a supported format version, " +
		"and every element and property in it is well formed.\n\n" +
		"The exit status is non-zero when any file fails to load.",
	Synopsis: []string{"[-q] <file>..."},
}

type CheckCmd struct{}

// Name returns the name of the command
func (cmd CheckCmd) Name() string {
	return "check"
}

// Description returns a description of the command
func (cmd CheckCmd) Description() string {
	return checkDocs.ShortDesc
}

// Docs returns the documentation for the command
func (cmd CheckCmd) Docs() *cli.CommandDocumentationContent {
	return &checkDocs
}

// ArgParser returns the arg parser for the command
func (cmd CheckCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithVariableArgs(cmd.Name())
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"file", "theme file to validate"})
	ap.SupportsFlag(quietFlag, "q", "only print failures")
	return ap
}

// Exec executes the command
func (cmd CheckCmd) Exec(ctx context.Context, commandStr string, args []string, tEnv *env.ThemeEnv) int {
	ap := cmd.ArgParser()
	help, usage := cli.HelpAndUsagePrinters(commandStr, cmd.Docs(), ap)
	apr := cli.ParseArgsOrDie(ap, args, help)

	if apr.NArg() == 0 {
		usage()
		return 1
	}

	quiet := apr.Contains(quietFlag)
	parser := newThemeParser(tEnv)

	failed := 0
	for _, file := range apr.Args() {
		th, err := loadTheme(parser, tEnv, file)

		if err != nil {
			failed++
			cli.PrintErrln(color.RedString(err.Error()))
			continue
		}

		if !quiet {
			cli.Printf("%s: ok (version %g, %d views)\n", file, th.Version(), len(th.ViewNames()))
		}
	}

	if failed > 0 {
		return 1
	}

	return 0
}

// newThemeParser builds a theme parser wired to the env's filesystem,
// home dir, logger, and config.
func newThemeParser(tEnv *env.ThemeEnv) *theme.Parser {
	parser := theme.NewParser(tEnv.FS, tEnv.HomeProvider(), tEnv.Logger)
	parser.WarnMissingAssets = tEnv.Config.GetWarnMissingAssets()
	return parser
}

func loadTheme(parser *theme.Parser, tEnv *env.ThemeEnv, file string) (*theme.Theme, error) {
	abs, err := tEnv.FS.Abs(file)
	if err != nil {
		abs = file
	}

	return parser.Load(abs)
}
