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

	"github.com/marqueeworks/marquee/cmd/marquee/cli"
	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/marqueecore/theme"
	"github.com/marqueeworks/marquee/libraries/utils/argparser"
)

var versionDocs = cli.CommandDocumentationContent{
	ShortDesc: "Print the version of the marquee binary",
	Synopsis:  []string{""},
}

type VersionCmd struct{}

// Name returns the name of the command
func (cmd VersionCmd) Name() string {
	return "version"
}

// Description returns a description of the command
func (cmd VersionCmd) Description() string {
	return versionDocs.ShortDesc
}

// Docs returns the documentation for the command
func (cmd VersionCmd) Docs() *cli.CommandDocumentationContent {
	return &versionDocs
}

// ArgParser returns the arg parser for the command
func (cmd VersionCmd) ArgParser() *argparser.ArgParser {
	return argparser.NewArgParserWithMaxArgs(cmd.Name(), 0)
}

// Exec executes the command
func (cmd VersionCmd) Exec(ctx context.Context, commandStr string, args []string, tEnv *env.ThemeEnv) int {
	ap := cmd.ArgParser()
	help, _ := cli.HelpAndUsagePrinters(commandStr, cmd.Docs(), ap)
	cli.ParseArgsOrDie(ap, args, help)

	cli.Println("marquee version", tEnv.Version)
	cli.Printf("supports theme format versions %d through %d\n", theme.MinVersion, theme.CurrentVersion)
	return 0
}
