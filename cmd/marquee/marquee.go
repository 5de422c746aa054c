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

package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/marqueeworks/marquee/cmd/marquee/cli"
	"github.com/marqueeworks/marquee/cmd/marquee/commands"
	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/utils/filesys"
)

const Version = "0.4.0"

var marqueeCommand = cli.NewSubCommandHandler("marquee", "a tool for working with theme files", []cli.Command{
	commands.CheckCmd{},
	commands.ShowCmd{},
	commands.ScanCmd{},
	commands.VersionCmd{},
})

func main() {
	tEnv := env.Load(env.GetCurrentUserHomeDir, filesys.LocalFS, cli.CliErr, Version)

	if tEnv.ConfigLoadErr != nil {
		cli.PrintErrln(color.YellowString("Could not read the user config, continuing with defaults."))
		cli.PrintErrln(tEnv.ConfigLoadErr.Error())
	}

	res := marqueeCommand.Exec(context.Background(), "marquee", os.Args[1:], tEnv)

	os.Exit(res)
}
