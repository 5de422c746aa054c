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
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/marqueeworks/marquee/cmd/marquee/cli"
	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/marqueecore/theme"
	"github.com/marqueeworks/marquee/libraries/utils/argparser"
)

const jobsParam = "jobs"

var scanDocs = cli.CommandDocumentationContent{
	ShortDesc: "Scan a directory tree for theme files",
	LongDesc: "scan walks a directory tree, loads every xml file it finds, and reports which ones " +
		"are loadable themes. With no directory argument it scans the themes_dir from the user config. " +
		"Themes are loaded in parallel; use --jobs to bound the parallelism.",
	Synopsis: []string{"[--jobs <count>] [<dir>]"},
}

type ScanCmd struct{}

// Name returns the name of the command
func (cmd ScanCmd) Name() string {
	return "scan"
}

// Description returns a description of the command
func (cmd ScanCmd) Description() string {
	return scanDocs.ShortDesc
}

// Docs returns the documentation for the command
func (cmd ScanCmd) Docs() *cli.CommandDocumentationContent {
	return &scanDocs
}

// ArgParser returns the arg parser for the command
func (cmd ScanCmd) ArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"dir", "directory to scan, defaults to the configured themes_dir"})
	ap.SupportsInt(jobsParam, "j", "count", "number of themes to load in parallel")
	return ap
}

type scanResult struct {
	path  string
	size  int64
	theme *theme.Theme
	err   error
}

// Exec executes the command
func (cmd ScanCmd) Exec(ctx context.Context, commandStr string, args []string, tEnv *env.ThemeEnv) int {
	ap := cmd.ArgParser()
	help, usage := cli.HelpAndUsagePrinters(commandStr, cmd.Docs(), ap)
	apr := cli.ParseArgsOrDie(ap, args, help)

	dir := tEnv.Config.GetThemesDir()
	if apr.NArg() == 1 {
		dir = apr.Arg(0)
	}

	if dir == "" {
		cli.PrintErrln(color.RedString("no directory given and no themes_dir configured"))
		usage()
		return 1
	}

	if abs, err := tEnv.FS.Abs(dir); err == nil {
		dir = abs
	}

	results := findThemeFiles(tEnv, dir)
	if results == nil {
		cli.PrintErrln(color.RedString("could not read directory %s", dir))
		return 1
	}
	if len(results) == 0 {
		cli.Println("no theme files found in", dir)
		return 0
	}

	jobs := apr.GetIntOrDefault(jobsParam, runtime.NumCPU())
	if jobs < 1 {
		jobs = 1
	}

	parser := newThemeParser(tEnv)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i := range results {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i].theme, results[i].err = parser.Load(results[i].path)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		cli.PrintErrln(color.RedString(err.Error()))
		return 1
	}

	var totalSize int64
	failed := 0
	for _, res := range results {
		totalSize += res.size

		if res.err != nil {
			failed++
			cli.PrintErrln(color.RedString(res.err.Error()))
			continue
		}

		cli.Printf("%s: version %g, %d views\n", res.path, res.theme.Version(), len(res.theme.ViewNames()))
	}

	cli.Printf("scanned %s theme files (%s), %s failed\n",
		humanize.Comma(int64(len(results))), humanize.Bytes(uint64(totalSize)), humanize.Comma(int64(failed)))

	if failed > 0 {
		return 1
	}

	return 0
}

// findThemeFiles walks dir collecting xml files. A nil return means the
// walk itself failed.
func findThemeFiles(tEnv *env.ThemeEnv, dir string) []scanResult {
	results := make([]scanResult, 0, 16)

	err := tEnv.FS.Iter(dir, true, func(path string, size int64, isDir bool) (stop bool) {
		if !isDir && strings.EqualFold(filepath.Ext(path), ".xml") {
			results = append(results, scanResult{path: path, size: size})
		}
		return false
	})

	if err != nil {
		return nil
	}

	return results
}
