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

package cli

import (
	"os"

	"github.com/marqueeworks/marquee/libraries/utils/argparser"
)

type UsagePrinter func()

// ParseArgsOrDie parses args, printing help and exiting the process
// when parsing fails or the universal help flag is given.
func ParseArgsOrDie(ap *argparser.ArgParser, args []string, usagePrinter UsagePrinter) *argparser.ArgParseResults {
	apr, err := ap.Parse(args)

	if err != nil {
		if err != argparser.ErrHelp {
			PrintErrln(err.Error())

			if usagePrinter != nil {
				usagePrinter()
			}

			os.Exit(1)
		}

		// --help param
		if usagePrinter != nil {
			usagePrinter()
		}

		os.Exit(0)
	}

	return apr
}

// HelpAndUsagePrinters returns a pair of printers for the named
// command: the first prints full help text, the second a usage
// synopsis.
func HelpAndUsagePrinters(commandStr string, docs *CommandDocumentationContent, ap *argparser.ArgParser) (UsagePrinter, UsagePrinter) {
	if docs == nil {
		docs = &CommandDocumentationContent{}
	}

	return func() {
			PrintHelpText(commandStr, docs.ShortDesc, docs.LongDesc, docs.Synopsis, ap)
		}, func() {
			PrintUsage(commandStr, docs.Synopsis, ap)
		}
}
