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

package argparser

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrHelp is returned by Parse when the universal --help or -h flag is
// present anywhere in the arguments.
var ErrHelp = errors.New("Help")

// UnknownArgumentParam is returned by Parse when an argument looks like
// an option but matches nothing the parser supports.
type UnknownArgumentParam struct {
	name string
}

func (unk UnknownArgumentParam) Error() string {
	return fmt.Sprintf("error: unknown option `%s'", unk.name)
}

// ArgParseResults is the result of parsing command line arguments.
type ArgParseResults struct {
	options map[string]string
	args    []string
	parser  *ArgParser
}

// Contains returns true if the named option was provided.
func (res *ArgParseResults) Contains(name string) bool {
	_, ok := res.options[name]
	return ok
}

// ContainsAll returns true if every named option was provided.
func (res *ArgParseResults) ContainsAll(names ...string) bool {
	for _, name := range names {
		if _, ok := res.options[name]; !ok {
			return false
		}
	}

	return true
}

// ContainsAny returns true if at least one named option was provided.
func (res *ArgParseResults) ContainsAny(names ...string) bool {
	for _, name := range names {
		if _, ok := res.options[name]; ok {
			return true
		}
	}

	return false
}

// GetValue returns the value of the named option and whether it was
// provided.
func (res *ArgParseResults) GetValue(name string) (string, bool) {
	val, ok := res.options[name]
	return val, ok
}

// GetValueOrDefault returns the value of the named option, or defVal
// when it was not provided.
func (res *ArgParseResults) GetValueOrDefault(name, defVal string) string {
	val, ok := res.options[name]

	if ok {
		return val
	}

	return defVal
}

// MustGetValue returns the value of the named option, panicking when it
// was not provided. Callers use this for options their parser requires.
func (res *ArgParseResults) MustGetValue(name string) string {
	val, ok := res.options[name]

	if !ok {
		panic("Value not available.  Use Contains(...) before calling MustGetValue(...)")
	}

	return val
}

// GetInt returns the integer value of the named option and whether it
// was provided with a parsable value.
func (res *ArgParseResults) GetInt(name string) (int, bool) {
	val, ok := res.options[name]

	if !ok {
		return 0, false
	}

	intVal, err := strconv.ParseInt(val, 10, 32)

	if err != nil {
		return 0, false
	}

	return int(intVal), true
}

// GetIntOrDefault returns the integer value of the named option, or
// defVal when it was not provided.
func (res *ArgParseResults) GetIntOrDefault(name string, defVal int) int {
	n, ok := res.GetInt(name)

	if ok {
		return n
	}

	return defVal
}

// Args returns the positional arguments.
func (res *ArgParseResults) Args() []string {
	return res.args
}

// NArg returns the number of positional arguments.
func (res *ArgParseResults) NArg() int {
	return len(res.args)
}

// Arg returns the positional argument at the given index.
func (res *ArgParseResults) Arg(index int) string {
	return res.args[index]
}
