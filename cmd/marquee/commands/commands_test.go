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
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqueeworks/marquee/cmd/marquee/cli"
	"github.com/marqueeworks/marquee/libraries/marqueecore/env"
	"github.com/marqueeworks/marquee/libraries/utils/filesys"
)

const validDoc = `<theme>
  <version>3</version>
  <view name="menu">
    <image name="bg"><tile>true</tile></image>
  </view>
</theme>`

const staleDoc = `<theme><version>2</version></theme>`

func testEnv(files map[string][]byte) *env.ThemeEnv {
	fs := filesys.NewInMemFS(nil, files, "/")
	hdp := func() (string, error) { return "/home/tester", nil }
	return env.Load(hdp, fs, io.Discard, "1.2.3-test")
}

// capture runs f with cli output redirected to buffers and color
// stripped.
func capture(f func() int) (code int, stdout, stderr string) {
	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := cli.CliOut, cli.CliErr
	oldNoColor := color.NoColor
	cli.CliOut, cli.CliErr = outBuf, errBuf
	color.NoColor = true

	defer func() {
		cli.CliOut, cli.CliErr = oldOut, oldErr
		color.NoColor = oldNoColor
	}()

	code = f()
	return code, outBuf.String(), errBuf.String()
}

func TestCheckCmd(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/good.xml": []byte(validDoc),
		"/themes/bad.xml":  []byte(staleDoc),
	})

	code, out, _ := capture(func() int {
		return CheckCmd{}.Exec(context.Background(), "marquee check", []string{"/themes/good.xml"}, tEnv)
	})
	assert.Zero(t, code)
	assert.Contains(t, out, "/themes/good.xml: ok (version 3, 1 views)")

	code, out, _ = capture(func() int {
		return CheckCmd{}.Exec(context.Background(), "marquee check", []string{"-q", "/themes/good.xml"}, tEnv)
	})
	assert.Zero(t, code)
	assert.Empty(t, out)

	code, _, errOut := capture(func() int {
		return CheckCmd{}.Exec(context.Background(), "marquee check", []string{"/themes/bad.xml"}, tEnv)
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "minimum supported version")

	// A bad file fails the run but good files are still reported.
	code, out, errOut = capture(func() int {
		return CheckCmd{}.Exec(context.Background(), "marquee check", []string{"/themes/good.xml", "/themes/bad.xml"}, tEnv)
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "/themes/good.xml: ok")
	assert.Contains(t, errOut, "/themes/bad.xml")
}

func TestCheckCmdMissingFile(t *testing.T) {
	tEnv := testEnv(nil)

	code, _, errOut := capture(func() int {
		return CheckCmd{}.Exec(context.Background(), "marquee check", []string{"/nope.xml"}, tEnv)
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing file")
}

func TestShowCmdText(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/good.xml": []byte(validDoc),
	})

	code, out, _ := capture(func() int {
		return ShowCmd{}.Exec(context.Background(), "marquee show", []string{"/themes/good.xml"}, tEnv)
	})
	require.Zero(t, code)
	assert.Contains(t, out, "/themes/good.xml (version 3)")
	assert.Contains(t, out, "view menu")
	assert.Contains(t, out, "image bg")
	assert.Contains(t, out, "tile = true")
}

func TestShowCmdJSON(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/good.xml": []byte(validDoc),
	})

	code, out, _ := capture(func() int {
		return ShowCmd{}.Exec(context.Background(), "marquee show", []string{"--json", "/themes/good.xml"}, tEnv)
	})
	require.Zero(t, code)

	var decoded themeJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "/themes/good.xml", decoded.Path)
	assert.Equal(t, float32(3), decoded.Version)

	menu, ok := decoded.Views["menu"]
	require.True(t, ok)
	bg, ok := menu["bg"]
	require.True(t, ok)
	assert.Equal(t, "image", bg.Type)
	assert.Equal(t, true, bg.Props["tile"])
}

func TestShowCmdViewFilter(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/good.xml": []byte(validDoc),
	})

	code, _, errOut := capture(func() int {
		return ShowCmd{}.Exec(context.Background(), "marquee show", []string{"--view", "lobby", "/themes/good.xml"}, tEnv)
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `view "lobby" not found`)
}

func TestShowCmdDefaultTheme(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/good.xml": []byte(validDoc),
		"/home/tester/.marquee/config.yaml": []byte(
			"default_theme: /themes/good.xml\n"),
	})

	code, out, _ := capture(func() int {
		return ShowCmd{}.Exec(context.Background(), "marquee show", nil, tEnv)
	})
	require.Zero(t, code)
	assert.Contains(t, out, "view menu")
}

func TestScanCmd(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/a.xml":      []byte(validDoc),
		"/themes/bad.xml":    []byte(staleDoc),
		"/themes/readme.txt": []byte("not a theme"),
		"/themes/sub/b.xml":  []byte(validDoc),
	})

	code, out, errOut := capture(func() int {
		return ScanCmd{}.Exec(context.Background(), "marquee scan", []string{"/themes"}, tEnv)
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "/themes/a.xml: version 3, 1 views")
	assert.Contains(t, out, "/themes/sub/b.xml: version 3, 1 views")
	assert.NotContains(t, out, "readme.txt")
	assert.Contains(t, out, "scanned 3 theme files")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, errOut, "/themes/bad.xml")
}

func TestScanCmdConfiguredDir(t *testing.T) {
	tEnv := testEnv(map[string][]byte{
		"/themes/a.xml": []byte(validDoc),
		"/home/tester/.marquee/config.yaml": []byte(
			"themes_dir: /themes\n"),
	})

	code, out, _ := capture(func() int {
		return ScanCmd{}.Exec(context.Background(), "marquee scan", []string{"--jobs", "2"}, tEnv)
	})
	assert.Zero(t, code)
	assert.Contains(t, out, "/themes/a.xml: version 3, 1 views")
	assert.Contains(t, out, "scanned 1 theme files")
}

func TestScanCmdNoDir(t *testing.T) {
	tEnv := testEnv(nil)

	code, _, errOut := capture(func() int {
		return ScanCmd{}.Exec(context.Background(), "marquee scan", nil, tEnv)
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no themes_dir configured")
}

func TestVersionCmd(t *testing.T) {
	tEnv := testEnv(nil)

	code, out, _ := capture(func() int {
		return VersionCmd{}.Exec(context.Background(), "marquee version", nil, tEnv)
	})
	assert.Zero(t, code)
	assert.Contains(t, out, "marquee version 1.2.3-test")
	assert.Contains(t, out, "theme format versions 3 through 3")
}
