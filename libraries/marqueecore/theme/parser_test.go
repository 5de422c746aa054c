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
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqueeworks/marquee/libraries/utils/filesys"
	"github.com/marqueeworks/marquee/store/props"
)

const testThemeFile = "/themes/basic/theme.xml"

const basicDoc = `<theme>
  <version>3</version>
  <view name="basic">
    <image name="logo" extra="true">
      <pos>0.1 0.2</pos>
      <size>0.3 0.4</size>
      <origin>0.5 0.5</origin>
      <path>./logo.png</path>
      <tile>true</tile>
    </image>
    <text name="title">
      <pos>0 0</pos>
      <size>1 0.1</size>
      <text>Game Library</text>
      <color>22aadd</color>
      <fontPath>./fonts/main.ttf</fontPath>
      <fontSize>0.045</fontSize>
      <center>yes</center>
    </text>
    <textlist name="gamelist">
      <pos>0 0.2</pos>
      <size>1 0.8</size>
      <selectorColor>303030</selectorColor>
      <selectedColor>ffffff</selectedColor>
      <primaryColor>cccccc</primaryColor>
      <secondaryColor>99999980</secondaryColor>
      <fontPath>./fonts/main.ttf</fontPath>
      <fontSize>0.04</fontSize>
    </textlist>
    <sound name="scroll">
      <path>./sounds/scroll.ogg</path>
    </sound>
  </view>
  <view name="detailed">
    <image name="backdrop">
      <path>~/art/backdrop.png</path>
    </image>
    <sound name="launch">
      <path>./sounds/launch.ogg</path>
    </sound>
  </view>
</theme>`

// basicAssets are the files basicDoc references, so a default parse
// stays warning free.
func basicAssets() map[string][]byte {
	return map[string][]byte{
		"/themes/basic/logo.png":          []byte("png"),
		"/themes/basic/fonts/main.ttf":    []byte("ttf"),
		"/themes/basic/sounds/scroll.ogg": []byte("ogg"),
		"/themes/basic/sounds/launch.ogg": []byte("ogg"),
		"/home/tester/art/backdrop.png":   []byte("png"),
	}
}

func testHomeDir() (string, error) {
	return "/home/tester", nil
}

func testParser(files map[string][]byte) (*Parser, *test.Hook) {
	fs := filesys.NewInMemFS(nil, files, "/")
	logger, hook := test.NewNullLogger()
	return NewParser(fs, testHomeDir, logger), hook
}

func loadBasic(t *testing.T) (*Theme, *test.Hook) {
	files := basicAssets()
	files[testThemeFile] = []byte(basicDoc)

	p, hook := testParser(files)
	th, err := p.Load(testThemeFile)
	require.NoError(t, err)
	require.NotNil(t, th)
	return th, hook
}

func TestLoadBasicTheme(t *testing.T) {
	th, hook := loadBasic(t)

	assert.Equal(t, testThemeFile, th.SourcePath())
	assert.Equal(t, float32(3), th.Version())
	assert.Equal(t, []string{"basic", "detailed"}, th.ViewNames())
	assert.Empty(t, hook.Entries)

	logo, err := th.Element("basic", "logo")
	require.NoError(t, err)
	assert.Equal(t, "image", logo.Type())
	assert.True(t, logo.IsExtra())

	pos, err := logo.GetPair("pos")
	require.NoError(t, err)
	assert.Equal(t, props.NewPair(0.1, 0.2), pos)

	path, err := logo.GetString("path")
	require.NoError(t, err)
	assert.Equal(t, "/themes/basic/logo.png", path)

	tile, err := logo.GetBool("tile")
	require.NoError(t, err)
	assert.True(t, tile)

	title, err := th.Element("basic", "title")
	require.NoError(t, err)
	assert.False(t, title.IsExtra())

	color, err := title.GetColor("color")
	require.NoError(t, err)
	assert.Equal(t, props.Color(0x22AADDFF), color)

	text, err := title.GetString("text")
	require.NoError(t, err)
	assert.Equal(t, "Game Library", text)

	size, err := title.GetFloat("fontSize")
	require.NoError(t, err)
	assert.Equal(t, float32(0.045), size)

	center, err := title.GetBool("center")
	require.NoError(t, err)
	assert.True(t, center)

	gamelist, err := th.Element("basic", "gamelist")
	require.NoError(t, err)

	secondary, err := gamelist.GetColor("secondaryColor")
	require.NoError(t, err)
	assert.Equal(t, props.Color(0x99999980), secondary)

	backdrop, err := th.Element("detailed", "backdrop")
	require.NoError(t, err)

	bgPath, err := backdrop.GetString("path")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/art/backdrop.png", bgPath)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "malformed xml",
			doc:     `<theme><version>3</theme>`,
			wantMsg: "xml parsing error",
		},
		{
			name:    "missing theme tag",
			doc:     `<skin><version>3</version></skin>`,
			wantMsg: "missing <theme> tag",
		},
		{
			name:    "missing version tag",
			doc:     `<theme><view name="a"><image name="i"><tile>1</tile></image></view></theme>`,
			wantMsg: "<version> tag missing",
		},
		{
			name:    "empty version tag",
			doc:     `<theme><version></version></theme>`,
			wantMsg: "<version> tag missing",
		},
		{
			name:    "version too old",
			doc:     `<theme><version>2</version></theme>`,
			wantMsg: "theme is version 2, minimum supported version is 3",
		},
		{
			name:    "unparsable version",
			doc:     `<theme><version>beta</version></theme>`,
			wantMsg: "theme is version 0, minimum supported version is 3",
		},
		{
			name:    "view missing name",
			doc:     `<theme><version>3</version><view><image name="i"><tile>1</tile></image></view></theme>`,
			wantMsg: `view missing "name" attribute`,
		},
		{
			name:    "self closed view missing name",
			doc:     `<theme><version>3</version><view/></theme>`,
			wantMsg: `view missing "name" attribute`,
		},
		{
			name:    "unknown element",
			doc:     `<theme><version>3</version><view name="a"><ninepatch name="n"/></view></theme>`,
			wantMsg: `unknown element of type "ninepatch"`,
		},
		{
			name:    "element missing name",
			doc:     `<theme><version>3</version><view name="a"><image><tile>1</tile></image></view></theme>`,
			wantMsg: `element of type "image" missing "name" attribute`,
		},
		{
			name:    "unknown property",
			doc:     `<theme><version>3</version><view name="a"><image name="i"><rotation>90</rotation></image></view></theme>`,
			wantMsg: `unknown property type "rotation" (for element of type image)`,
		},
		{
			name:    "pair without separator",
			doc:     `<theme><version>3</version><view name="a"><image name="i"><pos>0.5</pos></image></view></theme>`,
			wantMsg: `invalid normalized pair ("0.5")`,
		},
		{
			name:    "empty color",
			doc:     `<theme><version>3</version><view name="a"><text name="t"><color></color></text></view></theme>`,
			wantMsg: "empty color",
		},
		{
			name:    "color bad length",
			doc:     `<theme><version>3</version><view name="a"><text name="t"><color>fff</color></text></view></theme>`,
			wantMsg: `invalid color (bad length, "fff" - must be 6 or 8)`,
		},
		{
			name:    "color bad digits",
			doc:     `<theme><version>3</version><view name="a"><text name="t"><color>redred</color></text></view></theme>`,
			wantMsg: `invalid color (bad hex digits, "redred")`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, _ := testParser(map[string][]byte{
				testThemeFile: []byte(test.doc),
			})

			th, err := p.Load(testThemeFile)
			require.Error(t, err)
			assert.Nil(t, th)
			assert.True(t, ErrThemeLoad.Is(err), "want ErrThemeLoad, got %v", err)
			assert.Contains(t, err.Error(), `error loading theme from "`+testThemeFile+`"`)
			assert.Contains(t, err.Error(), test.wantMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	p, _ := testParser(nil)

	th, err := p.Load("/themes/absent.xml")
	require.Error(t, err)
	assert.Nil(t, th)
	assert.True(t, ErrThemeLoad.Is(err))
	assert.Contains(t, err.Error(), "missing file")
}

func TestVersionAtMinimumLoads(t *testing.T) {
	p, _ := testParser(map[string][]byte{
		testThemeFile: []byte(`<theme><version>3</version></theme>`),
	})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)
	assert.Equal(t, float32(3), th.Version())
	assert.Empty(t, th.ViewNames())
}

func TestFractionalVersion(t *testing.T) {
	p, _ := testParser(map[string][]byte{
		testThemeFile: []byte(`<theme><version>3.1</version></theme>`),
	})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)
	assert.Equal(t, float32(3.1), th.Version())
}

func TestEmptyViewsArePruned(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="empty"/>
  <view name="alsoempty"></view>
  <view name="real"><image name="i"><tile>1</tile></image></view>
</theme>`

	p, _ := testParser(map[string][]byte{testThemeFile: []byte(doc)})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, th.ViewNames())

	_, ok := th.View("empty")
	assert.False(t, ok)
}

func TestDuplicatePropertyLastWins(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="a">
    <text name="t">
      <text>first</text>
      <text>second</text>
    </text>
  </view>
</theme>`

	p, _ := testParser(map[string][]byte{testThemeFile: []byte(doc)})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)

	el, err := th.Element("a", "t")
	require.NoError(t, err)

	v, err := el.GetString("text")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestDuplicatePropertyStillValidatesEveryOccurrence(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="a">
    <text name="t">
      <color>zz</color>
      <color>ffffff</color>
    </text>
  </view>
</theme>`

	p, _ := testParser(map[string][]byte{testThemeFile: []byte(doc)})

	_, err := p.Load(testThemeFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad length")
}

func TestDuplicateElementNameReplaces(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="a">
    <image name="logo"><tile>1</tile><pos>0 0</pos></image>
    <image name="logo"><tile>0</tile></image>
  </view>
</theme>`

	p, _ := testParser(map[string][]byte{testThemeFile: []byte(doc)})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)

	el, err := th.Element("a", "logo")
	require.NoError(t, err)

	// The second definition fully replaces the first.
	tile, err := el.GetBool("tile")
	require.NoError(t, err)
	assert.False(t, tile)
	assert.False(t, el.Has("pos"))
}

func TestDuplicateViewNameReplaces(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="a"><image name="one"><tile>1</tile></image></view>
  <view name="a"><image name="two"><tile>1</tile></image></view>
</theme>`

	p, _ := testParser(map[string][]byte{testThemeFile: []byte(doc)})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)

	view, ok := th.View("a")
	require.True(t, ok)
	assert.Equal(t, []string{"two"}, view.ElementNames())
}

func TestMissingAssetWarnsButLoads(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="a">
    <image name="i"><path>./absent.png</path></image>
  </view>
</theme>`

	p, hook := testParser(map[string][]byte{testThemeFile: []byte(doc)})

	th, err := p.Load(testThemeFile)
	require.NoError(t, err)

	el, err := th.Element("a", "i")
	require.NoError(t, err)

	// The resolved path is stored even though the file is absent.
	path, err := el.GetString("path")
	require.NoError(t, err)
	assert.Equal(t, "/themes/basic/absent.png", path)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, testThemeFile, entry.Data["theme"])
	assert.Equal(t, "./absent.png", entry.Data["token"])
}

func TestMissingAssetWarningDisabled(t *testing.T) {
	doc := `<theme>
  <version>3</version>
  <view name="a">
    <image name="i"><path>./absent.png</path></image>
  </view>
</theme>`

	p, hook := testParser(map[string][]byte{testThemeFile: []byte(doc)})
	p.WarnMissingAssets = false

	_, err := p.Load(testThemeFile)
	require.NoError(t, err)
	assert.Empty(t, hook.Entries)
}

func TestParseWithoutFile(t *testing.T) {
	// Parse operates on raw bytes; only path properties touch the
	// filesystem.
	p, _ := testParser(nil)
	p.WarnMissingAssets = false

	th, err := p.Parse("/virtual/theme.xml", []byte(`<theme><version>4</version></theme>`))
	require.NoError(t, err)
	assert.Equal(t, float32(4), th.Version())
	assert.Equal(t, "/virtual/theme.xml", th.SourcePath())
}

func TestSoundCueEndToEnd(t *testing.T) {
	th, _ := loadBasic(t)

	cues := th.Cues()
	assert.Equal(t, map[string]string{
		"scroll": "/themes/basic/sounds/scroll.ogg",
		"launch": "/themes/basic/sounds/launch.ogg",
	}, cues)

	path, err := th.Cue("scroll")
	require.NoError(t, err)
	assert.Equal(t, "/themes/basic/sounds/scroll.ogg", path)

	_, err = th.Cue("warp")
	require.Error(t, err)
	assert.True(t, ErrCueNotFound.Is(err))
}
