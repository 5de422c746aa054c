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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSound struct {
	path   string
	plays  int
	closed bool
}

func (f *fakeSound) Play() error {
	f.plays++
	return nil
}

func (f *fakeSound) Close() error {
	f.closed = true
	return nil
}

type fakePlayer struct {
	loads  int
	sounds map[string]*fakeSound
}

var _ SoundPlayer = (*fakePlayer)(nil)

func newFakePlayer() *fakePlayer {
	return &fakePlayer{sounds: map[string]*fakeSound{}}
}

func (f *fakePlayer) Load(path string) (Sound, error) {
	f.loads++
	snd := &fakeSound{path: path}
	f.sounds[path] = snd
	return snd, nil
}

func TestSoundboardPlay(t *testing.T) {
	th, _ := loadBasic(t)

	player := newFakePlayer()
	sb, err := NewSoundboard(th, player)
	require.NoError(t, err)

	require.NoError(t, sb.Play("scroll"))
	require.NoError(t, sb.Play("scroll"))
	require.NoError(t, sb.Play("launch"))

	// The scroll sound is loaded once and played twice.
	assert.Equal(t, 2, player.loads)

	scroll := player.sounds["/themes/basic/sounds/scroll.ogg"]
	require.NotNil(t, scroll)
	assert.Equal(t, 2, scroll.plays)

	launch := player.sounds["/themes/basic/sounds/launch.ogg"]
	require.NotNil(t, launch)
	assert.Equal(t, 1, launch.plays)
}

func TestSoundboardUnknownCue(t *testing.T) {
	th, _ := loadBasic(t)

	player := newFakePlayer()
	sb, err := NewSoundboard(th, player)
	require.NoError(t, err)

	err = sb.Play("warp")
	require.Error(t, err)
	assert.True(t, ErrCueNotFound.Is(err))
	assert.Zero(t, player.loads)
}

func TestSoundboardCloseReleasesSounds(t *testing.T) {
	th, _ := loadBasic(t)

	player := newFakePlayer()
	sb, err := NewSoundboard(th, player)
	require.NoError(t, err)

	require.NoError(t, sb.Play("scroll"))
	require.NoError(t, sb.Play("launch"))
	require.NoError(t, sb.Close())

	for path, snd := range player.sounds {
		assert.True(t, snd.closed, "%s not closed", path)
	}
}
