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
	lru "github.com/hashicorp/golang-lru/v2"
)

// Sound is a loaded, playable audio resource.
type Sound interface {
	// Play plays the sound from the beginning.
	Play() error

	// Close releases the underlying resource.
	Close() error
}

// SoundPlayer loads audio resources from resolved paths. The audio
// backend lives outside this package; tests and headless tools supply
// their own.
type SoundPlayer interface {
	Load(path string) (Sound, error)
}

// soundCacheSize bounds the number of sounds held loaded at once. A
// theme rarely declares more than a handful of cues.
const soundCacheSize = 64

// Soundboard plays a theme's sound cues, caching loaded sounds per cue
// name so repeated plays do not reload the resource. Evicted and purged
// sounds are closed.
type Soundboard struct {
	theme  *Theme
	player SoundPlayer
	cache  *lru.Cache[string, Sound]
}

// NewSoundboard creates a Soundboard for the given theme.
func NewSoundboard(t *Theme, player SoundPlayer) (*Soundboard, error) {
	cache, err := lru.NewWithEvict[string, Sound](soundCacheSize, func(_ string, snd Sound) {
		_ = snd.Close()
	})
	if err != nil {
		return nil, err
	}

	return &Soundboard{theme: t, player: player, cache: cache}, nil
}

// Play plays the named cue, loading its sound on first use.
func (sb *Soundboard) Play(name string) error {
	if snd, ok := sb.cache.Get(name); ok {
		return snd.Play()
	}

	path, err := sb.theme.Cue(name)
	if err != nil {
		return err
	}

	snd, err := sb.player.Load(path)
	if err != nil {
		return err
	}

	sb.cache.Add(name, snd)
	return snd.Play()
}

// Close releases every cached sound.
func (sb *Soundboard) Close() error {
	sb.cache.Purge()
	return nil
}
