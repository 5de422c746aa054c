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

package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		val  Value
		kind Kind
		name string
	}{
		{NewPair(0.5, 0.25), PairKind, "pair"},
		{String("hello"), StringKind, "string"},
		{Color(0xFF0000FF), ColorKind, "color"},
		{Float(42.5), FloatKind, "float"},
		{Bool(true), BoolKind, "bool"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.kind, test.val.Kind())
			assert.Equal(t, test.name, test.val.Kind().String())
			assert.Equal(t, test.kind, KindOf(test.val))
		})
	}

	assert.Equal(t, UnknownKind, KindOf(nil))
	assert.Equal(t, "unknown", UnknownKind.String())
	assert.Equal(t, "invalid kind", Kind(99).String())
}

func TestEquals(t *testing.T) {
	assert.True(t, NewPair(1, 2).Equals(NewPair(1, 2)))
	assert.False(t, NewPair(1, 2).Equals(NewPair(2, 1)))
	assert.True(t, String("a").Equals(String("a")))
	assert.False(t, String("a").Equals(String("b")))
	assert.True(t, Color(0x112233FF).Equals(Color(0x112233FF)))
	assert.False(t, Color(0x112233FF).Equals(Color(0x112233AA)))
	assert.True(t, Float(1.5).Equals(Float(1.5)))
	assert.False(t, Float(1.5).Equals(Float(2.5)))
	assert.True(t, Bool(true).Equals(Bool(true)))
	assert.False(t, Bool(true).Equals(Bool(false)))

	// Values of different kinds are never equal.
	assert.False(t, Float(1).Equals(Bool(true)))
	assert.False(t, String("1").Equals(Float(1)))
	assert.False(t, Color(1).Equals(Float(1)))
}

func TestColorChannels(t *testing.T) {
	c := Color(0x11223344)
	require.Equal(t, uint8(0x11), c.R())
	require.Equal(t, uint8(0x22), c.G())
	require.Equal(t, uint8(0x33), c.B())
	require.Equal(t, uint8(0x44), c.A())

	// A six digit RGB color packs with a full alpha low byte.
	opaque := Color(0xABCDEF<<8 | 0xFF)
	require.Equal(t, uint8(0xFF), opaque.A())
	require.Equal(t, uint8(0xAB), opaque.R())
}

func TestHumanReadableStrings(t *testing.T) {
	assert.Equal(t, "0.5 0.25", NewPair(0.5, 0.25).HumanReadableString())
	assert.Equal(t, `"hi"`, String("hi").HumanReadableString())
	assert.Equal(t, "#0000ffff", Color(0x0000FFFF).HumanReadableString())
	assert.Equal(t, "42.5", Float(42.5).HumanReadableString())
	assert.Equal(t, "true", Bool(true).HumanReadableString())
	assert.Equal(t, "false", Bool(false).HumanReadableString())
}
