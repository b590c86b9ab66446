// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package blocktree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessMatchesOriginalText(t *testing.T) {
	text := []byte("verygoodverybaadverygoodverygood")
	require.Len(t, text, 32)

	pt := New(text, 2, 4)
	for i := range text {
		assert.Equal(t, text[i], pt.Access(i), "index %d", i)
	}
}

func TestAccessOnAllDistinctText(t *testing.T) {
	text := []byte("abcdefghijklmnopqrstuvwxyz012345")
	pt := New(text, 2, 4)
	for i := range text {
		assert.Equal(t, text[i], pt.Access(i), "index %d", i)
	}
}

func TestAccessOnHighlyRepetitiveText(t *testing.T) {
	text := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	pt := New(text, 2, 4)
	for i := range text {
		assert.Equal(t, text[i], pt.Access(i), "index %d", i)
	}
}

func TestAccessWithArityThree(t *testing.T) {
	text := []byte("mississippimississippimississip")
	pt := New(text, 3, 3)
	for i := range text {
		assert.Equal(t, text[i], pt.Access(i), "index %d", i)
	}
}

func TestInvalidArityPanics(t *testing.T) {
	assert.Panics(t, func() { New([]byte("abcd"), 1, 2) })
}

func TestInvalidLeafLengthPanics(t *testing.T) {
	assert.Panics(t, func() { New([]byte("abcd"), 2, 0) })
}

func TestBackBlocksExistForRepetitiveText(t *testing.T) {
	text := []byte("verygoodverybaadverygoodverygood")
	pt := New(text, 2, 4)

	sawBack := false
	for _, level := range pt.levels {
		for _, id := range level {
			if pt.blocks[id].isBack() {
				sawBack = true
			}
		}
	}
	assert.True(t, sawBack, "expected at least one back block in a repetitive text")
}
