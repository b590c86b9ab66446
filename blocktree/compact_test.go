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

func TestCompactAccessMatchesOriginalText(t *testing.T) {
	text := []byte("verygoodverybaadverygoodverygood")
	require.Len(t, text, 32)

	pt := New(text, 2, 4)
	ct := NewCompact(pt)

	require.Equal(t, len(text), ct.Len())
	for i := range text {
		assert.Equal(t, text[i], ct.Access(i), "index %d", i)
	}
}

func TestCompactAccessAgreesWithPointerTreeOnDistinctText(t *testing.T) {
	text := []byte("abcdefghijklmnopqrstuvwxyz012345")
	pt := New(text, 2, 4)
	ct := NewCompact(pt)

	for i := range text {
		assert.Equal(t, pt.Access(i), ct.Access(i), "index %d", i)
	}
}

func TestCompactAccessOnHighlyRepetitiveText(t *testing.T) {
	text := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	pt := New(text, 2, 4)
	ct := NewCompact(pt)

	for i := range text {
		assert.Equal(t, text[i], ct.Access(i), "index %d", i)
	}
}

func TestCompactAccessWithArityThree(t *testing.T) {
	text := []byte("mississippimississippimississip")
	pt := New(text, 3, 3)
	ct := NewCompact(pt)

	for i := range text {
		assert.Equal(t, text[i], ct.Access(i), "index %d", i)
	}
}

func TestCompactDiscardsPureInternalUpperLevels(t *testing.T) {
	text := []byte("verygoodverybaadverygoodverygood")
	pt := New(text, 2, 4)
	ct := NewCompact(pt)

	assert.LessOrEqual(t, ct.firstRetained, ct.leafDepth)
	assert.GreaterOrEqual(t, ct.firstRetained, 0)
}
