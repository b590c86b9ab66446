// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rollinghash

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRabinKarpWindowCount(t *testing.T) {
	text := []byte("helloyouthere")
	h := NewRabinKarp(text, 5)

	count := 0
	h.Iterate(func(HashedBytes) bool {
		count++
		return true
	})
	assert.Equal(t, len(text)-5+1, count)
}

func TestRabinKarpDistinguishesDistinctWindows(t *testing.T) {
	text := []byte("helloyouthere")
	seen := map[uint64]int{}
	h := NewRabinKarp(text, 5)
	i := 0
	h.Iterate(func(hb HashedBytes) bool {
		seen[hb.Hash] = i
		i++
		return true
	})
	assert.Len(t, seen, 9)
}

func TestRabinKarpDeterministicAcrossInstances(t *testing.T) {
	text := []byte("helloyouthere")
	a := NewRabinKarp(text, 5)
	b := NewRabinKarp(text, 5)

	var ah, bh []uint64
	a.Iterate(func(hb HashedBytes) bool { ah = append(ah, hb.Hash); return true })
	b.Iterate(func(hb HashedBytes) bool { bh = append(bh, hb.Hash); return true })
	assert.Equal(t, ah, bh)
}

func TestRabinKarpRepeatedWindowsHashEqual(t *testing.T) {
	text := []byte("abcabcabc")
	h := NewRabinKarp(text, 3)
	var hashes []uint64
	h.Iterate(func(hb HashedBytes) bool { hashes = append(hashes, hb.Hash); return true })
	require.Len(t, hashes, 7)
	assert.Equal(t, hashes[0], hashes[3])
	assert.Equal(t, hashes[3], hashes[6])
}

func TestRabinKarpStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	text := []byte("helloyouthere")
	h := NewRabinKarp(text, 5)
	count := 0
	h.Iterate(func(HashedBytes) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestRabinKarpWindowTooLargePanics(t *testing.T) {
	assert.Panics(t, func() { NewRabinKarp([]byte("ab"), 5) })
}

func TestRabinKarpAdvanceNMatchesRepeatedAdvance(t *testing.T) {
	f := func(seed []byte, steps uint8) bool {
		if len(seed) < 4 {
			seed = append(seed, 0, 0, 0, 0)
		}
		n := int(steps % 5)
		a := NewRabinKarp(seed, 3)
		b := NewRabinKarp(seed, 3)
		for i := 0; i < n; i++ {
			a.Advance()
		}
		b.AdvanceN(n)
		return a.Hash() == b.Hash()
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCyclicPolynomialWindowCount(t *testing.T) {
	text := []byte("helloyouthere")
	h := NewCyclicPolynomialWithSeed(text, 5, 1234)

	count := 0
	h.Iterate(func(HashedBytes) bool {
		count++
		return true
	})
	assert.Equal(t, len(text)-5+1, count)
}

func TestCyclicPolynomialDeterministicWithSameSeed(t *testing.T) {
	text := []byte("helloyouthereworld")
	a := NewCyclicPolynomialWithSeed(text, 4, 99)
	b := NewCyclicPolynomialWithSeed(text, 4, 99)

	var ah, bh []uint64
	a.Iterate(func(hb HashedBytes) bool { ah = append(ah, hb.Hash); return true })
	b.Iterate(func(hb HashedBytes) bool { bh = append(bh, hb.Hash); return true })
	assert.Equal(t, ah, bh)
}

func TestCyclicPolynomialDifferentSeedsLikelyDiverge(t *testing.T) {
	text := []byte("helloyouthereworldthisisalongertext")
	a := NewCyclicPolynomialWithSeed(text, 6, 1)
	b := NewCyclicPolynomialWithSeed(text, 6, 2)
	assert.NotEqual(t, a.Table(), b.Table())
}

func TestCyclicPolynomialRepeatedWindowsHashEqual(t *testing.T) {
	text := []byte("abcabcabc")
	h := NewCyclicPolynomialWithSeed(text, 3, 42)
	var hashes []uint64
	h.Iterate(func(hb HashedBytes) bool { hashes = append(hashes, hb.Hash); return true })
	require.Len(t, hashes, 7)
	assert.Equal(t, hashes[0], hashes[3])
	assert.Equal(t, hashes[3], hashes[6])
}

func TestCyclicPolynomialTableReproducesHasher(t *testing.T) {
	text := []byte("helloyouthere")
	a := NewCyclicPolynomialWithSeed(text, 5, 7)
	b := NewCyclicPolynomialWithTable(text, 5, a.Seed(), a.Table())
	assert.Equal(t, a.Hash(), b.Hash())

	a.Advance()
	b.Advance()
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestCyclicPolynomialWindowTooLargePanics(t *testing.T) {
	assert.Panics(t, func() { NewCyclicPolynomialWithSeed([]byte("ab"), 5, 1) })
}

func TestCyclicPolynomialAdvanceNMatchesRepeatedAdvance(t *testing.T) {
	f := func(seed []byte, steps uint8) bool {
		if len(seed) < 4 {
			seed = append(seed, 0, 0, 0, 0)
		}
		n := int(steps % 5)
		a := NewCyclicPolynomialWithSeed(seed, 3, 17)
		b := NewCyclicPolynomialWithSeed(seed, 3, 17)
		for i := 0; i < n; i++ {
			a.Advance()
		}
		b.AdvanceN(n)
		return a.Hash() == b.Hash()
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestHashedBytesEqualIgnoresBytes(t *testing.T) {
	a := HashedBytes{Bytes: []byte("foo"), Hash: 1}
	b := HashedBytes{Bytes: []byte("bar"), Hash: 1}
	assert.True(t, a.Equal(b))
}
