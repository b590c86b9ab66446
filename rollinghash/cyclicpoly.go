// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rollinghash

import (
	"fmt"
	"math/bits"
	"math/rand"
)

// CyclicPolynomial is a cyclic-polynomial (Buzhash) rolling hash over a
// byte window: each byte maps through a 64-bit table entry (the table
// is a seeded shuffle of the values 0..255), rotated by its distance
// from the end of the window, and the window hash is the XOR of those
// rotated entries.
type CyclicPolynomial struct {
	text   []byte
	table  [256]uint64
	offset int
	window int
	hash   uint64
	seed   uint64
}

// NewCyclicPolynomial builds a cyclic-polynomial hasher over text's
// first window bytes, with a table shuffled from a random seed.
func NewCyclicPolynomial(text []byte, window int) *CyclicPolynomial {
	return NewCyclicPolynomialWithSeed(text, window, rand.Uint64())
}

// NewCyclicPolynomialWithSeed builds a cyclic-polynomial hasher whose
// table is deterministically derived from seed: two hashers built with
// the same seed produce identical hash sequences on identical input.
func NewCyclicPolynomialWithSeed(text []byte, window int, seed uint64) *CyclicPolynomial {
	return NewCyclicPolynomialWithTable(text, window, seed, shuffledTable(seed))
}

// NewCyclicPolynomialWithTable builds a cyclic-polynomial hasher from an
// explicit table, letting a caller reproduce a hasher built elsewhere
// from its extracted seed and table.
func NewCyclicPolynomialWithTable(text []byte, window int, seed uint64, table [256]uint64) *CyclicPolynomial {
	if window < 1 || window > len(text) {
		panic(fmt.Sprintf("window %d is invalid for text of length %d", window, len(text)))
	}
	h := &CyclicPolynomial{text: text, window: window, table: table, seed: seed}
	var hash uint64
	for k := 0; k < window; k++ {
		hash ^= bits.RotateLeft64(table[text[k]], window-k-1)
	}
	h.hash = hash
	return h
}

// shuffledTable derives a random permutation of 0..255, represented as
// 64-bit values, from seed via a seeded PRNG so the same seed always
// yields the same table.
func shuffledTable(seed uint64) [256]uint64 {
	var table [256]uint64
	for i := range table {
		table[i] = uint64(i)
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	return table
}

// Seed returns the seed the table was derived from.
func (h *CyclicPolynomial) Seed() uint64 { return h.seed }

// Table returns the character hash table in use, so a caller can build
// an equivalent hasher elsewhere with NewCyclicPolynomialWithTable.
func (h *CyclicPolynomial) Table() [256]uint64 { return h.table }

// Hash returns the hash of the current window.
func (h *CyclicPolynomial) Hash() uint64 { return h.hash }

func (h *CyclicPolynomial) byteAt(i int) byte {
	if i < len(h.text) {
		return h.text[i]
	}
	return 0
}

// Advance slides the window forward by one byte and returns the new
// hash. Past the end of text, the substituted byte is 0.
func (h *CyclicPolynomial) Advance() uint64 {
	out := h.byteAt(h.offset)
	in := h.byteAt(h.offset + h.window)
	h.hash = bits.RotateLeft64(h.hash, 1) ^
		bits.RotateLeft64(h.table[out], h.window) ^
		h.table[in]
	h.offset++
	return h.hash
}

// AdvanceN advances the window by k bytes, equivalent to k calls to
// Advance.
func (h *CyclicPolynomial) AdvanceN(k int) uint64 {
	for i := 0; i < k; i++ {
		h.Advance()
	}
	return h.hash
}

// HashedBytes returns the current window together with its hash.
func (h *CyclicPolynomial) HashedBytes() HashedBytes {
	end := h.offset + h.window
	if end > len(h.text) {
		end = len(h.text)
	}
	return HashedBytes{Bytes: h.text[h.offset:end], Hash: h.hash}
}

// Offset returns the start of the current window within text.
func (h *CyclicPolynomial) Offset() int { return h.offset }

// Window returns the window width in bytes.
func (h *CyclicPolynomial) Window() int { return h.window }

// Done reports whether the window has advanced past the end of text.
func (h *CyclicPolynomial) Done() bool {
	return h.offset+h.window > len(h.text)
}

// Iterate yields a HashedBytes for each window position from the
// hasher's current offset onward, advancing after every call to yield.
func (h *CyclicPolynomial) Iterate(yield func(HashedBytes) bool) {
	total := len(h.text) - h.window + 1 - h.offset
	for i := 0; i < total; i++ {
		if !yield(h.HashedBytes()) {
			return
		}
		if i != total-1 {
			h.Advance()
		}
	}
}
