// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package bitvec

import (
	"fmt"
	"strings"
)

// BitVec is a fixed-length sequence of bits backed by a slice of 64-bit
// words. Its length never changes after construction; content stays
// mutable until the vector is handed to a rank/select index or block
// tree, at which point callers must treat it as read-only.
type BitVec struct {
	words []uint64
	size  int
}

// New allocates a zero-filled bit vector of the given length.
func New(size int) *BitVec {
	if size < 0 {
		panic("bit vector size must not be negative")
	}
	return &BitVec{words: make([]uint64, NumWords(size)), size: size}
}

// One allocates a bit vector of the given length with every word
// initialized to all-ones. Bits past size in the final word are
// unspecified: callers must never query indices >= size.
func One(size int) *BitVec {
	if size < 0 {
		panic("bit vector size must not be negative")
	}
	words := make([]uint64, NumWords(size))
	for i := range words {
		words[i] = ^uint64(0)
	}
	return &BitVec{words: words, size: size}
}

// FromBools builds a bit vector from a slice of booleans whose length is
// known up front: the vector is pre-allocated once and filled by index.
func FromBools(bits []bool) *BitVec {
	bv := New(len(bits))
	for i, b := range bits {
		bv.SetUnchecked(i, b)
	}
	return bv
}

// FromSeq builds a bit vector from a sequence of unknown length, such as
// an iterator over a file or channel. next should return (bit, true) for
// each element and (false, false) once exhausted. Bits are packed a word
// at a time; the final length is whatever next actually produced.
func FromSeq(next func() (bool, bool)) *BitVec {
	var words []uint64
	var cur uint64
	count := 0
	for {
		bit, ok := next()
		if !ok {
			break
		}
		if bit {
			cur |= 1 << uint(count&wordMask)
		}
		count++
		if count&wordMask == 0 {
			words = append(words, cur)
			cur = 0
		}
	}
	if count&wordMask != 0 {
		words = append(words, cur)
	}
	return &BitVec{words: words, size: count}
}

// Len returns the number of bits in the vector.
func (bv *BitVec) Len() int { return bv.size }

// IsEmpty reports whether the vector holds zero bits.
func (bv *BitVec) IsEmpty() bool { return bv.size == 0 }

// Get reads bit i, panicking if i is out of range.
func (bv *BitVec) Get(i int) bool {
	if i < 0 || i >= bv.size {
		panicIndex(i, bv.size)
	}
	return bv.GetUnchecked(i)
}

// GetUnchecked is Get without the bounds check.
func (bv *BitVec) GetUnchecked(i int) bool {
	return GetWordsBitUnchecked(bv.words, i)
}

// Set writes bit i to v, panicking if i is out of range.
func (bv *BitVec) Set(i int, v bool) {
	if i < 0 || i >= bv.size {
		panicIndex(i, bv.size)
	}
	bv.SetUnchecked(i, v)
}

// SetUnchecked is Set without the bounds check.
func (bv *BitVec) SetUnchecked(i int, v bool) {
	SetWordsBitUnchecked(bv.words, i, v)
}

// Flip toggles bit i, panicking if i is out of range.
func (bv *BitVec) Flip(i int) {
	if i < 0 || i >= bv.size {
		panicIndex(i, bv.size)
	}
	bv.FlipUnchecked(i)
}

// FlipUnchecked is Flip without the bounds check.
func (bv *BitVec) FlipUnchecked(i int) {
	FlipWordsBitUnchecked(bv.words, i)
}

// RawWords exposes the backing words directly, LSB-first. Bits at or
// beyond Len() in the final word are don't-care unless the vector was
// built with New, which zeroes them.
func (bv *BitVec) RawWords() []uint64 { return bv.words }

// Slice returns an immutable view over bits [start, end).
func (bv *BitVec) Slice(start, end int) *Slice {
	return newSlice(bv, start, end)
}

// SliceMut returns a mutable view over bits [start, end).
func (bv *BitVec) SliceMut(start, end int) *MutSlice {
	return newMutSlice(bv, start, end)
}

// Iter returns the bits of the vector in order.
func (bv *BitVec) Iter() func(yield func(bool) bool) {
	return func(yield func(bool) bool) {
		for i := 0; i < bv.size; i++ {
			if !yield(bv.GetUnchecked(i)) {
				return
			}
		}
	}
}

// String renders the vector as "{0,1,1,0,...}", matching the debug
// format used throughout this package's test fixtures.
func (bv *BitVec) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < bv.size; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if bv.GetUnchecked(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func panicIndex(i, n int) {
	panic(fmt.Sprintf("index is %d but length is %d", i, n))
}
