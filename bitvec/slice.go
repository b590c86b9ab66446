// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package bitvec

import "fmt"

// Slice is a read-only view over bits [start, end) of a backing BitVec.
// It translates index i to start+i and delegates to the backing vector,
// so it never copies the underlying words.
type Slice struct {
	backing *BitVec
	start   int
	end     int
}

func newSlice(backing *BitVec, start, end int) *Slice {
	if start > end {
		panic(fmt.Sprintf("slice start %d is greater than end %d", start, end))
	}
	if end > backing.Len() {
		panic(fmt.Sprintf("index is %d but length is %d", end, backing.Len()))
	}
	return &Slice{backing: backing, start: start, end: end}
}

// Len returns the number of bits covered by the slice.
func (s *Slice) Len() int { return s.end - s.start }

// IsEmpty reports whether the slice covers zero bits.
func (s *Slice) IsEmpty() bool { return s.end == s.start }

// Get reads bit i of the slice, panicking if i is out of range.
func (s *Slice) Get(i int) bool {
	if i < 0 || i >= s.Len() {
		panicIndex(i, s.Len())
	}
	return s.GetUnchecked(i)
}

// GetUnchecked is Get without the bounds check.
func (s *Slice) GetUnchecked(i int) bool {
	return s.backing.GetUnchecked(s.start + i)
}

// Slice returns a sub-slice of this slice over [start, end).
func (s *Slice) Slice(start, end int) *Slice {
	return newSlice(s.backing, s.start+start, s.start+end)
}

// MutSlice is a mutable view over bits [start, end) of a backing BitVec.
// SplitAt produces two MutSlices over disjoint, non-overlapping index
// ranges of the same backing array; nothing stops the two halves from
// aliasing the same 64-bit word (a split need not be word-aligned), so
// callers must use them sequentially rather than interleave writes from
// both at once. Single-threaded use, which is all this package supports,
// satisfies that automatically.
type MutSlice struct {
	backing *BitVec
	start   int
	end     int
}

func newMutSlice(backing *BitVec, start, end int) *MutSlice {
	if start > end {
		panic(fmt.Sprintf("slice start %d is greater than end %d", start, end))
	}
	if end > backing.Len() {
		panic(fmt.Sprintf("index is %d but length is %d", end, backing.Len()))
	}
	return &MutSlice{backing: backing, start: start, end: end}
}

// Len returns the number of bits covered by the slice.
func (s *MutSlice) Len() int { return s.end - s.start }

// IsEmpty reports whether the slice covers zero bits.
func (s *MutSlice) IsEmpty() bool { return s.end == s.start }

// Get reads bit i of the slice, panicking if i is out of range.
func (s *MutSlice) Get(i int) bool {
	if i < 0 || i >= s.Len() {
		panicIndex(i, s.Len())
	}
	return s.GetUnchecked(i)
}

// GetUnchecked is Get without the bounds check.
func (s *MutSlice) GetUnchecked(i int) bool {
	return s.backing.GetUnchecked(s.start + i)
}

// Set writes bit i of the slice, panicking if i is out of range.
func (s *MutSlice) Set(i int, v bool) {
	if i < 0 || i >= s.Len() {
		panicIndex(i, s.Len())
	}
	s.SetUnchecked(i, v)
}

// SetUnchecked is Set without the bounds check.
func (s *MutSlice) SetUnchecked(i int, v bool) {
	s.backing.SetUnchecked(s.start+i, v)
}

// Flip toggles bit i of the slice, panicking if i is out of range.
func (s *MutSlice) Flip(i int) {
	if i < 0 || i >= s.Len() {
		panicIndex(i, s.Len())
	}
	s.FlipUnchecked(i)
}

// FlipUnchecked is Flip without the bounds check.
func (s *MutSlice) FlipUnchecked(i int) {
	s.backing.FlipUnchecked(s.start + i)
}

// SplitAt splits the slice at internal index mid into two disjoint
// mutable sub-slices [0, mid) and [mid, Len()). Both reference the same
// backing BitVec; their index ranges never overlap.
func (s *MutSlice) SplitAt(mid int) (*MutSlice, *MutSlice) {
	if mid < 0 || mid > s.Len() {
		panicIndex(mid, s.Len())
	}
	left := &MutSlice{backing: s.backing, start: s.start, end: s.start + mid}
	right := &MutSlice{backing: s.backing, start: s.start + mid, end: s.end}
	return left, right
}

// AsSlice returns a read-only view equivalent to this mutable slice.
func (s *MutSlice) AsSlice() *Slice {
	return &Slice{backing: s.backing, start: s.start, end: s.end}
}
