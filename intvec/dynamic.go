// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package intvec

import "fmt"

// IntVec is a packed vector of unsigned integers whose bit width is a
// run-time value, set at construction and adjustable later by
// BitCompress.
type IntVec struct {
	c *core
}

// New creates an integer vector with the given bit width and a default
// capacity of 8 elements.
func New(width int) *IntVec {
	return WithCapacity(width, 8)
}

// WithCapacity creates an integer vector with the given bit width,
// pre-allocated to hold at least capacity elements without reallocating.
func WithCapacity(width, capacity int) *IntVec {
	return &IntVec{c: newCore(width, capacity)}
}

// Len returns the number of integers currently stored.
func (v *IntVec) Len() int { return v.c.size }

// IsEmpty reports whether the vector holds no integers.
func (v *IntVec) IsEmpty() bool { return v.c.size == 0 }

// Cap returns how many integers would fit in the currently allocated
// backing storage at the current bit width.
func (v *IntVec) Cap() int { return v.c.capacity }

// BitWidth returns the number of bits used to store each integer.
func (v *IntVec) BitWidth() int { return v.c.width }

// RawWords exposes the backing words directly.
func (v *IntVec) RawWords() []uint64 { return v.c.data }

// Push appends v to the end of the vector. It panics if v doesn't fit
// in BitWidth() bits.
func (v *IntVec) Push(val uint64) { v.c.push(val) }

// Get reads the integer at index i, panicking if i is out of range.
func (v *IntVec) Get(i int) uint64 {
	if i < 0 || i >= v.c.size {
		panic(fmt.Sprintf("index is %d but length is %d", i, v.c.size))
	}
	return v.c.get(i)
}

// GetUnchecked is Get without the bounds check.
func (v *IntVec) GetUnchecked(i int) uint64 { return v.c.get(i) }

// Set overwrites the integer at index i, panicking if i is out of range
// or val doesn't fit in BitWidth() bits.
func (v *IntVec) Set(i int, val uint64) {
	if i < 0 || i >= v.c.size {
		panic(fmt.Sprintf("index is %d but length is %d", i, v.c.size))
	}
	if v.c.width < 64 && val >= (uint64(1)<<uint(v.c.width)) {
		panic(fmt.Sprintf("value too large for %d-bit integer", v.c.width))
	}
	v.c.set(i, val)
}

// SetUnchecked is Set without the bounds or width checks.
func (v *IntVec) SetUnchecked(i int, val uint64) { v.c.set(i, val) }

// BitCompress re-encodes every element at the minimal bit width that
// holds the current maximum element, in place.
func (v *IntVec) BitCompress() { v.c.bitCompress() }

// ShrinkToFit releases any backing words beyond what Len() elements at
// the current BitWidth() require.
func (v *IntVec) ShrinkToFit() { v.c.shrinkToFit() }

// Iter calls yield with each stored integer in order, stopping early if
// yield returns false.
func (v *IntVec) Iter(yield func(uint64) bool) {
	for i := 0; i < v.c.size; i++ {
		if !yield(v.c.get(i)) {
			return
		}
	}
}
