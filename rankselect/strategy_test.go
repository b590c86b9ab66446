// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rankselect

import "testing"

import "github.com/stretchr/testify/assert"

func buildEntry(deltas [7]uint64) l1Entry {
	var e l1Entry
	e = e.withCumulative(123456789)
	for i, d := range deltas {
		e = e.withDelta(i+1, d)
	}
	return e
}

func runStrategyEvenlySpaced(t *testing.T, s SelectStrategy) {
	e := buildEntry([7]uint64{1, 2, 3, 4, 5, 6, 7})
	for i := 0; i < 128; i++ {
		want := i
		if want > 7 {
			want = 7
		}
		sub, before := s.findL2(e, uint64(i))
		assert.Equal(t, want, sub, "i=%d", i)
		assert.Equal(t, uint64(want), before, "i=%d", i)
	}
}

func runStrategyGeneric(t *testing.T, s SelectStrategy) {
	e := buildEntry([7]uint64{10, 25, 80, 90, 167, 1002, 1762})
	for i := 0; i < 4096; i++ {
		var wantSub int
		var wantBefore uint64
		switch {
		case i < 10:
			wantSub, wantBefore = 0, 0
		case i < 25:
			wantSub, wantBefore = 1, 10
		case i < 80:
			wantSub, wantBefore = 2, 25
		case i < 90:
			wantSub, wantBefore = 3, 80
		case i < 167:
			wantSub, wantBefore = 4, 90
		case i < 1002:
			wantSub, wantBefore = 5, 167
		case i < 1762:
			wantSub, wantBefore = 6, 1002
		default:
			wantSub, wantBefore = 7, 1762
		}
		sub, before := s.findL2(e, uint64(i))
		assert.Equal(t, wantSub, sub, "i=%d", i)
		assert.Equal(t, wantBefore, before, "i=%d", i)
	}
}

func runStrategyEqualRanks(t *testing.T, s SelectStrategy) {
	e := buildEntry([7]uint64{10, 25, 80, 80, 167, 167, 1762})
	for i := 0; i < 4096; i++ {
		var wantSub int
		var wantBefore uint64
		switch {
		case i < 10:
			wantSub, wantBefore = 0, 0
		case i < 25:
			wantSub, wantBefore = 1, 10
		case i < 80:
			wantSub, wantBefore = 2, 25
		case i < 167:
			wantSub, wantBefore = 4, 80
		case i < 1762:
			wantSub, wantBefore = 6, 167
		default:
			wantSub, wantBefore = 7, 1762
		}
		sub, before := s.findL2(e, uint64(i))
		assert.Equal(t, wantSub, sub, "i=%d", i)
		assert.Equal(t, wantBefore, before, "i=%d", i)
	}
}

func TestLinearSearchEvenlySpaced(t *testing.T) { runStrategyEvenlySpaced(t, LinearSearch{}) }
func TestLinearSearchGeneric(t *testing.T)       { runStrategyGeneric(t, LinearSearch{}) }
func TestLinearSearchEqualRanks(t *testing.T)    { runStrategyEqualRanks(t, LinearSearch{}) }

func TestBinarySearchEvenlySpaced(t *testing.T) { runStrategyEvenlySpaced(t, BinarySearch{}) }
func TestBinarySearchGeneric(t *testing.T)       { runStrategyGeneric(t, BinarySearch{}) }
func TestBinarySearchEqualRanks(t *testing.T)    { runStrategyEqualRanks(t, BinarySearch{}) }
