// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rankselect

// SelectStrategy locates, within one L1 entry, the sub-block (0..7) that
// contains the one at local prefix-rank `remaining`, and how many ones
// precede that sub-block. Go has no value-level type parameters, so
// strategies are zero-sized marker types dispatched the same way
// intvec.Width is: the method receiver carries no state.
//
// The linear and binary variants must agree on every input; only their
// number of comparisons differs.
type SelectStrategy interface {
	findL2(e l1Entry, remaining uint64) (subBlock int, onesBefore uint64)
}

// LinearSearch scans the 7 stored prefixes in order. O(1) but with up
// to 7 comparisons.
type LinearSearch struct{}

func (LinearSearch) findL2(e l1Entry, remaining uint64) (int, uint64) {
	var prev uint64
	for j := 1; j <= 7; j++ {
		d := e.delta(j)
		if remaining < d {
			return j - 1, prev
		}
		prev = d
	}
	return 7, prev
}

// BinarySearch locates the sub-block with a fixed 3-probe binary search
// over the 7 stored prefixes, trading a constant probe count for
// slightly more branching than LinearSearch on small inputs.
type BinarySearch struct{}

func (BinarySearch) findL2(e l1Entry, remaining uint64) (int, uint64) {
	d3 := e.delta(4)
	if remaining < d3 {
		d1 := e.delta(2)
		if remaining < d1 {
			d0 := e.delta(1)
			if remaining < d0 {
				return 0, 0
			}
			return 1, d0
		}
		d2 := e.delta(3)
		if remaining < d2 {
			return 2, d1
		}
		return 3, d2
	}
	d5 := e.delta(6)
	if remaining < d5 {
		d4 := e.delta(5)
		if remaining < d4 {
			return 4, d3
		}
		return 5, d4
	}
	d6 := e.delta(7)
	if remaining < d6 {
		return 6, d5
	}
	return 7, d6
}
