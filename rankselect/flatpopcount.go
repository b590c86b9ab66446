// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rankselect

import (
	"math/bits"

	"github.com/Skadic/succinct-neo/bitvec"
	"github.com/Skadic/succinct-neo/intvec"
)

// oneSamplePeriod is how often a one's L1 block is sampled to seed
// Select's forward search: every 8192nd one.
const oneSamplePeriod = 1 << 13

// FlatPopcount is a rank/select index over an immutable bitvec.BitVec.
// Strat picks the sub-block search Select uses to narrow down an L1
// entry; it costs nothing at runtime since SelectStrategy
// implementations are zero-sized, the same trick intvec.Fixed uses for
// compile-time-fixed widths.
//
// The index borrows its backing vector rather than copying it. Mutating
// the BitVec after building a FlatPopcount over it invalidates every
// rank/select result the index returns afterward.
type FlatPopcount[Strat SelectStrategy] struct {
	backing     *bitvec.BitVec
	l1          []l1Entry
	sampledOnes *intvec.IntVec
	numOnes     int
}

// New builds a FlatPopcount index over backing. Construction is O(n)
// and the index retains a reference to backing rather than copying it.
func New[Strat SelectStrategy](backing *bitvec.BitVec) *FlatPopcount[Strat] {
	f := &FlatPopcount[Strat]{backing: backing}
	if backing.Len() == 0 {
		f.sampledOnes = intvec.New(1)
		return f
	}
	logN := bits.Len(uint(backing.Len()))
	f.sampledOnes = intvec.New(logN)
	f.buildIndices()
	f.sampleOnes()
	return f
}

// buildIndices runs pass A: walk raw words 8 at a time (one L2
// sub-block, 512 bits, per group of 8), folding popcounts of the first
// 7 sub-blocks of each L1 block (4096 bits, 8 sub-blocks) into L2
// deltas and closing out the 128-bit L1 entry when the 8th sub-block is
// reached (its count is never stored explicitly; it's recovered as the
// difference between consecutive cumulatives). The last, possibly
// partial, L1 block has its unset L2 deltas padded to the all-ones
// mask, so a select probe that lands in it still terminates without a
// separate end-of-data check.
func (f *FlatPopcount[Strat]) buildIndices() {
	words := f.backing.RawWords()
	var numOnes uint64
	var onesInL1 uint64
	var cur l1Entry

	i := 0
	for start := 0; start < len(words); start += 8 {
		end := start + 8
		if end > len(words) {
			end = len(words)
		}
		sub := words[start:end]
		subIndex := i & 7
		if subIndex == 7 {
			f.l1 = append(f.l1, cur)
			numOnes += onesInL1 + popcountWords(sub)
			cur = l1Entry{}.withCumulative(numOnes)
			onesInL1 = 0
			i++
			continue
		}
		onesInL1 += popcountWords(sub)
		cur = cur.withDelta(subIndex+1, onesInL1)
		i++
	}
	for i&7 != 7 {
		cur = cur.withDelta((i&7)+1, l2IndexMask)
		i++
	}
	f.l1 = append(f.l1, cur)
	f.numOnes = int(numOnes + onesInL1)
}

func popcountWords(words []uint64) uint64 {
	var n uint64
	for _, w := range words {
		n += uint64(bits.OnesCount64(w))
	}
	return n
}

// sampleOnes records, for every 8192nd one encountered (by overall
// one-count), the L1 block index containing that one: a coarse hint
// Select refines with a short forward/backward scan, rather than a
// precise answer in its own right.
func (f *FlatPopcount[Strat]) sampleOnes() {
	count := -1
	for i := 0; i < f.backing.Len(); i++ {
		if !f.backing.GetUnchecked(i) {
			continue
		}
		count++
		if count&(oneSamplePeriod-1) == 0 {
			f.sampledOnes.Push(uint64(i >> l1BlockBitsExp))
		}
	}
}

// Len returns the number of bits in the underlying bit vector. This is
// not the number of ones.
func (f *FlatPopcount[Strat]) Len() int { return f.backing.Len() }

// IsEmpty reports whether the underlying bit vector holds no bits.
func (f *FlatPopcount[Strat]) IsEmpty() bool { return f.backing.Len() == 0 }

// NumOnes returns the total number of set bits.
func (f *FlatPopcount[Strat]) NumOnes() int { return f.numOnes }

// roughRank1 returns the number of ones up to, but not including, the
// l2Index-th sub-block of L1 block l1Index.
func (f *FlatPopcount[Strat]) roughRank1(l1Index, l2Index int) uint64 {
	e := f.l1[l1Index]
	if l2Index == 0 {
		return e.cumulative()
	}
	return e.cumulative() + e.delta(l2Index)
}

// Rank1 returns the number of ones in positions [0, index).
func (f *FlatPopcount[Strat]) Rank1(index int) int {
	return f.rank(index, true)
}

// Rank0 returns the number of zeros in positions [0, index).
func (f *FlatPopcount[Strat]) Rank0(index int) int {
	return f.rank(index, false)
}

// Rank returns Rank1(index) if target, else Rank0(index).
func (f *FlatPopcount[Strat]) Rank(index int, target bool) int {
	return f.rank(index, target)
}

func (f *FlatPopcount[Strat]) rank(index int, target bool) int {
	l1Index := index >> l1BlockBitsExp
	l2Index := (index >> l2BlockBitsExp) & 7
	internalIndex := index & ((1 << 9) - 1)
	fullWords := internalIndex >> 6
	restBits := internalIndex - (fullWords << 6)

	ones := f.roughRank1(l1Index, l2Index)
	raw := f.backing.RawWords()
	wordStart := (l1Index << 6) + (l2Index << 3)
	for i := 0; i < fullWords; i++ {
		ones += uint64(bits.OnesCount64(raw[wordStart+i]))
	}
	if restBits > 0 {
		ones += uint64(bits.OnesCount64(raw[wordStart+fullWords] & ((1 << uint(restBits)) - 1)))
	}

	if target {
		return int(ones)
	}
	return index - int(ones)
}

// Select1 returns the 0-indexed position of the k-th one (that is, the
// position p with Rank1(p) == k and Rank1(p+1) == k+1), or false if
// k >= NumOnes().
func (f *FlatPopcount[Strat]) Select1(k int) (int, bool) {
	if k < 0 || k >= f.numOnes {
		return 0, false
	}

	idx := int(f.sampledOnes.Get(k >> 13))
	if idx >= len(f.l1) {
		idx = len(f.l1) - 1
	}
	for idx > 0 && f.l1[idx-1].cumulative() > uint64(k) {
		idx--
	}
	for idx < len(f.l1)-1 && f.l1[idx].cumulative() <= uint64(k) {
		idx++
	}
	if idx > 0 && f.l1[idx].cumulative() > uint64(k) {
		idx--
	}

	remaining := uint64(k) - f.l1[idx].cumulative()

	var strat Strat
	l2Index, onesBefore := strat.findL2(f.l1[idx], remaining)
	remaining -= onesBefore

	raw := f.backing.RawWords()
	wordIndex := (idx << 6) + (l2Index << 3)
	wordsInL2 := 0
	for {
		n := uint64(bits.OnesCount64(raw[wordIndex]))
		if n <= remaining {
			remaining -= n
			wordIndex++
			wordsInL2++
			continue
		}
		break
	}

	word := raw[wordIndex]
	bitIndex := selectInWord(word, int(remaining))

	return (idx << l1BlockBitsExp) + (l2Index << l2BlockBitsExp) + (wordsInL2 << 6) + bitIndex, true
}

// selectInWord returns the bit position of the (rank+1)-th set bit in
// word (0-indexed: rank == 0 means the first set bit).
func selectInWord(word uint64, rank int) int {
	for i := 0; i < 64; i++ {
		if word&(1<<uint(i)) != 0 {
			if rank == 0 {
				return i
			}
			rank--
		}
	}
	panic("selectInWord: word does not contain enough set bits")
}
