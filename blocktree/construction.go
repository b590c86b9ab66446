// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package blocktree

import "github.com/Skadic/succinct-neo/rollinghash"

// scanBlockPairs marks, for every adjacent pair of blocks on a level,
// whether it is the leftmost occurrence of its combined content among
// all adjacent pairs on the level. A block is a candidate to stay
// internal if both the pair starting at it and the pair ending at it
// are leftmost occurrences (pairMarks == 2), or if it is the level's
// first or last block and at least one of its pairs is leftmost.
//
// The source construction tracks this with a two-pass byte-pointer
// scan through a hash multimap (inserting pair hashes at block-aligned
// positions, then re-scanning byte by byte and using pointer identity
// to recognize "this position is literally the one the entry was
// stored at"). Because a pointer match can only ever succeed at the
// exact position an entry was recorded, that dance reduces to marking
// the first time each pair hash is seen while sweeping block-aligned
// positions left to right; this does that directly with a seen set.
func (t *PointerBlockTree) scanBlockPairs(depth int) []bool {
	level := t.levels[depth]
	blockSize := t.levelBlockSizes[depth]
	numBlocks := len(level)

	pairMarks := make([]int, numBlocks)
	pairSize := 2 * blockSize

	if numBlocks > 1 && pairSize <= len(t.input) {
		rk := rollinghash.NewRabinKarp(t.input, pairSize)
		seen := make(map[uint64]bool)
		pos := 0
		for i := 0; i < numBlocks-1; i++ {
			cur := &t.blocks[level[i]]
			next := &t.blocks[level[i+1]]
			for pos < cur.start {
				rk.Advance()
				pos++
			}
			if !cur.isAdjacent(next) || cur.start+pairSize > len(t.input) {
				continue
			}
			h := rk.Hash()
			if !seen[h] {
				seen[h] = true
				pairMarks[i]++
				pairMarks[i+1]++
			}
		}
	}

	isInternalCandidate := make([]bool, numBlocks)
	for i, v := range pairMarks {
		isInternalCandidate[i] = v == 2 || ((i == 0 || i == numBlocks-1) && v >= 1)
	}
	return isInternalCandidate
}

// scanBlocks installs back-pointers on every block of the level not
// marked as an internal candidate, and records the earliest prior
// occurrence of every candidate's content for later pruning. It does
// this with a single left-to-right scan tracking the hash of every
// block-width window, matching it against a multimap of the level's
// own block hashes; a match strictly to the left of some block's start
// gives that block its source, and the multimap entry is then
// discarded so only the leftmost source is ever used.
//
// A back-pointer candidate that the scan never finds a source for
// (possible at small or unusual levels) simply keeps its default
// internal classification: access must always have somewhere to read
// from.
func (t *PointerBlockTree) scanBlocks(depth int, isInternalCandidate []bool, firstOcc map[int]occurrence) {
	level := t.levels[depth]
	blockSize := t.levelBlockSizes[depth]
	numBlocks := len(level)

	if blockSize > len(t.input) {
		return
	}

	hashToIndices := make(map[uint64][]int)
	for i, id := range level {
		b := &t.blocks[id]
		if b.start+blockSize > len(t.input) {
			continue
		}
		h := rollinghash.NewRabinKarp(t.input[b.start:], blockSize).Hash()
		hashToIndices[h] = append(hashToIndices[h], i)
	}

	rk := rollinghash.NewRabinKarp(t.input, blockSize)
	limit := len(t.input) - blockSize
	pos := 0
	srcIdx := 0
	for {
		for srcIdx < numBlocks-1 && pos >= t.blocks[level[srcIdx]].end {
			srcIdx++
		}
		h := rk.Hash()
		if indices, ok := hashToIndices[h]; ok {
			for _, idx := range indices {
				target := &t.blocks[level[idx]]
				if target.start <= pos {
					continue
				}
				sourceID := level[srcIdx]
				offset := pos - t.blocks[sourceID].start
				if isInternalCandidate[idx] {
					if _, exists := firstOcc[level[idx]]; !exists {
						firstOcc[level[idx]] = occurrence{source: sourceID, offset: offset}
					}
				} else {
					target.kind = kindBack
					target.source = sourceID
					target.offset = offset
					target.children = nil
				}
			}
			delete(hashToIndices, h)
		}
		if pos == limit {
			break
		}
		rk.Advance()
		pos++
	}
}

// pruneBlock walks the tree in post-order, turning an internal block
// into a back block when: no back block elsewhere in the tree already
// points into it (with it as source, or spilling into it from its
// same-level predecessor), it has a recorded earlier
// non-overlapping occurrence, and every one of its children is itself
// either a leaf or a back block (so no grandchild is left dangling by
// the replacement). Incident-pointer counts are accumulated lazily
// during this same traversal, since a block's children must be
// resolved before its own eligibility can be decided.
func (t *PointerBlockTree) pruneBlock(id int, firstOcc map[int]occurrence) {
	b := &t.blocks[id]
	if b.kind == kindBack {
		t.incrementPointerCount(id)
		return
	}

	for _, c := range b.children {
		t.pruneBlock(c, firstOcc)
	}

	if b.incidentPointers != 0 {
		return
	}
	occ, ok := firstOcc[id]
	if !ok {
		return
	}
	if t.blocks[occ.source].start+occ.offset+b.length() > b.start {
		return
	}
	for _, c := range b.children {
		if len(t.blocks[c].children) > 0 {
			return
		}
	}

	for _, c := range b.children {
		t.decrementPointerCount(c)
	}

	b.kind = kindBack
	b.source = occ.source
	b.offset = occ.offset
	b.children = nil
}

// incrementPointerCount credits a back block's source (and, when the
// back block's content spills past its source's end, the source's
// next sibling too) with one more incident pointer.
func (t *PointerBlockTree) incrementPointerCount(id int) {
	b := t.blocks[id]
	src := &t.blocks[b.source]
	if src.kind == kindInternal {
		src.incidentPointers++
	}
	if b.offset > 0 && src.next != noBlock {
		if nxt := &t.blocks[src.next]; nxt.kind == kindInternal {
			nxt.incidentPointers++
		}
	}
}

func (t *PointerBlockTree) decrementPointerCount(id int) {
	b := t.blocks[id]
	if b.kind != kindBack {
		return
	}
	src := &t.blocks[b.source]
	if src.kind == kindInternal {
		src.incidentPointers--
	}
	if b.offset > 0 && src.next != noBlock {
		if nxt := &t.blocks[src.next]; nxt.kind == kindInternal {
			nxt.incidentPointers--
		}
	}
}
