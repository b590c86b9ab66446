// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package blocktree

import (
	"fmt"

	"github.com/Skadic/succinct-neo/logger"
)

// PointerBlockTree is the direct, pointer-based construction of a block
// tree over a fixed byte string. Blocks are held in a single arena
// slice and reference children, same-level successors and back-pointer
// sources by index rather than by Go pointer, so the tree can be built
// level by level from the root and pruned in place without fighting the borrow-free-but-aliasing
// nature of a slice-backed structure.
type PointerBlockTree struct {
	input []byte

	arity      int
	leafLength int

	levelBlockSizes []int
	levelBlockCount []int

	blocks []block
	levels [][]int

	root int
}

type occurrence struct {
	source, offset int
}

// New builds a pointer block tree over text with the given arity (the
// branching factor k) and leafLength (the smallest block size l).
// Panics if arity < 2 or leafLength < 1, the same invalid-configuration
// guard the construction routine in the source this was ported from
// uses (there, an assertion; here, Go has no exceptions to recover
// from a bad config, so the panic is the whole story).
func New(text []byte, arity, leafLength int) *PointerBlockTree {
	if arity < 2 {
		panic(fmt.Sprintf("blocktree: arity must be >= 2, got %d", arity))
	}
	if leafLength < 1 {
		panic(fmt.Sprintf("blocktree: leafLength must be >= 1, got %d", leafLength))
	}

	sizes, counts := calculateLevelBlockSizes(len(text), arity, leafLength)
	logger.Default.WithField("textLen", len(text)).WithField("arity", arity).
		WithField("leafLength", leafLength).Debugf("blocktree: constructing pointer tree with %d levels", len(sizes))

	t := &PointerBlockTree{
		input:           text,
		arity:           arity,
		leafLength:      leafLength,
		levelBlockSizes: sizes,
		levelBlockCount: counts,
		root:            0,
	}
	t.blocks = append(t.blocks, newInternalBlock(0, sizes[0]))
	t.levels = append(t.levels, []int{0})

	firstOcc := map[int]occurrence{}
	for depth := 1; depth < len(sizes); depth++ {
		if !t.generateLevel(depth) {
			break
		}
		isInternalCandidate := t.scanBlockPairs(depth)
		t.scanBlocks(depth, isInternalCandidate, firstOcc)
		logger.Default.Debugf("blocktree: level %d generated with %d blocks", depth, len(t.levels[depth]))
		if sizes[depth] == leafLength {
			break
		}
	}

	t.pruneBlock(t.root, firstOcc)
	return t
}

// calculateLevelBlockSizes derives the block size (and, for bookkeeping,
// the ideal block count) of every level from the root down to the
// leaves: start at leafLength and multiply by arity until the size
// reaches or exceeds n, then lay that sequence out root-first.
func calculateLevelBlockSizes(n, arity, leafLength int) ([]int, []int) {
	var sizes, counts []int
	blockSize := leafLength
	for blockSize < n {
		sizes = append(sizes, blockSize)
		counts = append(counts, ceilDiv(n, blockSize))
		blockSize *= arity
	}
	sizes = append(sizes, blockSize)
	counts = append(counts, 1)

	for i, j := 0, len(sizes)-1; i < j; i, j = i+1, j-1 {
		sizes[i], sizes[j] = sizes[j], sizes[i]
		counts[i], counts[j] = counts[j], counts[i]
	}
	return sizes, counts
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// generateLevel splits every non-back block of level depth-1 into
// arity children of size levelBlockSizes[depth], chaining the new
// level's blocks together via next for the back-pointer "spills into
// successor" lookup. A parent already classified as a back block
// contributes no children, mirroring the source construction's skip of
// back blocks when descending. Returns false if no children were
// produced at all (the level would be empty).
func (t *PointerBlockTree) generateLevel(depth int) bool {
	blockSize := t.levelBlockSizes[depth]
	n := len(t.input)
	prevLevel := t.levels[depth-1]

	var current []int
	for _, prevID := range prevLevel {
		if t.blocks[prevID].isBack() {
			continue
		}
		prevStart := t.blocks[prevID].start
		prevLen := t.blocks[prevID].length()
		for i := 0; i < prevLen; i += blockSize {
			if prevStart+i >= n {
				break
			}
			id := len(t.blocks)
			t.blocks = append(t.blocks, newInternalBlock(prevStart+i, prevStart+i+blockSize))
			current = append(current, id)
			t.blocks[prevID].children = append(t.blocks[prevID].children, id)
		}
	}
	if len(current) == 0 {
		return false
	}
	for i := 0; i < len(current)-1; i++ {
		t.blocks[current[i]].next = current[i+1]
	}
	t.levels = append(t.levels, current)
	return true
}

// Len reports the length of the original text.
func (t *PointerBlockTree) Len() int { return len(t.input) }

// Depth reports the number of levels, root included.
func (t *PointerBlockTree) Depth() int { return len(t.levels) }
