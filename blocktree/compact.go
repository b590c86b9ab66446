// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package blocktree

import (
	"math/bits"

	"github.com/Skadic/succinct-neo/bitvec"
	"github.com/Skadic/succinct-neo/intvec"
	"github.com/Skadic/succinct-neo/logger"
	"github.com/Skadic/succinct-neo/rankselect"
)

// CompactBlockTree is the succinct, array-based form of a block tree:
// no pointers, no per-block structs, just one IsInternal bit vector,
// one BackPointers array and one Offsets array per level that mixes
// internal and back blocks, plus a single packed LeafString for the
// deepest level (which is never itself back-compressed; a repeated
// leaf span is always resolved down to literal characters when the
// tree is converted, since Access has no redirection step left once it
// reaches the leaves).
//
// Levels shallower than the first one containing a back block are
// never stored: every block there is internal by construction, so
// Access recomputes its way down them with plain division instead of
// paying for a rank/select index that would always answer "internal".
type CompactBlockTree struct {
	textLen int
	arity   int

	levelSizes []int // block size per depth, root (depth 0) first
	leafDepth  int
	// firstRetained is the shallowest depth with a stored IsInternal /
	// BackPointers / Offsets entry; shallower levels are pure internal
	// and recomputed by flat descent.
	firstRetained int

	isInternalBits []*bitvec.BitVec
	isInternal     []*rankselect.FlatPopcount[rankselect.LinearSearch]
	backPointers   []*intvec.IntVec
	offsets        []*intvec.IntVec

	fromAscii [256]int
	toAscii   []byte
	leafString *intvec.IntVec
}

func widthFor(count int) int {
	if count <= 1 {
		return 1
	}
	return bits.Len(uint(count - 1))
}

// NewCompact converts a fully constructed PointerBlockTree into its
// compact representation.
func NewCompact(pt *PointerBlockTree) *CompactBlockTree {
	leafDepth := len(pt.levels) - 1

	firstRetained := leafDepth
	for d := 0; d <= leafDepth; d++ {
		hasBack := false
		for _, id := range pt.levels[d] {
			if pt.blocks[id].isBack() {
				hasBack = true
				break
			}
		}
		if hasBack {
			firstRetained = d
			break
		}
	}

	c := &CompactBlockTree{
		textLen:       len(pt.input),
		arity:         pt.arity,
		levelSizes:    append([]int(nil), pt.levelBlockSizes...),
		leafDepth:     leafDepth,
		firstRetained: firstRetained,
	}

	c.buildAlphabet(pt.input)
	c.buildLevels(pt)
	c.buildLeafString(pt)
	logger.Default.WithField("firstRetained", firstRetained).WithField("leafDepth", leafDepth).
		Debugf("blocktree: compacted tree discards %d pure-internal levels above the first back block", firstRetained)
	return c
}

func (c *CompactBlockTree) buildAlphabet(text []byte) {
	var present [256]bool
	for _, b := range text {
		present[b] = true
	}
	for i := range c.fromAscii {
		c.fromAscii[i] = -1
	}
	for b := 0; b < 256; b++ {
		if present[b] {
			c.fromAscii[b] = len(c.toAscii)
			c.toAscii = append(c.toAscii, byte(b))
		}
	}
	if len(c.toAscii) == 0 {
		c.toAscii = []byte{0}
		c.fromAscii[0] = 0
	}
}

func (c *CompactBlockTree) buildLevels(pt *PointerBlockTree) {
	numRetained := c.leafDepth - c.firstRetained
	c.isInternalBits = make([]*bitvec.BitVec, numRetained)
	c.isInternal = make([]*rankselect.FlatPopcount[rankselect.LinearSearch], numRetained)
	c.backPointers = make([]*intvec.IntVec, numRetained)
	c.offsets = make([]*intvec.IntVec, numRetained)

	for ri := 0; ri < numRetained; ri++ {
		depth := c.firstRetained + ri
		level := pt.levels[depth]
		numBlocks := len(level)

		bv := bitvec.New(numBlocks)
		posInLevel := make(map[int]int, numBlocks)
		for i, id := range level {
			posInLevel[id] = i
			if pt.blocks[id].kind == kindInternal {
				bv.Set(i, true)
			}
		}
		fp := rankselect.New[rankselect.LinearSearch](bv)

		bpWidth := widthFor(fp.NumOnes())
		offWidth := widthFor(c.levelSizes[depth])
		bp := intvec.New(bpWidth)
		off := intvec.New(offWidth)
		for _, id := range level {
			b := pt.blocks[id]
			if b.kind != kindBack {
				continue
			}
			r := fp.Rank1(posInLevel[b.source])
			bp.Push(uint64(r))
			off.Push(uint64(b.offset))
		}

		c.isInternalBits[ri] = bv
		c.isInternal[ri] = fp
		c.backPointers[ri] = bp
		c.offsets[ri] = off
	}
}

// buildLeafString flattens the deepest level into literal, alphabet-
// mapped characters: a leaf that is itself a back block is resolved
// through the pointer tree's own Access logic rather than kept as a
// redirection, since the compact Access algorithm has no back-pointer
// step once it reaches the leaves.
func (c *CompactBlockTree) buildLeafString(pt *PointerBlockTree) {
	width := widthFor(len(c.toAscii))
	c.leafString = intvec.New(width)

	leafSize := c.levelSizes[c.leafDepth]
	for _, id := range pt.levels[c.leafDepth] {
		start := pt.blocks[id].start
		for k := 0; k < leafSize; k++ {
			if start+k >= len(pt.input) {
				c.leafString.Push(0)
				continue
			}
			ch := pt.get(id, k)
			c.leafString.Push(uint64(c.fromAscii[ch]))
		}
	}
}

// Len returns the length of the original text.
func (c *CompactBlockTree) Len() int { return c.textLen }

// Access returns the byte at position i of the original text.
func (c *CompactBlockTree) Access(i int) byte {
	topSize := c.levelSizes[c.firstRetained]
	block := i / topSize
	local := i % topSize

	for l := c.firstRetained; l < c.leafDepth; {
		ri := l - c.firstRetained
		if c.isInternalBits[ri].Get(block) {
			rank := c.isInternal[ri].Rank1(block)
			childSize := c.levelSizes[l+1]
			block = c.arity*rank + local/childSize
			local = local % childSize
			l++
			continue
		}

		j := c.isInternal[ri].Rank0(block)
		r := int(c.backPointers[ri].Get(j))
		src, _ := c.isInternal[ri].Select1(r)
		off := int(c.offsets[ri].Get(j))
		size := c.levelSizes[l]
		if off+local < size {
			block, local = src, off+local
		} else {
			block, local = src+1, off+local-size
		}
	}

	code := c.leafString.Get(block*c.levelSizes[c.leafDepth] + local)
	return c.toAscii[code]
}
