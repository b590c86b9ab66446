// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rollinghash

import "fmt"

const (
	rkBase = 257
	// rkPrime is a 64-bit prime greater than rkBase*255 (the largest
	// possible byte*base product), so every intermediate sum in advance
	// stays well clear of uint64 overflow.
	rkPrime = 8589935681
)

// RabinKarp is a Rabin-Karp rolling hash over a byte window in GF(p),
// p = rkPrime, base = rkBase.
type RabinKarp struct {
	text   []byte
	offset int
	window int
	rem    uint64
	hash   uint64
}

// NewRabinKarp builds a Rabin-Karp hasher over text's first window
// bytes. It panics if window is larger than len(text).
func NewRabinKarp(text []byte, window int) *RabinKarp {
	if window < 1 || window > len(text) {
		panic(fmt.Sprintf("window %d is invalid for text of length %d", window, len(text)))
	}
	h := &RabinKarp{text: text, window: window}
	h.init()
	return h
}

func (h *RabinKarp) byteAt(i int) uint64 {
	if i < len(h.text) {
		return uint64(h.text[i])
	}
	return 0
}

func (h *RabinKarp) init() {
	var hash uint64
	for k := 0; k < h.window; k++ {
		hash = (hash*rkBase + h.byteAt(k)) % rkPrime
	}
	h.hash = hash

	rem := uint64(1)
	for i := 0; i < h.window-1; i++ {
		rem = (rem * rkBase) % rkPrime
	}
	h.rem = rem
}

// Hash returns the hash of the current window.
func (h *RabinKarp) Hash() uint64 { return h.hash }

// Advance slides the window forward by one byte and returns the new
// hash. Past the end of text, the substituted byte is 0.
func (h *RabinKarp) Advance() uint64 {
	lead := h.byteAt(h.offset)
	h.hash = (h.hash + rkPrime - (h.rem*lead)%rkPrime) % rkPrime
	h.hash = (h.hash * rkBase) % rkPrime
	h.hash = (h.hash + h.byteAt(h.offset+h.window)) % rkPrime
	h.offset++
	return h.hash
}

// AdvanceN advances the window by k bytes, equivalent to k calls to
// Advance.
func (h *RabinKarp) AdvanceN(k int) uint64 {
	for i := 0; i < k; i++ {
		h.Advance()
	}
	return h.hash
}

// HashedBytes returns the current window together with its hash.
func (h *RabinKarp) HashedBytes() HashedBytes {
	end := h.offset + h.window
	if end > len(h.text) {
		end = len(h.text)
	}
	return HashedBytes{Bytes: h.text[h.offset:end], Hash: h.hash}
}

// Offset returns the start of the current window within text.
func (h *RabinKarp) Offset() int { return h.offset }

// Window returns the window width in bytes.
func (h *RabinKarp) Window() int { return h.window }

// Done reports whether the window has advanced past the end of text.
func (h *RabinKarp) Done() bool {
	return h.offset+h.window > len(h.text)
}

// Iterate yields a HashedBytes for each window position from the
// hasher's current offset onward, advancing after every call to yield,
// for exactly len(text)-window+1-offset windows in total.
func (h *RabinKarp) Iterate(yield func(HashedBytes) bool) {
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
