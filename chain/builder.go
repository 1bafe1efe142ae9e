// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// builder.go - the chain-building session: Chain, ChainAt and inspection.
//
// Contract:
//   - Indices are reserved densely from 0; size only grows, never renumbers.
//   - The first Chain(n) fixes ChainLen() = n, the locant bound.
//   - Every index laid down by Chain owns an adjacency entry; ChainAt only
//     accepts locants whose index has one.
//   - Branches under a locant keep ChainAt call order.
//   - Validation happens before any state change.

package chain

import (
	"fmt"
	"log/slog"
	"slices"
)

// segment is one contiguous path of reserved indices.
type segment struct {
	start   int
	n       int
	attach  int  // index the first atom bonds to; -1 for the chain root
	primary bool // laid down by Chain rather than ChainAt
}

// Builder is a single-use chain-building session. It is not safe for
// concurrent use.
type Builder struct {
	cfg builderConfig
	log *slog.Logger

	parentLen int // fixed by the first Chain call
	size      int // next unused index
	tail      int // last index of the parent chain, -1 before Chain

	// realized parent-chain index -> branch start indices, ChainAt order.
	adjacency map[int][]int
	segments  []segment
	consumed  bool
}

// NewBuilder starts an empty session.
func NewBuilder(opts ...Option) *Builder {
	cfg := newBuilderConfig(opts...)

	return &Builder{
		cfg:       cfg,
		log:       cfg.logger,
		tail:      -1,
		adjacency: make(map[int][]int),
	}
}

// Chain reserves n sequential indices on the parent chain, each bonded to the
// previous one. The first call fixes ChainLen(); later calls extend the
// parent chain from its tail.
//
// Errors: ErrBuilderConsumed, ErrInvalidLength.
// Complexity: O(n).
func (b *Builder) Chain(n int) error {
	if b.consumed {
		return fmt.Errorf("Chain(%d): %w", n, ErrBuilderConsumed)
	}
	if n < 1 {
		return fmt.Errorf("Chain(%d): %w", n, ErrInvalidLength)
	}

	if b.parentLen == 0 {
		b.parentLen = n
	}
	start := b.reserve(n, b.tail, true)
	for i := start; i < start+n; i++ {
		b.adjacency[i] = nil
	}
	b.tail = start + n - 1
	b.log.Debug("chain reserved", slog.Int("start", start), slog.Int("n", n), slog.Int("parent_len", b.parentLen))

	return nil
}

// ChainAt reserves an n-atom branch bonded to the parent-chain atom at the
// 1-based locant. Repeated calls on one locant add distinct branches.
//
// Errors (checked in this order):
//   - ErrBuilderConsumed.
//   - ErrUnconfiguredParentChain if Chain was never called.
//   - ErrInvalidLocant if locant ∉ [1, ChainLen()] or its index is not realized.
//   - ErrInvalidLength if n < 1.
//
// Complexity: O(1) amortized.
func (b *Builder) ChainAt(locant, n int) error {
	if b.consumed {
		return fmt.Errorf("ChainAt(%d,%d): %w", locant, n, ErrBuilderConsumed)
	}
	if b.parentLen == 0 {
		return fmt.Errorf("ChainAt(%d,%d): %w", locant, n, ErrUnconfiguredParentChain)
	}
	if locant < 1 || locant > b.parentLen {
		b.log.Debug("locant rejected", slog.Int("locant", locant), slog.Int("parent_len", b.parentLen))
		return fmt.Errorf("ChainAt(%d,%d): locant outside [1,%d]: %w", locant, n, b.parentLen, ErrInvalidLocant)
	}
	idx := locant - 1
	if _, ok := b.adjacency[idx]; !ok {
		return fmt.Errorf("ChainAt(%d,%d): index %d not realized: %w", locant, n, idx, ErrInvalidLocant)
	}
	if n < 1 {
		return fmt.Errorf("ChainAt(%d,%d): %w", locant, n, ErrInvalidLength)
	}

	start := b.reserve(n, idx, false)
	b.adjacency[idx] = append(b.adjacency[idx], start)
	b.log.Debug("branch reserved", slog.Int("locant", locant), slog.Int("start", start), slog.Int("n", n))

	return nil
}

// reserve records a segment [size, size+n) and advances size.
func (b *Builder) reserve(n, attach int, primary bool) int {
	start := b.size
	b.segments = append(b.segments, segment{start: start, n: n, attach: attach, primary: primary})
	b.size += n

	return start
}

// ChainLen returns the parent chain length fixed by the first Chain call
// (0 before it). Branch atoms are not counted.
func (b *Builder) ChainLen() int { return b.parentLen }

// Size returns the total number of reserved indices across the parent chain,
// its extensions and all branches.
func (b *Builder) Size() int { return b.size }

// Branches returns the start indices of the branches registered at locant,
// in registration order, or nil when there are none or the locant is unknown.
func (b *Builder) Branches(locant int) []int {
	return slices.Clone(b.adjacency[locant-1])
}
