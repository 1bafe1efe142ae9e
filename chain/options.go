// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// options.go - functional options for NewBuilder.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil).
//   • Builder methods never panic on user input.

package chain

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/organo/compound"
	"github.com/katalvlaran/organo/matter"
)

// Option customizes a Builder.
type Option func(*builderConfig)

// WithArena materializes nodes into a instead of a fresh arena, so a built
// skeleton can be linked to nodes created elsewhere. Panics on nil.
func WithArena(a *compound.Arena) Option {
	if a == nil {
		panic("chain: WithArena(nil)")
	}
	return func(c *builderConfig) { c.arena = a }
}

// WithElements sets the center element per reserved index: index i gets
// els[i] when i < len(els), carbon otherwise. The slice is copied.
func WithElements(els ...matter.Element) Option {
	seq := slices.Clone(els)
	return func(c *builderConfig) {
		c.elementFn = func(i int) matter.Element {
			if i < len(seq) {
				return seq[i]
			}
			return matter.Carbon
		}
	}
}

// WithElementFn sets the index -> element mapping. Panics on nil.
func WithElementFn(fn func(int) matter.Element) Option {
	if fn == nil {
		panic("chain: WithElementFn(nil)")
	}
	return func(c *builderConfig) { c.elementFn = fn }
}

// WithImplicitHydrogens makes Build attach, to every node whose element has
// a default valence, a hydrogen substituent for each unused bond.
func WithImplicitHydrogens() Option {
	return func(c *builderConfig) { c.hydrogens = true }
}

// WithLogger routes the builder's debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chain: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}
