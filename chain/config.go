// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// config.go - builder configuration and deterministic defaults.
//
// Deterministic defaults:
//   • elementFn = carbon for every index
//   • arena     = nil (Build creates a fresh compound.Arena)
//   • hydrogens = false (no implicit hydrogen fill)
//   • logger    = discard

package chain

import (
	"log/slog"

	"github.com/katalvlaran/organo/compound"
	"github.com/katalvlaran/organo/matter"
)

// builderConfig aggregates all knobs used by a Builder. It is resolved once
// in NewBuilder and never changes afterwards.
type builderConfig struct {
	// index -> center element of the node materialized for that index.
	elementFn func(int) matter.Element
	// target arena; nil means "create one in Build".
	arena *compound.Arena
	// fill each node up to its default valence with hydrogens.
	hydrogens bool
	logger    *slog.Logger
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		elementFn: carbon,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func carbon(int) matter.Element { return matter.Carbon }
