// SPDX-License-Identifier: MIT
// Package: organo/compound
//
// node.go - read accessors on Node and thin Node-level wrappers around the
// Arena Modifier methods.

package compound

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/organo/matter"
)

// ID returns the node's arena-scoped identifier.
func (n *Node) ID() NodeID { return n.id }

// Arena returns the arena that owns n.
func (n *Node) Arena() *Arena { return n.arena }

// Center returns the center atom.
func (n *Node) Center() matter.Atom { return n.center }

// Substituents returns a copy of the substituent list in insertion order.
func (n *Node) Substituents() []matter.Particle {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.subst)
}

// SideChains returns a copy of the neighbor IDs in link order.
func (n *Node) SideChains() []NodeID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.side)
}

// Degree returns the number of side-chain neighbors.
func (n *Node) Degree() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.side)
}

// HasSideChain reports whether id is linked to n.
func (n *Node) HasSideChain(id NodeID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Contains(n.side, id)
}

// Neighbors resolves SideChains to nodes, in link order.
func (n *Node) Neighbors() []*Node {
	ids := n.SideChains()

	n.arena.mu.RLock()
	defer n.arena.mu.RUnlock()

	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = n.arena.nodes[id]
	}

	return out
}

// AddSubstituent is Arena.AddSubstituent(n.ID(), p).
func (n *Node) AddSubstituent(p matter.Particle) error {
	return n.arena.AddSubstituent(n.id, p)
}

// AddSideChain links n and other reciprocally; both must share an arena.
// Errors: ErrForeignNode, plus those of Arena.AddSideChain.
func (n *Node) AddSideChain(other *Node) error {
	if other == nil || other.arena != n.arena {
		return fmt.Errorf("AddSideChain(%d): %w", n.id, ErrForeignNode)
	}

	return n.arena.AddSideChain(n.id, other.id)
}

// String renders a debug summary, e.g. "#3 C subst=[[HHH]] side=[2 4]".
func (n *Node) String() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return fmt.Sprintf("#%d %s subst=%v side=%v", n.id, n.center, n.subst, n.side)
}
