// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// flatten.go - depth-first, pre-order linearization of a Compounds tree.
// Pure functions: the tree shape is walked, side-chain edges are not.

package chain

import (
	"iter"

	"github.com/katalvlaran/organo/compound"
)

// Flatten returns the nodes of c in pre-order: Leaf(n) yields [n], Chain
// yields the concatenation of its children's flattenings.
// Complexity: O(size of tree).
func Flatten(c Compounds) []*compound.Node {
	var out []*compound.Node
	for n := range All(c) {
		out = append(out, n)
	}

	return out
}

// All is the iterator form of Flatten. Each range over it restarts the walk.
func All(c Compounds) iter.Seq[*compound.Node] {
	return func(yield func(*compound.Node) bool) {
		walk(c, yield)
	}
}

// walk reports false once yield asked to stop.
func walk(c Compounds, yield func(*compound.Node) bool) bool {
	switch c.kind {
	case KindLeaf:
		return yield(c.node)
	case KindChain:
		for _, it := range c.items {
			if !walk(it, yield) {
				return false
			}
		}
	}

	return true
}
