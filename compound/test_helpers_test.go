// SPDX-License-Identifier: MIT
// Package compound_test contains fixtures shared by the compound tests.

package compound_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/organo/compound"
	"github.com/katalvlaran/organo/matter"
)

// Atomic numbers used across tests (avoid magic numbers in test bodies).
const (
	ZH  = 1
	ZLi = 3
	ZBe = 4
	ZC  = 6
	ZN  = 7
	ZAr = 18
)

// Concurrency sizes.
const (
	NNodes   = 16
	NWorkers = 8
	NReaders = 8
	NRounds  = 200
)

// newNodes creates k carbon-centered nodes in a fresh arena.
func newNodes(t *testing.T, k int) (*compound.Arena, []*compound.Node) {
	t.Helper()
	a := compound.New()
	nodes := make([]*compound.Node, k)
	for i := range nodes {
		nodes[i] = a.NewCompound(matter.MustAtom(ZC))
	}
	require.Equal(t, k, a.Len())

	return a, nodes
}

// requireReciprocal asserts the side-chain invariants on every node of a.
func requireReciprocal(t *testing.T, a *compound.Arena) {
	t.Helper()
	for _, n := range a.Nodes() {
		seen := make(map[compound.NodeID]bool)
		for _, id := range n.SideChains() {
			require.NotEqual(t, n.ID(), id, "node %d links itself", n.ID())
			require.False(t, seen[id], "node %d lists %d twice", n.ID(), id)
			seen[id] = true

			nb, err := a.Node(id)
			require.NoError(t, err)
			require.True(t, nb.HasSideChain(n.ID()), "link %d->%d is one-directional", n.ID(), id)
		}
	}
}
