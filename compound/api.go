// SPDX-License-Identifier: MIT
// Package: organo/compound
//
// api.go - read-only diagnostics over a whole arena.

package compound

// Stats is a point-in-time summary of an arena.
type Stats struct {
	Nodes        int // node count
	Links        int // reciprocal side-chain links, each pair counted once
	Substituents int // substituent particles across all nodes
	Claimed      int // nodes currently under a mutation claim
}

// Stats scans every node once. Each node is read under its own lock, so
// under concurrent mutation the totals are consistent per node, not globally.
// Complexity: O(V).
func (a *Arena) Stats() Stats {
	var s Stats
	for _, n := range a.Nodes() {
		n.mu.RLock()
		s.Links += len(n.side)
		s.Substituents += len(n.subst)
		n.mu.RUnlock()
		if n.busy.Load() {
			s.Claimed++
		}
		s.Nodes++
	}
	s.Links /= 2

	return s
}
