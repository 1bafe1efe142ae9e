// SPDX-License-Identifier: MIT
// Package: organo/compound
//
// methods_nodes.go - node lifecycle and lookup: NewCompound, Node, Nodes, Len.
// Determinism:
//   - NodeIDs are dense and issued in creation order.
//   - Nodes() returns nodes ordered by NodeID asc.
// Concurrency:
//   - NewCompound appends under Arena.mu write lock; lookups take the read lock.

package compound

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/organo/matter"
)

// ID returns the arena identity stamped into snapshots and log records.
func (a *Arena) ID() uuid.UUID {
	if a == nil {
		return uuid.Nil
	}

	return a.id
}

// NewCompound creates an empty node (no substituents, no side chains)
// around center and returns it.
// Complexity: O(1) amortized.
func (a *Arena) NewCompound(center matter.Atom) *Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := &Node{arena: a, id: NodeID(len(a.nodes)), center: center}
	a.nodes = append(a.nodes, n)

	return n
}

// Node resolves id to its Node.
// Errors: ErrNilArena, ErrNodeNotFound.
// Complexity: O(1).
func (a *Arena) Node(id NodeID) (*Node, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	if id < 0 || int(id) >= len(a.nodes) {
		return nil, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return a.nodes[id], nil
}

// Nodes returns every node ordered by NodeID.
// Complexity: O(V).
func (a *Arena) Nodes() []*Node {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*Node, len(a.nodes))
	copy(out, a.nodes)

	return out
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.nodes)
}

// resolve fetches two nodes under a single read lock.
func (a *Arena) resolve(x, y NodeID) (*Node, *Node, error) {
	if a == nil {
		return nil, nil, ErrNilArena
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	n := NodeID(len(a.nodes))
	if x < 0 || x >= n {
		return nil, nil, fmt.Errorf("node %d: %w", x, ErrNodeNotFound)
	}
	if y < 0 || y >= n {
		return nil, nil, fmt.Errorf("node %d: %w", y, ErrNodeNotFound)
	}

	return a.nodes[x], a.nodes[y], nil
}
