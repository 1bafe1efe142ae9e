// SPDX-License-Identifier: MIT
// Package: organo/formula
//
// walk.go - breadth-first walk over side chains with a NodeID visited set.
//
// Concurrency: nodes are read through their copy-returning accessors, so a
// walk may run alongside mutations; each node is seen before or after any
// concurrent change to it.

package formula

import (
	"fmt"

	"github.com/katalvlaran/organo/compound"
)

// walker holds the BFS queue and visited set.
type walker struct {
	queue   []*compound.Node
	visited map[compound.NodeID]bool
	count   *Counter
}

// FromCompound tallies every atom reachable from root: centers and
// substituent atoms of root and of every node reachable over side chains.
// Each node is counted once.
//
// Errors: ErrNilCompound.
// Complexity: O(V + E + S) for S substituent atoms.
func FromCompound(root *compound.Node, opts ...Option) (*Counter, error) {
	if root == nil {
		return nil, ErrNilCompound
	}

	w := &walker{
		visited: make(map[compound.NodeID]bool),
		count:   NewCounter(opts...),
	}
	w.enqueue(root)
	for len(w.queue) > 0 {
		n := w.queue[0]
		w.queue = w.queue[1:]
		w.visit(n)
	}

	return w.count, nil
}

// Condensed is FromCompound(root).String().
func Condensed(root *compound.Node, opts ...Option) (string, error) {
	c, err := FromCompound(root, opts...)
	if err != nil {
		return "", fmt.Errorf("Condensed: %w", err)
	}

	return c.String(), nil
}

func (w *walker) enqueue(n *compound.Node) {
	w.visited[n.ID()] = true
	w.queue = append(w.queue, n)
}

// visit counts n and enqueues its unseen neighbors.
func (w *walker) visit(n *compound.Node) {
	w.count.Add(n.Center())
	for _, p := range n.Substituents() {
		w.count.AddParticle(p)
	}
	for _, nb := range n.Neighbors() {
		if !w.visited[nb.ID()] {
			w.enqueue(nb)
		}
	}
}
