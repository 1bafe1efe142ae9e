// SPDX-License-Identifier: MIT
// Package: organo/compound
//
// methods_modify.go - the Modifier capability: AddSubstituent, AddSideChain,
// plus the explicit Claim used to hold a node for a multi-step edit.
//
// Contract:
//   - Claims are non-blocking: a busy node fails fast with ErrMutationConflict.
//   - AddSideChain claims BOTH endpoints before writing anything, then
//     publishes both halves while holding both node locks (ordered by NodeID).
//     A failure at any step leaves both nodes untouched.
//   - Self-links and repeated links are successful no-ops.

package compound

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/organo/matter"
)

// Modifier is the graph mutation capability. *Arena implements it; code that
// only links nodes should accept a Modifier rather than an *Arena.
type Modifier interface {
	AddSubstituent(id NodeID, p matter.Particle) error
	AddSideChain(id, neighbor NodeID) error
}

var _ Modifier = (*Arena)(nil)

// AddSubstituent appends p to the substituents of node id.
//
// Errors:
//   - ErrNilArena, ErrNodeNotFound for a bad target.
//   - ErrEmptyParticle for a zero-value particle.
//   - ErrMutationConflict if the node is claimed; the node is unchanged.
//
// Complexity: O(1) amortized.
func (a *Arena) AddSubstituent(id NodeID, p matter.Particle) error {
	n, err := a.Node(id)
	if err != nil {
		return fmt.Errorf("AddSubstituent: %w", err)
	}
	if p.Kind() == 0 {
		return fmt.Errorf("AddSubstituent(%d): %w", id, ErrEmptyParticle)
	}
	if !n.tryClaim() {
		a.log.Debug("substituent rejected", slog.Int("node", int(id)))
		return fmt.Errorf("AddSubstituent(%d): %w", id, ErrMutationConflict)
	}
	defer n.release()

	n.mu.Lock()
	n.subst = append(n.subst, p)
	n.mu.Unlock()

	return nil
}

// AddSideChain links node id and node neighbor reciprocally.
//
// Steps:
//  1. Resolve both IDs.
//  2. id == neighbor ⇒ no-op, nil.
//  3. Claim id, then neighbor; on failure release what was claimed and
//     return ErrMutationConflict.
//  4. Lock both nodes in NodeID order; if already linked ⇒ no-op.
//  5. Append neighbor to id's side chains and id to neighbor's.
//
// Complexity: O(d) for the membership scan, d = side-chain count of id.
func (a *Arena) AddSideChain(id, neighbor NodeID) error {
	n, m, err := a.resolve(id, neighbor)
	if err != nil {
		return fmt.Errorf("AddSideChain(%d,%d): %w", id, neighbor, err)
	}
	if n == m {
		return nil
	}

	if !n.tryClaim() {
		a.log.Debug("side chain rejected", slog.Int("node", int(id)), slog.Int("busy", int(id)))
		return fmt.Errorf("AddSideChain(%d,%d): node %d: %w", id, neighbor, id, ErrMutationConflict)
	}
	defer n.release()
	if !m.tryClaim() {
		a.log.Debug("side chain rejected", slog.Int("node", int(id)), slog.Int("busy", int(neighbor)))
		return fmt.Errorf("AddSideChain(%d,%d): node %d: %w", id, neighbor, neighbor, ErrMutationConflict)
	}
	defer m.release()

	first, second := n, m
	if m.id < n.id {
		first, second = m, n
	}
	first.mu.Lock()
	second.mu.Lock()
	defer first.mu.Unlock()
	defer second.mu.Unlock()

	if slices.Contains(n.side, m.id) {
		return nil
	}
	n.side = append(n.side, m.id)
	m.side = append(m.side, n.id)
	a.log.Debug("side chain linked", slog.Int("node", int(id)), slog.Int("neighbor", int(neighbor)))

	return nil
}

// Claim marks node id as under mutation until the returned release func is
// called. While claimed, AddSubstituent and AddSideChain targeting the node
// fail with ErrMutationConflict. release is idempotent.
//
// Errors: ErrNilArena, ErrNodeNotFound, ErrMutationConflict (already claimed).
func (a *Arena) Claim(id NodeID) (release func(), err error) {
	n, err := a.Node(id)
	if err != nil {
		return nil, fmt.Errorf("Claim: %w", err)
	}
	if !n.tryClaim() {
		return nil, fmt.Errorf("Claim(%d): %w", id, ErrMutationConflict)
	}

	var once sync.Once
	return func() { once.Do(n.release) }, nil
}

func (n *Node) tryClaim() bool { return n.busy.CompareAndSwap(false, true) }

func (n *Node) release() { n.busy.Store(false) }
