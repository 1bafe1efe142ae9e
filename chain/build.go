// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// build.go - materialization of a session into compound nodes and a tree.
//
// Steps:
//  1. Resolve the element of every reserved index; reject invalid ones
//     before touching the arena.
//  2. Create one node per index, in index order.
//  3. For each index: link it to its path predecessor, then to the start of
//     each of its branches, via compound.Modifier.AddSideChain.
//  4. Optionally fill unused valences with hydrogens.
//  5. Assemble the Compounds tree: parent-chain leaves in order, each
//     followed by its branches (nested Chains) in ChainAt order.

package chain

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/organo/compound"
	"github.com/katalvlaran/organo/matter"
)

// Build materializes the session and returns its tree: a Leaf when exactly
// one index was reserved, a Chain rooted at index 0 otherwise. A successful
// Build consumes the session.
//
// Errors:
//   - ErrBuilderConsumed, ErrUnconfiguredParentChain (nothing reserved).
//   - matter.ErrInvalidAtomicNumber if the element mapping yields an invalid
//     element; the arena is left untouched.
//   - compound errors (e.g. ErrMutationConflict) when linking into a shared
//     arena that another goroutine is mutating; nodes created so far stay.
//
// Complexity: O(size) nodes and links.
func (b *Builder) Build() (Compounds, error) {
	if b.consumed {
		return Compounds{}, fmt.Errorf("Build: %w", ErrBuilderConsumed)
	}
	if b.size == 0 {
		return Compounds{}, fmt.Errorf("Build: %w", ErrUnconfiguredParentChain)
	}

	elements := make([]matter.Element, b.size)
	for i := range elements {
		el := b.cfg.elementFn(i)
		if !el.Valid() {
			return Compounds{}, fmt.Errorf("Build: index %d: element %d: %w", i, el.Number(), matter.ErrInvalidAtomicNumber)
		}
		elements[i] = el
	}

	arena := b.cfg.arena
	if arena == nil {
		arena = compound.New(compound.WithLogger(b.log), compound.WithCapacity(b.size))
	}
	nodes := make([]*compound.Node, b.size)
	for i, el := range elements {
		nodes[i] = arena.NewCompound(matter.AtomOf(el))
	}

	if err := b.link(arena, nodes); err != nil {
		return Compounds{}, err
	}
	if b.cfg.hydrogens {
		if err := fillHydrogens(arena, nodes); err != nil {
			return Compounds{}, err
		}
	}

	tree := b.tree(nodes)
	b.consumed = true
	b.log.Debug("chain built",
		slog.Int("atoms", b.size),
		slog.Int("parent_len", b.parentLen),
		slog.Int("segments", len(b.segments)),
		slog.String("arena", arena.ID().String()))

	return tree, nil
}

// link installs path and branch bonds. Any index outside [0,size) here is a
// builder bug.
func (b *Builder) link(m compound.Modifier, nodes []*compound.Node) error {
	pred := make([]int, b.size)
	for _, seg := range b.segments {
		for k := 0; k < seg.n; k++ {
			i := seg.start + k
			if i >= b.size {
				panic(fmt.Sprintf("chain: internal: segment index %d beyond size %d", i, b.size))
			}
			if k == 0 {
				pred[i] = seg.attach
			} else {
				pred[i] = i - 1
			}
		}
	}

	for i, node := range nodes {
		if p := pred[i]; p >= 0 {
			if p >= b.size {
				panic(fmt.Sprintf("chain: internal: predecessor %d of %d never reserved", p, i))
			}
			if err := m.AddSideChain(node.ID(), nodes[p].ID()); err != nil {
				return fmt.Errorf("Build: bond %d-%d: %w", i, p, err)
			}
		}
		for _, c := range b.adjacency[i] {
			if c < 0 || c >= b.size {
				panic(fmt.Sprintf("chain: internal: branch %d at index %d never reserved", c, i))
			}
			if err := m.AddSideChain(node.ID(), nodes[c].ID()); err != nil {
				return fmt.Errorf("Build: branch %d-%d: %w", i, c, err)
			}
		}
	}

	return nil
}

// fillHydrogens gives each node valence-degree hydrogens.
func fillHydrogens(m compound.Modifier, nodes []*compound.Node) error {
	h := matter.AtomOf(matter.Hydrogen)
	for _, node := range nodes {
		valence, ok := matter.DefaultValence(node.Center().Element())
		if !ok {
			continue
		}
		free := valence - node.Degree()
		if free < 1 {
			continue
		}

		p := matter.NewAtomParticle(h)
		if free > 1 {
			p, _ = matter.Repeat(h, free) // free > 1, cannot fail
		}
		if err := m.AddSubstituent(node.ID(), p); err != nil {
			return fmt.Errorf("Build: hydrogens at %d: %w", node.ID(), err)
		}
	}

	return nil
}

// tree assembles the Compounds result from the session's segments.
func (b *Builder) tree(nodes []*compound.Node) Compounds {
	if b.size == 1 {
		return Leaf(nodes[0])
	}

	starts := make(map[int]segment, len(b.segments))
	for _, seg := range b.segments {
		starts[seg.start] = seg
	}

	items := make([]Compounds, 0, b.size)
	for _, seg := range b.segments {
		if !seg.primary {
			continue
		}
		for i := seg.start; i < seg.start+seg.n; i++ {
			items = append(items, Leaf(nodes[i]))
			for _, c := range b.adjacency[i] {
				br, ok := starts[c]
				if !ok {
					panic(fmt.Sprintf("chain: internal: branch start %d has no segment", c))
				}
				leaves := make([]Compounds, br.n)
				for k := range leaves {
					leaves[k] = Leaf(nodes[br.start+k])
				}
				items = append(items, Chain(leaves...))
			}
		}
	}

	return Chain(items...)
}
