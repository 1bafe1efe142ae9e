// SPDX-License-Identifier: MIT
// Package: organo/compound
//
// snapshot.go - serializable view of an arena and its YAML encoding.
//
// Contract:
//   - Snapshot lists nodes in NodeID order; side chains in link order.
//   - Restore rebuilds an arena with the same identity, node IDs, substituents
//     and links. Links are replayed through AddSideChain, so every restored
//     link is reciprocal even if the document lists only one direction.

package compound

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/organo/matter"
)

// Snapshot is the serializable form of an Arena.
type Snapshot struct {
	Arena string       `yaml:"arena" json:"arena"`
	Nodes []NodeRecord `yaml:"nodes" json:"nodes"`
}

// NodeRecord is one node of a Snapshot.
type NodeRecord struct {
	ID           int              `yaml:"id" json:"id"`
	Center       AtomRecord       `yaml:"center" json:"center"`
	Substituents []ParticleRecord `yaml:"substituents,omitempty" json:"substituents,omitempty"`
	SideChains   []int            `yaml:"side_chains,omitempty" json:"side_chains,omitempty"`
}

// ParticleRecord is a substituent: Kind is "atom" or "molecule".
type ParticleRecord struct {
	Kind  string       `yaml:"kind" json:"kind"`
	Atoms []AtomRecord `yaml:"atoms" json:"atoms"`
}

// AtomRecord is a serialized matter.Atom.
type AtomRecord struct {
	Z         int  `yaml:"z" json:"z"`
	Neutrons  int  `yaml:"neutrons,omitempty" json:"neutrons,omitempty"`
	Electrons int  `yaml:"electrons" json:"electrons"`
	Oxidation *int `yaml:"oxidation,omitempty" json:"oxidation,omitempty"`
}

// Snapshot captures the arena. Each node is read under its own lock.
// Complexity: O(V + E + S) for S substituent atoms.
func (a *Arena) Snapshot() Snapshot {
	nodes := a.Nodes()
	s := Snapshot{Arena: a.id.String(), Nodes: make([]NodeRecord, 0, len(nodes))}
	for _, n := range nodes {
		rec := NodeRecord{ID: int(n.id), Center: atomRecord(n.center)}
		for _, p := range n.Substituents() {
			pr := ParticleRecord{Kind: p.Kind().String()}
			for _, at := range p.Atoms() {
				pr.Atoms = append(pr.Atoms, atomRecord(at))
			}
			rec.Substituents = append(rec.Substituents, pr)
		}
		for _, id := range n.SideChains() {
			rec.SideChains = append(rec.SideChains, int(id))
		}
		s.Nodes = append(s.Nodes, rec)
	}

	return s
}

// WriteYAML encodes s to w.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// ReadSnapshotYAML decodes a Snapshot from r without validating it;
// Restore validates.
func ReadSnapshotYAML(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("ReadSnapshotYAML: %w", err)
	}

	return s, nil
}

// Restore rebuilds an arena from s. opts are applied after the snapshot's
// identity, so a WithID option overrides it.
//
// Errors: ErrInvalidSnapshot (wrapping the matter error where relevant) for a
// bad arena UUID, non-dense node IDs, invalid atoms, unknown particle kinds or
// side chains pointing outside the snapshot.
func (s Snapshot) Restore(opts ...ArenaOption) (*Arena, error) {
	id, err := uuid.Parse(s.Arena)
	if err != nil {
		return nil, fmt.Errorf("Restore: arena %q: %w: %v", s.Arena, ErrInvalidSnapshot, err)
	}
	if id == uuid.Nil {
		return nil, fmt.Errorf("Restore: nil arena id: %w", ErrInvalidSnapshot)
	}

	a := New(append([]ArenaOption{WithID(id), WithCapacity(len(s.Nodes))}, opts...)...)

	for i, rec := range s.Nodes {
		if rec.ID != i {
			return nil, fmt.Errorf("Restore: node at position %d has id %d: %w", i, rec.ID, ErrInvalidSnapshot)
		}
		center, err := rec.Center.atom()
		if err != nil {
			return nil, fmt.Errorf("Restore: node %d center: %w: %w", i, ErrInvalidSnapshot, err)
		}
		n := a.NewCompound(center)
		for _, pr := range rec.Substituents {
			p, err := pr.particle()
			if err != nil {
				return nil, fmt.Errorf("Restore: node %d: %w: %w", i, ErrInvalidSnapshot, err)
			}
			n.subst = append(n.subst, p)
		}
	}

	for _, rec := range s.Nodes {
		for _, nb := range rec.SideChains {
			if err := a.AddSideChain(NodeID(rec.ID), NodeID(nb)); err != nil {
				return nil, fmt.Errorf("Restore: link %d-%d: %w: %w", rec.ID, nb, ErrInvalidSnapshot, err)
			}
		}
	}

	return a, nil
}

func atomRecord(at matter.Atom) AtomRecord {
	rec := AtomRecord{Z: at.Element().Number(), Neutrons: at.Neutrons(), Electrons: at.Electrons()}
	if ox, ok := at.OxidationState(); ok {
		rec.Oxidation = &ox
	}

	return rec
}

func (r AtomRecord) atom() (matter.Atom, error) {
	at, err := matter.NewAtom(r.Z)
	if err != nil {
		return matter.Atom{}, err
	}
	if at, err = at.WithNeutrons(r.Neutrons); err != nil {
		return matter.Atom{}, err
	}
	if at, err = at.WithElectrons(r.Electrons); err != nil {
		return matter.Atom{}, err
	}
	if r.Oxidation != nil {
		at = at.WithOxidationState(*r.Oxidation)
	}

	return at, nil
}

func (r ParticleRecord) particle() (matter.Particle, error) {
	atoms := make([]matter.Atom, 0, len(r.Atoms))
	for _, ar := range r.Atoms {
		at, err := ar.atom()
		if err != nil {
			return matter.Particle{}, err
		}
		atoms = append(atoms, at)
	}

	switch r.Kind {
	case matter.KindAtom.String():
		if len(atoms) != 1 {
			return matter.Particle{}, fmt.Errorf("atom particle with %d atoms", len(atoms))
		}
		return matter.NewAtomParticle(atoms[0]), nil
	case matter.KindMolecule.String():
		return matter.NewMolecule(atoms...)
	default:
		return matter.Particle{}, fmt.Errorf("unknown particle kind %q", r.Kind)
	}
}
