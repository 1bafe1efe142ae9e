// SPDX-License-Identifier: MIT
// Package: organo/matter
//
// particle.go - Particle: the content of one substituent attachment point.

package matter

import (
	"fmt"
	"strings"
)

// ParticleKind tags the Particle variant.
type ParticleKind uint8

const (
	// KindAtom marks a Particle holding a single Atom.
	KindAtom ParticleKind = iota + 1
	// KindMolecule marks a Particle holding an ordered sequence of Atoms.
	KindMolecule
)

// String implements fmt.Stringer.
func (k ParticleKind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindMolecule:
		return "molecule"
	default:
		return fmt.Sprintf("ParticleKind(%d)", uint8(k))
	}
}

// Particle is either a single Atom or an ordered Molecule of Atoms.
// Its atom slice is never shared with callers.
type Particle struct {
	kind  ParticleKind
	atoms []Atom
}

// NewAtomParticle wraps a single atom.
func NewAtomParticle(a Atom) Particle {
	return Particle{kind: KindAtom, atoms: []Atom{a}}
}

// NewMolecule returns a Molecule particle holding a copy of atoms, in order.
// Errors: ErrEmptyMolecule.
func NewMolecule(atoms ...Atom) (Particle, error) {
	if len(atoms) == 0 {
		return Particle{}, fmt.Errorf("NewMolecule: %w", ErrEmptyMolecule)
	}
	cp := make([]Atom, len(atoms))
	copy(cp, atoms)

	return Particle{kind: KindMolecule, atoms: cp}, nil
}

// Repeat returns a Molecule of n copies of a (e.g. the three hydrogens of a
// methyl group). Errors: ErrEmptyMolecule when n < 1.
func Repeat(a Atom, n int) (Particle, error) {
	if n < 1 {
		return Particle{}, fmt.Errorf("Repeat(%s, %d): %w", a, n, ErrEmptyMolecule)
	}
	atoms := make([]Atom, n)
	for i := range atoms {
		atoms[i] = a
	}

	return Particle{kind: KindMolecule, atoms: atoms}, nil
}

// Kind returns the variant tag. The zero Particle has kind 0.
func (p Particle) Kind() ParticleKind { return p.kind }

// Atom returns the wrapped atom of a KindAtom particle.
func (p Particle) Atom() (Atom, bool) {
	if p.kind != KindAtom {
		return Atom{}, false
	}

	return p.atoms[0], true
}

// Atoms returns a copy of the particle's atoms in order: one element for
// KindAtom, the molecule's sequence for KindMolecule.
func (p Particle) Atoms() []Atom {
	out := make([]Atom, len(p.atoms))
	copy(out, p.atoms)

	return out
}

// Len returns the number of atoms in the particle.
func (p Particle) Len() int { return len(p.atoms) }

// String renders atoms joined without separators, molecules in brackets: "Ar", "[NN]".
func (p Particle) String() string {
	var sb strings.Builder
	if p.kind == KindMolecule {
		sb.WriteByte('[')
	}
	for _, a := range p.atoms {
		sb.WriteString(a.String())
	}
	if p.kind == KindMolecule {
		sb.WriteByte(']')
	}

	return sb.String()
}
