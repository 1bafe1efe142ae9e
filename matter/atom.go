// SPDX-License-Identifier: MIT
// Package: organo/matter
//
// atom.go - Atom value type: element plus isotope and charge bookkeeping.

package matter

import "fmt"

// Atom is an Element with neutron and electron counts and an optional
// oxidation state. Atoms are values; the With* methods return copies.
type Atom struct {
	element   Element
	neutrons  int
	electrons int // equals the proton count unless ionized

	oxidation    int
	hasOxidation bool
}

// NewAtom returns a neutral atom of atomic number n with zero neutrons and
// no oxidation state.
// Errors: ErrInvalidAtomicNumber.
func NewAtom(n int) (Atom, error) {
	e, err := NewElement(n)
	if err != nil {
		return Atom{}, fmt.Errorf("NewAtom: %w", err)
	}

	return AtomOf(e), nil
}

// MustAtom is NewAtom for literal, known-good atomic numbers. It panics on
// an invalid number and is meant for fixtures and package-level tables.
func MustAtom(n int) Atom {
	a, err := NewAtom(n)
	if err != nil {
		panic(err)
	}

	return a
}

// AtomOf returns a neutral atom of e. The element is not re-validated;
// use e.Valid() first when e comes from untrusted input.
func AtomOf(e Element) Atom {
	return Atom{element: e, electrons: int(e)}
}

// Element returns the atom's element.
func (a Atom) Element() Element { return a.element }

// Neutrons returns the neutron count.
func (a Atom) Neutrons() int { return a.neutrons }

// Electrons returns the electron count.
func (a Atom) Electrons() int { return a.electrons }

// Protons returns the proton count (the atomic number).
func (a Atom) Protons() int { return int(a.element) }

// MassNumber returns protons + neutrons.
func (a Atom) MassNumber() int { return int(a.element) + a.neutrons }

// Charge returns protons - electrons.
func (a Atom) Charge() int { return int(a.element) - a.electrons }

// OxidationState returns the declared oxidation state, if any.
func (a Atom) OxidationState() (state int, ok bool) {
	return a.oxidation, a.hasOxidation
}

// WithNeutrons returns a copy of a with n neutrons.
// Errors: ErrNegativeCount.
func (a Atom) WithNeutrons(n int) (Atom, error) {
	if n < 0 {
		return a, fmt.Errorf("WithNeutrons(%d): %w", n, ErrNegativeCount)
	}
	a.neutrons = n

	return a, nil
}

// WithElectrons returns a copy of a with n electrons.
// Errors: ErrNegativeCount.
func (a Atom) WithElectrons(n int) (Atom, error) {
	if n < 0 {
		return a, fmt.Errorf("WithElectrons(%d): %w", n, ErrNegativeCount)
	}
	a.electrons = n

	return a, nil
}

// WithCharge returns a copy of a ionized to the given net charge.
// Errors: ErrNegativeCount if the charge would remove more electrons than exist.
func (a Atom) WithCharge(charge int) (Atom, error) {
	return a.WithElectrons(int(a.element) - charge)
}

// WithOxidationState returns a copy of a carrying the given oxidation state.
func (a Atom) WithOxidationState(state int) Atom {
	a.oxidation, a.hasOxidation = state, true

	return a
}

// String renders the atom as its symbol, with mass number and charge when
// they differ from the defaults, e.g. "C", "13C", "Na+1".
func (a Atom) String() string {
	s := a.element.String()
	if a.neutrons != 0 {
		s = fmt.Sprintf("%d%s", a.MassNumber(), s)
	}
	if c := a.Charge(); c != 0 {
		s = fmt.Sprintf("%s%+d", s, c)
	}

	return s
}
