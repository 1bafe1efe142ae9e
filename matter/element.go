// SPDX-License-Identifier: MIT
// Package: organo/matter
//
// element.go - Element value type and periodic-table lookups.
//
// Contract:
//   - An Element is valid iff its atomic number lies in [1,118].
//   - Symbol() on an invalid Element returns "" (rendering a bad element is a
//     caller defect; formula code validates before it gets here).

package matter

import (
	"fmt"
	"strconv"
)

// Atomic number bounds of the periodic table.
const (
	MinAtomicNumber = 1
	MaxAtomicNumber = 118
)

// Element is an immutable atomic-number value.
// The zero value is not a valid element.
type Element uint8

// Frequently used elements.
const (
	Hydrogen   Element = 1
	Boron      Element = 5
	Carbon     Element = 6
	Nitrogen   Element = 7
	Oxygen     Element = 8
	Fluorine   Element = 9
	Silicon    Element = 14
	Phosphorus Element = 15
	Sulfur     Element = 16
	Chlorine   Element = 17
	Bromine    Element = 35
	Iodine     Element = 53
)

// NewElement validates n and returns the corresponding Element.
// Complexity: O(1).
func NewElement(n int) (Element, error) {
	if n < MinAtomicNumber || n > MaxAtomicNumber {
		return 0, fmt.Errorf("NewElement(%d): %w", n, ErrInvalidAtomicNumber)
	}

	return Element(n), nil
}

// Number returns the atomic number.
func (e Element) Number() int { return int(e) }

// Valid reports whether e lies in [MinAtomicNumber, MaxAtomicNumber].
func (e Element) Valid() bool {
	return e >= MinAtomicNumber && e <= MaxAtomicNumber
}

// Symbol returns the chemical symbol ("C", "Cl", ...), or "" for an invalid element.
func (e Element) Symbol() string {
	if !e.Valid() {
		return ""
	}

	return symbols[e]
}

// String implements fmt.Stringer. Invalid elements render as "Element(n)".
func (e Element) String() string {
	if !e.Valid() {
		return "Element(" + strconv.Itoa(int(e)) + ")"
	}

	return symbols[e]
}

// Symbol returns the chemical symbol for atomic number n, or "" when n is out of range.
func Symbol(n int) string {
	if n < MinAtomicNumber || n > MaxAtomicNumber {
		return ""
	}

	return symbols[n]
}

// ParseSymbol maps a case-sensitive chemical symbol back to its Element.
// Complexity: O(1) average (map lookup).
func ParseSymbol(s string) (Element, error) {
	e, ok := bySymbol[s]
	if !ok {
		return 0, fmt.Errorf("ParseSymbol(%q): %w", s, ErrUnknownSymbol)
	}

	return e, nil
}

// DefaultValence returns the common covalent valence of e for the light
// main-group elements that organic skeletons are built from.
// ok is false for every other element.
func DefaultValence(e Element) (valence int, ok bool) {
	valence, ok = valences[e]

	return valence, ok
}

var valences = map[Element]int{
	Hydrogen:   1,
	Boron:      3,
	Carbon:     4,
	Nitrogen:   3,
	Oxygen:     2,
	Fluorine:   1,
	Silicon:    4,
	Phosphorus: 3,
	Sulfur:     2,
	Chlorine:   1,
	Bromine:    1,
	Iodine:     1,
}

// symbols is indexed by atomic number; index 0 is a placeholder.
var symbols = [MaxAtomicNumber + 1]string{
	"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, MaxAtomicNumber)
	for n := MinAtomicNumber; n <= MaxAtomicNumber; n++ {
		m[symbols[n]] = Element(n)
	}

	return m
}()
