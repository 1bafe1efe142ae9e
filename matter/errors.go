// SPDX-License-Identifier: MIT
// Package: organo/matter
//
// errors.go - sentinel errors for the matter package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, never by re-declaring messages.

package matter

import "errors"

var (
	// ErrInvalidAtomicNumber indicates an atomic number outside [MinAtomicNumber, MaxAtomicNumber].
	ErrInvalidAtomicNumber = errors.New("matter: invalid atomic number")

	// ErrUnknownSymbol indicates ParseSymbol was given a string that names no element.
	ErrUnknownSymbol = errors.New("matter: unknown element symbol")

	// ErrNegativeCount indicates a negative neutron or electron count.
	ErrNegativeCount = errors.New("matter: negative particle count")

	// ErrEmptyMolecule indicates a Molecule particle with zero atoms.
	ErrEmptyMolecule = errors.New("matter: molecule has no atoms")
)
