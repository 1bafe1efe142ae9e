// Package matter defines the flat value types the compound graph is made of:
// Element (an atomic number), Atom (an element plus isotope and charge
// bookkeeping) and Particle (a substituent: a single Atom or an ordered
// Molecule of atoms).
//
// All types are immutable values. Constructors validate their input and
// return sentinel errors; "With" methods return modified copies.
//
// Errors:
//
//	ErrInvalidAtomicNumber - atomic number outside [1,118].
//	ErrUnknownSymbol       - ParseSymbol received an unknown element symbol.
//	ErrNegativeCount       - negative neutron or electron count.
//	ErrEmptyMolecule       - NewMolecule called with no atoms.
package matter
