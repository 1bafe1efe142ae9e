// Package organo models organic compounds as a mutable, shareable graph of
// bonded atom groups, and builds branched carbon skeletons declaratively.
//
// Under the hood, everything is organized under four subpackages:
//
//	matter/   - Element, Atom and Particle value types + periodic-table lookup
//	compound/ - Arena of Compound nodes, reciprocal side chains, mutation claims, snapshots
//	chain/    - Builder (Chain / ChainAt / Build), the Compounds tree, Flatten
//	formula/  - element tally over the side-chain graph, condensed formulas
//
// Quick example (3-methylhexane):
//
//	    C1─C2─C3─C4─C5─C6
//	           │
//	           C7
//
//	b := chain.NewBuilder(chain.WithImplicitHydrogens())
//	_ = b.Chain(6)
//	_ = b.ChainAt(3, 1)
//	tree, _ := b.Build()
//	f, _ := formula.Condensed(chain.Flatten(tree)[0]) // "C7H16"
//
// Connectivity and elemental composition only: no nomenclature, stereochemistry,
// bond orders or reactions.
//
//	go get github.com/katalvlaran/organo
package organo
