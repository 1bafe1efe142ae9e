// Package chain provides a declarative builder for branched skeletons.
//
// A Builder is a single-use session. Chain(n) lays down the parent chain
// (the first call fixes its length; later calls extend it from its tail),
// ChainAt(locant, n) hangs an n-atom branch off a 1-based locant of the
// parent chain, and Build materializes every reserved index as a
// compound.Node, links the nodes with reciprocal side chains and returns
// the skeleton as a Compounds tree:
//
//	b := chain.NewBuilder()
//	_ = b.Chain(6)      // hexane backbone, indices 0..5
//	_ = b.ChainAt(3, 1) // methyl at C3, index 6
//	tree, _ := b.Build()
//	// tree: [#0 #1 #2 [#6] #3 #4 #5]
//
// Flatten and All linearize a Compounds tree depth-first, pre-order.
//
// Errors:
//
//	ErrInvalidLength           - Chain/ChainAt length n < 1.
//	ErrUnconfiguredParentChain - ChainAt or Build before any Chain call.
//	ErrInvalidLocant           - locant outside [1, ChainLen()] or not realized.
//	ErrBuilderConsumed         - session used after a successful Build.
//
// A failed Chain/ChainAt leaves the session exactly as it was.
package chain
