// Package compound provides the mutable, shareable graph of bonded atom
// groups that the rest of organo builds and queries.
//
// A Compound node (Node) has a center Atom, an ordered list of substituent
// Particles, and a set of side chains: reciprocal links to other nodes of
// the same Arena. Nodes live in an Arena and are addressed by stable NodeID
// values; side chains are stored as NodeID lists, so cyclic graphs need no
// shared ownership tricks.
//
// Invariants (enforced by every mutating method):
//
//   - A node never lists itself as a side chain.
//   - A node never lists the same neighbor twice.
//   - Side-chain links are reciprocal: once AddSideChain(a, b) returns nil,
//     b lists a and a lists b. Both halves are published together.
//   - The graph is append-only: nodes and links are never removed.
//
// Concurrency model:
//
//	Mutation of a node is exclusive and non-blocking. A mutating call first
//	claims the node; if it is already claimed (by a concurrent mutation or by
//	an explicit Arena.Claim), the call fails at once with ErrMutationConflict
//	and changes nothing. AddSideChain claims both endpoints before writing.
//	Readers (Substituents, SideChains, Neighbors, Snapshot) never claim and may
//	run concurrently with each other and with mutations; a reader observes a
//	single node either before or after a concurrent mutation of it.
//
// Errors:
//
//	ErrNilArena          - method called on a nil *Arena.
//	ErrNodeNotFound      - NodeID is not owned by the arena.
//	ErrForeignNode       - Node from another arena passed to a Node method.
//	ErrEmptyParticle     - zero-value Particle passed to AddSubstituent.
//	ErrMutationConflict  - node is already under an overlapping mutation.
//	ErrInvalidSnapshot   - Restore received an inconsistent Snapshot.
package compound
