// Package formula tallies the elements reachable from a compound node and
// renders them as a condensed formula.
//
// FromCompound walks the side-chain graph breadth-first from a root node,
// visiting each node once (side chains are reciprocal, so the graph is
// always cyclic). Every center atom and every atom of every substituent
// particle is counted.
//
// Rendering order: carbon first if present, hydrogen second if present,
// then the remaining elements by ascending atomic number. Counts of 1 are
// omitted: CH4, C2H6O, CHCl3.
package formula
