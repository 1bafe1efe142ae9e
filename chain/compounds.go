// SPDX-License-Identifier: MIT
// Package: organo/chain
//
// compounds.go - the Leaf/Chain result tree returned by Build.

package chain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/organo/compound"
)

// Kind tags the Compounds variant.
type Kind uint8

const (
	// KindLeaf wraps a single node.
	KindLeaf Kind = iota + 1
	// KindChain holds an ordered list of nested Compounds.
	KindChain
)

// Compounds is an immutable tree over compound nodes: either a Leaf holding
// one node or a Chain holding ordered children. It records build shape only;
// side-chain edges live in the nodes themselves.
type Compounds struct {
	kind  Kind
	node  *compound.Node
	items []Compounds
}

// Leaf wraps n.
func Leaf(n *compound.Node) Compounds {
	return Compounds{kind: KindLeaf, node: n}
}

// Chain wraps a copy of items, in order.
func Chain(items ...Compounds) Compounds {
	return Compounds{kind: KindChain, items: slices.Clone(items)}
}

// Kind returns the variant tag; 0 for the zero value.
func (c Compounds) Kind() Kind { return c.kind }

// IsLeaf reports whether c is a Leaf.
func (c Compounds) IsLeaf() bool { return c.kind == KindLeaf }

// Node returns the wrapped node of a Leaf, nil for a Chain.
func (c Compounds) Node() *compound.Node { return c.node }

// Items returns a copy of a Chain's children, nil for a Leaf.
func (c Compounds) Items() []Compounds { return slices.Clone(c.items) }

// Len returns the number of direct children of a Chain (1 for a Leaf).
func (c Compounds) Len() int {
	if c.kind == KindLeaf {
		return 1
	}

	return len(c.items)
}

// String renders node IDs with nesting, e.g. "[#0 #1 #2 [#6] #3]".
func (c Compounds) String() string {
	var sb strings.Builder
	c.write(&sb)

	return sb.String()
}

func (c Compounds) write(sb *strings.Builder) {
	switch c.kind {
	case KindLeaf:
		sb.WriteByte('#')
		if c.node == nil {
			sb.WriteString("nil")
			return
		}
		sb.WriteString(strconv.Itoa(int(c.node.ID())))
	case KindChain:
		sb.WriteByte('[')
		for i, it := range c.items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			it.write(sb)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<empty>")
	}
}
