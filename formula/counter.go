// SPDX-License-Identifier: MIT
// Package: organo/formula
//
// counter.go - Counter (element tally) and its formula rendering.

package formula

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/organo/matter"
)

// ErrNilCompound is returned when FromCompound receives a nil root.
var ErrNilCompound = errors.New("formula: compound is nil")

// Option configures rendering.
type Option func(*Counter)

// WithSymbolFn replaces the periodic-table lookup used by String.
// Panics on nil.
func WithSymbolFn(fn func(matter.Element) string) Option {
	if fn == nil {
		panic("formula: WithSymbolFn(nil)")
	}
	return func(c *Counter) { c.symbol = fn }
}

// Counter is an element -> occurrence tally.
type Counter struct {
	atoms  map[matter.Element]int
	symbol func(matter.Element) string
}

// NewCounter returns an empty tally.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{
		atoms:  make(map[matter.Element]int),
		symbol: matter.Element.Symbol,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add counts one atom.
func (c *Counter) Add(a matter.Atom) { c.atoms[a.Element()]++ }

// AddParticle counts every atom of p.
func (c *Counter) AddParticle(p matter.Particle) {
	for _, a := range p.Atoms() {
		c.Add(a)
	}
}

// Merge adds every count of o into c.
func (c *Counter) Merge(o *Counter) {
	for el, n := range o.atoms {
		c.atoms[el] += n
	}
}

// Count returns the tally for el.
func (c *Counter) Count(el matter.Element) int { return c.atoms[el] }

// Total returns the number of atoms counted.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.atoms {
		total += n
	}

	return total
}

// Tally returns a copy keyed by atomic number.
func (c *Counter) Tally() map[int]int {
	out := make(map[int]int, len(c.atoms))
	for el, n := range c.atoms {
		out[el.Number()] = n
	}

	return out
}

// Elements returns the counted elements in rendering order.
func (c *Counter) Elements() []matter.Element {
	els := slices.Collect(maps.Keys(c.atoms))
	slices.SortFunc(els, func(x, y matter.Element) int {
		return rank(x) - rank(y)
	})

	return els
}

// rank puts C first, H second, everything else after by atomic number.
func rank(el matter.Element) int {
	switch el {
	case matter.Carbon:
		return 0
	case matter.Hydrogen:
		return 1
	default:
		return 1 + el.Number()
	}
}

// String renders the condensed formula, e.g. "C6H14". An empty tally renders "".
func (c *Counter) String() string {
	var sb strings.Builder
	for _, el := range c.Elements() {
		sb.WriteString(c.symbol(el))
		if n := c.atoms[el]; n != 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}

	return sb.String()
}
