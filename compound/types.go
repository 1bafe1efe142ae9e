// SPDX-License-Identifier: MIT
// Package: organo/compound
//
// types.go - Arena, Node, NodeID, ArenaOption and sentinel errors.
//
// Locking model:
//   - Arena.mu guards the nodes slice (append-only).
//   - Node.busy is the non-blocking mutation claim (CompareAndSwap only).
//   - Node.mu guards substituents and side chains for readers; writers hold it
//     only after claiming the node.

package compound

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/organo/matter"
)

// Sentinel errors for compound graph operations.
var (
	// ErrNilArena indicates a method was invoked on a nil *Arena.
	ErrNilArena = errors.New("compound: arena is nil")

	// ErrNodeNotFound indicates a NodeID the arena never issued.
	ErrNodeNotFound = errors.New("compound: node not found")

	// ErrForeignNode indicates two nodes from different arenas were combined.
	ErrForeignNode = errors.New("compound: node belongs to another arena")

	// ErrEmptyParticle indicates a zero-value matter.Particle.
	ErrEmptyParticle = errors.New("compound: empty particle")

	// ErrMutationConflict indicates the target node is already being mutated.
	ErrMutationConflict = errors.New("compound: node is under an overlapping mutation")

	// ErrInvalidSnapshot indicates Restore received an inconsistent Snapshot.
	ErrInvalidSnapshot = errors.New("compound: invalid snapshot")
)

// NodeID is the stable, arena-scoped identifier of a Node.
// IDs are issued densely from 0 in creation order and never reused.
type NodeID int

// Node is one Compound: a center atom, its substituents, and its side chains.
// Nodes are created by Arena.NewCompound and shared by pointer or by NodeID.
type Node struct {
	arena  *Arena
	id     NodeID
	center matter.Atom // immutable after creation

	busy atomic.Bool // mutation claim

	mu    sync.RWMutex
	subst []matter.Particle
	side  []NodeID // insertion order; set semantics enforced on write
}

// Arena owns a graph of Nodes.
type Arena struct {
	id  uuid.UUID
	log *slog.Logger

	mu    sync.RWMutex
	nodes []*Node
}

// ArenaOption configures an Arena before creation.
type ArenaOption func(*arenaConfig)

type arenaConfig struct {
	id       uuid.UUID
	logger   *slog.Logger
	capacity int
}

// WithLogger routes the arena's debug records (links, conflicts) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) ArenaOption {
	if l == nil {
		panic("compound: WithLogger(nil)")
	}
	return func(c *arenaConfig) { c.logger = l }
}

// WithCapacity pre-sizes the node slice. Panics on a negative value.
func WithCapacity(n int) ArenaOption {
	if n < 0 {
		panic("compound: WithCapacity(n<0)")
	}
	return func(c *arenaConfig) { c.capacity = n }
}

// WithID fixes the arena identity instead of drawing a random UUID.
// Panics on uuid.Nil.
func WithID(id uuid.UUID) ArenaOption {
	if id == uuid.Nil {
		panic("compound: WithID(uuid.Nil)")
	}
	return func(c *arenaConfig) { c.id = id }
}

// New creates an empty Arena. By default it gets a random UUID identity and
// logs nowhere.
// Complexity: O(len(opts)).
func New(opts ...ArenaOption) *Arena {
	cfg := arenaConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}

	a := &Arena{
		id:    cfg.id,
		nodes: make([]*Node, 0, cfg.capacity),
	}
	a.log = cfg.logger.With(slog.String("arena", a.id.String()))

	return a
}
