// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package golly implements a HashLife cellular-automaton engine: a
// canonicalised quadtree of cells with a memoised future-state
// recursion, in the style of go-verkle's canonicalised Merkle trie
// (VerkleNode / TreeConfig) but driving a CA rule table instead of a
// cryptographic commitment.
package golly

import "golang.org/x/sync/singleflight"

// Engine is the top-level façade, wiring the arena, hash index, compiled
// rule and supporting caches together the way go-verkle's TreeConfig /
// KZGConfig wires the lazy-singleton SRS into every tree operation
// (config.go, config_ipa.go).
type Engine struct {
	arena *arena
	idx   *hashIndex
	rule  *Rule

	sink   StatusSink
	poller Poller

	emptyCache []nodeID // emptyCache[depth] = canonical all-dead node at that depth

	root       nodeID
	rootDepth  int32
	generation Nat
	increment  Nat

	// ngens is the log2 of the step driver's current power-of-two jump
	// (spec §4.3), read by get_result's full/half/quarter decision in
	// result.go. Changed only through setNgens, in step.go.
	ngens int32

	ss *saveStack

	// maxNodes is the soft ceiling (spec §4.9's "approaching the
	// memory budget") past which Step triggers a GC pass before
	// continuing; 0 means unlimited.
	maxNodes int

	popEpoch uint32

	// gcBusy and popGroup implement spec §4.5's "queued population
	// request" state machine: a caller that asks for the population
	// while gcBusy is set (GC itself invokes no poller or status-sink
	// callback between setting and clearing it) gets told to retry
	// rather than racing the sweep; concurrent callers that pile up once
	// the GC finishes collapse onto a single recompute via singleflight
	// instead of each re-walking the tree.
	gcBusy   bool
	popGroup singleflight.Group

	timeline []timelineFrame
}

type timelineFrame struct {
	root       nodeID
	rootDepth  int32
	generation Nat
}

// EngineOption is a functional option that configures a new Engine;
// NewEngine applies each one in order before filling in defaults, and
// the Engine is afterwards mutated through its methods.
type EngineOption func(*Engine)

// WithStatusSink installs the hook status/warning/fatal messages are
// reported through (spec §6.2's "injected, not global" callback style).
func WithStatusSink(sink StatusSink) EngineOption {
	return func(e *Engine) { e.sink = sink }
}

// WithPoller installs the cooperative-interruption hook a long Step can
// consult between generations.
func WithPoller(p Poller) EngineOption {
	return func(e *Engine) { e.poller = p }
}

// WithMaxNodes sets the soft node-count ceiling that triggers automatic
// garbage collection (0 means unlimited, the default).
func WithMaxNodes(n int) EngineOption {
	return func(e *Engine) { e.maxNodes = n }
}

// NewEngine builds a fresh engine with the empty pattern "B3/S23"
// (Conway's Life) as its default rule, matching Golly's own default.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		arena: newArena(),
		ss:    newSaveStack(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sink == nil {
		e.sink = nopSink{}
	}
	if e.poller == nil {
		e.poller = neverInterrupt{}
	}
	e.idx = newHashIndex(e.arena, e.sink)

	rule, err := CompileRule("B3/S23")
	if err != nil {
		panic("golly: default rule failed to compile: " + err.Error())
	}
	e.rule = rule

	e.rootDepth = 3
	e.root = e.emptyNode(e.rootDepth)
	e.generation = NatFromUint64(0)
	e.increment = NatFromUint64(1)
	return e
}

// emptyNode returns the canonical all-dead node at depth (2 meaning a
// leaf, matching node.go's depth convention), building and
// caching it lazily.
func (e *Engine) emptyNode(depth int32) nodeID {
	for int32(len(e.emptyCache)) <= depth {
		e.emptyCache = append(e.emptyCache, invalidID)
	}
	if e.emptyCache[depth] != invalidID {
		return e.emptyCache[depth]
	}
	var id nodeID
	if depth <= 2 {
		id = e.findLeaf(0, 0, 0, 0)
	} else {
		child := e.emptyNode(depth - 1)
		id = e.findNode(depth, child, child, child, child)
	}
	e.emptyCache[depth] = id
	return id
}

// findLeaf canonicalises a leaf and, the first time it is created,
// drives the leaf engine to fill in its res1/res2/pop fields.
func (e *Engine) findLeaf(nw, ne, sw, se uint16) nodeID {
	id, created := e.idx.findLeaf(nw, ne, sw, se)
	if created {
		n := e.arena.get(id)
		n.res1, n.res2, n.pop = computeLeafResults(e.rule, nw, ne, sw, se)
	}
	return id
}

// findNode canonicalises an internal node at depth from its four
// children, all of which must already be canonical (spec §3.4).
func (e *Engine) findNode(depth int32, nw, ne, sw, se nodeID) nodeID {
	return e.idx.findInternal(depth, nw, ne, sw, se)
}

// SetRule compiles and installs a new rule string. Any cached get_result
// memoisation becomes invalid under the new rule (spec §4.6's
// invalidating mode), so every internal node's cached result is cleared
// and every leaf's res1/res2/pop is recomputed in place. The hash index
// and the tree's shape are left as they are.
func (e *Engine) SetRule(s string) error {
	rule, err := CompileRule(s)
	if err != nil {
		return err
	}
	e.rule = rule
	e.emptyCache = nil

	e.arena.each(func(_ nodeID, n *node) {
		if n.isInternal() {
			n.result = invalidID
		}
	})
	// Leaves keep their corners but their derived res1/res2/pop must be
	// recomputed under the new rule.
	e.arena.each(func(_ nodeID, n *node) {
		if !n.isInternal() {
			nw, ne, sw, se := n.leafWords()
			n.res1, n.res2, n.pop = computeLeafResults(e.rule, nw, ne, sw, se)
		}
	})
	return nil
}

// GetRule returns the canonical rule string (spec §8.3's round-trip
// scenario: set_rule("s23/b3") must read back as "B3/S23").
func (e *Engine) GetRule() string { return e.rule.Canonical }

// SetMaxMemory adjusts the soft node-count ceiling.
func (e *Engine) SetMaxMemory(nodes int) { e.maxNodes = nodes }

// Generation returns the current generation count.
func (e *Engine) Generation() Nat { return e.generation }

// SetGeneration overrides the generation counter, used by macrocell
// loading (a #G directive).
func (e *Engine) SetGeneration(n Nat) { e.generation = n }

// Stats reports point-in-time engine counters, a supplemented feature
// (original_source/ exposes similar counters via a status line) with no
// analogue in the distilled spec.
type Stats struct {
	Nodes      int
	Degraded   bool
	RootDepth  int32
	Generation Nat
}

func (e *Engine) GetStats() Stats {
	return Stats{
		Nodes:      e.arena.alloced,
		Degraded:   e.idx.degraded,
		RootDepth:  e.rootDepth,
		Generation: e.generation,
	}
}
