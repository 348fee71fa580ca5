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

package golly

// nodeID is a stable index into an Engine's arena. The zero value,
// invalidID, is never a live node: it is the sentinel an internal
// node's result slot and a hash chain's end hold. (The macrocell
// format's 0 reference is separate: the reader resolves it to the
// canonical empty node, not to invalidID.)
//
// Per the design notes, nodes are addressed by arena index rather than
// by pointer: this makes the mark-sweep collector a bitmap sweep and
// makes the hash index store 32-bit keys instead of pointers. The
// macrocell writer numbers nodes in its own post-order, not in arena
// order.
type nodeID uint32

const invalidID nodeID = 0

// kind distinguishes a leaf from an internal node. Spec §3.6 notes that
// on-disk/in-memory a leaf is "bit-identical to a node except its nw
// slot is always zero"; here we use an explicit tag instead of that
// reuse, per the design notes' call for "three separate fields or a
// small discriminated union" in place of bit-twiddled reuse.
type kind uint8

const (
	kindLeaf kind = iota
	kindInternal
)

// node is one arena slot. Both leaves and internal nodes live in the
// same slice so the arena can be a single contiguous, GC-bitmap-swept
// allocation; kind says which interpretation of the four corner fields
// applies.
type node struct {
	kind kind

	// depth is only meaningful for internal nodes: the level of this
	// node, where depth 2 is a leaf's own notional level and depth d
	// covers a 2^(d+1)-square area. Leaves do not store a depth; it is
	// implicitly 2.
	depth int32

	// For an internal node, nw/ne/sw/se are child nodeIDs (depth-1).
	// For a leaf, they are the four 4x4 bit-corners, widened to 32
	// bits so both interpretations share storage and a single hash
	// formula (spec §4.4).
	nw, ne, sw, se uint32

	// result is the memoised centred child some generations forward
	// (internal nodes only); invalidID means "not yet computed".
	result nodeID

	// res1/res2 are the leaf engine's one- and two-generation inner
	// 4x4 results (leaves only), packed row-major MSB-first like the
	// corners themselves.
	res1, res2 uint16

	// pop is the 64-cell population of a leaf (leaves only). Internal
	// node population is never cached here; see population.go.
	pop uint16

	// chain links this entry to the next node in its hash bucket.
	chain nodeID

	// free marks a freed arena slot available for reuse.
	free bool

	// popMemo holds the population-recursion scratch value described
	// in spec §4.8; valid only when popEpoch matches the Engine's
	// current population-query epoch, which lets population.go
	// invalidate every memo at once (a counter bump) instead of
	// walking the arena to clear them between queries.
	popMemo  *Nat
	popEpoch uint32

	// serial is never set: the macrocell writer keeps its post-order
	// ordinals in a map of its own, so this field is always 0.
	serial uint32
}

func (n *node) isInternal() bool { return n.kind == kindInternal }

// leafWords returns the four 16-bit corners of a leaf node.
func (n *node) leafWords() (nw, ne, sw, se uint16) {
	return uint16(n.nw), uint16(n.ne), uint16(n.sw), uint16(n.se)
}

// children returns the four child ids of an internal node.
func (n *node) children() (nw, ne, sw, se nodeID) {
	return nodeID(n.nw), nodeID(n.ne), nodeID(n.sw), nodeID(n.se)
}

// hashKey implements spec §4.4's mixing formula, shared verbatim by
// leaves (applied to the four 16-bit words) and internal nodes
// (applied to the four child ids): hash = 65537*se + 257*sw + 17*ne + 5*nw.
func hashKey(nw, ne, sw, se uint32) uint64 {
	return 65537*uint64(se) + 257*uint64(sw) + 17*uint64(ne) + 5*uint64(nw)
}

func (n *node) hash() uint64 {
	return hashKey(n.nw, n.ne, n.sw, n.se)
}

// sameKey reports whether n has the given (kind, depth, corners) tuple,
// the equality test the hash index uses to decide "existing node" vs.
// "must insert a fresh one" (spec §3.4's canonicalisation invariant).
func (n *node) sameKey(k kind, depth int32, nw, ne, sw, se uint32) bool {
	// nw is compared first: per spec §4.4 it is the most discriminating
	// field across typical patterns, so chain walks reject a mismatch
	// as cheaply as possible before touching the rest of the tuple.
	return n.nw == nw && n.kind == k && n.depth == depth && n.ne == ne && n.sw == sw && n.se == se
}
