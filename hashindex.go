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

// loadFactor is the chain-length trigger from spec §4.4: once the
// table holds more entries than loadFactor*len(buckets), the bucket
// count doubles and every live node is rehashed in place.
const loadFactor = 0.7

// hashIndex canonicalises every leaf and internal node an Engine ever
// builds: find returns the unique existing entry for a (kind, depth,
// corners) tuple, or inserts a fresh one. It is the component that
// makes spec §3.4's canonicalisation invariant ("structural equality
// implies pointer/index equality") hold.
type hashIndex struct {
	a       *arena
	buckets []nodeID
	mask    uint64
	count   int

	// degraded is set when a resize could not be satisfied (spec
	// §4.10 OutOfMemoryDegraded): the load-factor limit is raised to
	// infinity and the table keeps working with longer chains.
	degraded bool

	sink StatusSink
}

func newHashIndex(a *arena, sink StatusSink) *hashIndex {
	if sink == nil {
		sink = nopSink{}
	}
	return &hashIndex{a: a, buckets: make([]nodeID, 256), mask: 255, sink: sink}
}

func (h *hashIndex) bucketFor(key uint64) uint64 { return key & h.mask }

// moveToFront relinks the chain so id becomes the bucket head, per
// spec §4.4's single biggest practical speed-up under skewed access.
func (h *hashIndex) moveToFront(idx uint64, prev, id nodeID) {
	if prev == invalidID {
		return // already at the head
	}
	cur := h.a.get(id)
	h.a.get(prev).chain = cur.chain
	cur.chain = h.buckets[idx]
	h.buckets[idx] = id
}

// findLeaf canonicalises a 4x4-cornered leaf. created reports whether a
// fresh slot was allocated, so callers that must fill in derived fields
// (the leaf engine's res1/res2/pop) know to do so exactly once.
func (h *hashIndex) findLeaf(nw, ne, sw, se uint16) (id nodeID, created bool) {
	key := hashKey(uint32(nw), uint32(ne), uint32(sw), uint32(se))
	idx := h.bucketFor(key)
	var prev nodeID
	for cur := h.buckets[idx]; cur != invalidID; {
		n := h.a.get(cur)
		if n.sameKey(kindLeaf, 0, uint32(nw), uint32(ne), uint32(sw), uint32(se)) {
			h.moveToFront(idx, prev, cur)
			return cur, false
		}
		prev, cur = cur, n.chain
	}

	id = h.a.alloc()
	n := h.a.get(id)
	n.kind = kindLeaf
	n.nw, n.ne, n.sw, n.se = uint32(nw), uint32(ne), uint32(sw), uint32(se)
	n.chain = h.buckets[idx]
	h.buckets[idx] = id
	h.count++
	h.maybeResize()
	return id, true
}

// findInternal canonicalises an internal node at depth from its four
// (already-canonical) children.
func (h *hashIndex) findInternal(depth int32, nw, ne, sw, se nodeID) nodeID {
	key := hashKey(uint32(nw), uint32(ne), uint32(sw), uint32(se))
	idx := h.bucketFor(key)
	var prev nodeID
	for cur := h.buckets[idx]; cur != invalidID; {
		n := h.a.get(cur)
		if n.sameKey(kindInternal, depth, uint32(nw), uint32(ne), uint32(sw), uint32(se)) {
			h.moveToFront(idx, prev, cur)
			return cur
		}
		prev, cur = cur, n.chain
	}

	id := h.a.alloc()
	n := h.a.get(id)
	n.kind = kindInternal
	n.depth = depth
	n.nw, n.ne, n.sw, n.se = uint32(nw), uint32(ne), uint32(sw), uint32(se)
	n.result = invalidID
	n.chain = h.buckets[idx]
	h.buckets[idx] = id
	h.count++
	h.maybeResize()
	return id
}

func (h *hashIndex) maybeResize() {
	if h.degraded {
		return
	}
	if float64(h.count) <= loadFactor*float64(len(h.buckets)) {
		return
	}
	h.resize(len(h.buckets) * 2)
}

// resize doubles the bucket count and rehashes every live node in
// place. A panic raised while building the new table is recovered: the
// table then degrades to ∞ load factor per spec §4.10 rather than
// aborting. Go's runtime out-of-memory failure is fatal and is not
// recovered here, and growth is not otherwise bounded.
func (h *hashIndex) resize(newSize int) {
	defer func() {
		if r := recover(); r != nil {
			h.degraded = true
			h.sink.Warning("hash index resize failed, degrading to unbounded chains")
		}
	}()

	newBuckets := make([]nodeID, newSize)
	newMask := uint64(newSize - 1)

	h.a.each(func(id nodeID, n *node) {
		key := n.hash()
		idx := key & newMask
		n.chain = newBuckets[idx]
		newBuckets[idx] = id
	})

	h.buckets = newBuckets
	h.mask = newMask
}

// rebuild re-initialises the buckets to empty and rehashes exactly the
// node ids given (in arbitrary order), used by gc.go's sweep phase
// after unmarked nodes have been freed, so that freed slots are never
// rehashed.
func (h *hashIndex) rebuild(live []nodeID) {
	h.buckets = make([]nodeID, len(h.buckets))
	for i := range h.buckets {
		h.buckets[i] = invalidID
	}
	h.count = 0
	for _, id := range live {
		n := h.a.get(id)
		idx := h.bucketFor(n.hash())
		n.chain = h.buckets[idx]
		h.buckets[idx] = id
		h.count++
	}
}
