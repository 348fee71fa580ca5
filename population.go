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

// TryGetPopulation is the non-blocking form of GetPopulation (spec
// §6.1's "get_population() -> bigint // may return -1 during GC"): if a
// GC pass is in progress it returns ok == false immediately instead of
// racing the sweep; concurrent callers that arrive once the GC has
// finished are coalesced onto a single recompute rather than each
// re-walking the tree.
func (e *Engine) TryGetPopulation() (pop Nat, ok bool) {
	if e.gcBusy {
		return Nat{}, false
	}
	v, _, _ := e.popGroup.Do("pop", func() (interface{}, error) {
		return e.GetPopulation(), nil
	})
	return v.(Nat), true
}

// GetPopulation returns the pattern's total live-cell count as an
// arbitrary-precision integer (spec §4.8): a node's population is the
// sum of its four children's, memoised per node so a pattern with
// extensive structural sharing is summed once per distinct subtree
// rather than once per occurrence.
func (e *Engine) GetPopulation() Nat {
	e.popEpoch++
	return e.nodePopulation(e.root)
}

func (e *Engine) nodePopulation(id nodeID) Nat {
	n := e.arena.get(id)
	if !n.isInternal() {
		return NatFromUint64(uint64(n.pop))
	}
	if n.popEpoch == e.popEpoch && n.popMemo != nil {
		return *n.popMemo
	}
	cnw, cne, csw, cse := n.children()
	sum := e.nodePopulation(cnw)
	sum = sum.Add(e.nodePopulation(cne))
	sum = sum.Add(e.nodePopulation(csw))
	sum = sum.Add(e.nodePopulation(cse))

	n = e.arena.get(id)
	n.popMemo = &sum
	n.popEpoch = e.popEpoch
	return sum
}

// IsEmpty reports whether the pattern has no live cells, short-circuiting
// on the canonicalisation invariant: the all-dead node at any depth is a
// unique arena entry, so this is one comparison, not a population scan.
func (e *Engine) IsEmpty() bool {
	return e.root == e.emptyNode(e.rootDepth)
}
