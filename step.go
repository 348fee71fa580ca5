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

// SetIncrement sets the number of generations each call to Step
// advances the pattern by (spec §4.5). It is factored at Step time into
// 2^k * odd: each of the odd repetitions asks get_result for an exact
// 2^k-generation jump.
func (e *Engine) SetIncrement(n Nat) { e.increment = n }

func (e *Engine) Increment() Nat { return e.increment }

// pushRoot wraps the current root in one more ring of empty border,
// keeping the live pattern centred, and installs the new (depth+1) node
// as e.root.
func (e *Engine) pushRoot() {
	n := e.arena.get(e.root)
	if !n.isInternal() {
		nw, ne, sw, se := n.leafWords()
		newNW := e.findLeaf(0, 0, 0, nw)
		newNE := e.findLeaf(0, 0, ne, 0)
		newSW := e.findLeaf(0, sw, 0, 0)
		newSE := e.findLeaf(se, 0, 0, 0)
		e.root = e.findNode(3, newNW, newNE, newSW, newSE)
		e.rootDepth = 3
		return
	}
	cnw, cne, csw, cse := n.children()
	empty := e.emptyNode(e.rootDepth - 1)
	newNW := e.findNode(e.rootDepth, empty, empty, empty, cnw)
	newNE := e.findNode(e.rootDepth, empty, empty, cne, empty)
	newSW := e.findNode(e.rootDepth, empty, csw, empty, empty)
	newSE := e.findNode(e.rootDepth, cse, empty, empty, empty)
	e.root = e.findNode(e.rootDepth+1, newNW, newNE, newSW, newSE)
	e.rootDepth++
}

// padRootTo grows the root until it reaches at least the given depth.
func (e *Engine) padRootTo(depth int32) {
	for e.rootDepth < depth {
		e.pushRoot()
	}
}

// popZeros is pushRoot's inverse (spec §4.5): whenever the root's outer
// ring of grandchildren is entirely the canonical empty node, the root
// can shrink by one level without losing information. Never shrinks
// below depth 3, the smallest depth get_result operates on.
func (e *Engine) popZeros() {
	for e.rootDepth > 3 {
		n := e.arena.get(e.root)
		if !n.isInternal() {
			return
		}
		cnw, cne, csw, cse := n.children()
		nwA, nwB, nwC, nwD := e.arena.get(cnw).children()
		neA, neB, neC, neD := e.arena.get(cne).children()
		swA, swB, swC, swD := e.arena.get(csw).children()
		seA, seB, seC, seD := e.arena.get(cse).children()
		empty := e.emptyNode(e.rootDepth - 2)

		if nwA == empty && nwB == empty && nwC == empty &&
			neA == empty && neB == empty && neD == empty &&
			swA == empty && swC == empty && swD == empty &&
			seB == empty && seC == empty && seD == empty {
			e.root = e.findNode(e.rootDepth-1, nwD, neC, swB, seA)
			e.rootDepth--
			continue
		}
		return
	}
}

// setNgens installs a new get_result horizon exponent (spec §4.3): a
// memoised result computed under the previous ngens no longer means
// what its depth implies once the target jump changes, so every
// cached result is invalidated. original_source's new_ngens only
// clears results at or below the depth the change affects; this
// engine clears the whole cache instead, trading a cheap one-time
// extra recompute for not having to track that depth boundary (see
// DESIGN.md).
func (e *Engine) setNgens(k int32) {
	if k == e.ngens {
		return
	}
	e.ngens = k
	e.arena.each(func(_ nodeID, n *node) {
		if n.isInternal() {
			n.result = invalidID
		}
	})
}

// Step advances the pattern by the currently configured increment
// (spec §4.5's step driver): the increment is split into a power of two
// and an odd remainder; before each repetition the root is raised two
// levels (so the live pattern lies in its centre quarter, and get_result's
// centred answer loses nothing) and then padded to at least depth k+2,
// and get_result's full/half/quarter recursion (result.go) performs
// exactly a 2^k-generation step, repeated odd times. Step returns early,
// without completing the remaining repetitions, if the poller reports
// an interruption before a repetition.
func (e *Engine) Step() error {
	if e.increment.IsZero() {
		return nil
	}
	k := e.increment.LowestSetBit()
	odd := e.increment.Rsh(uint(k))
	if !odd.IsUint64() {
		return ErrIncrementTooLarge
	}
	reps := odd.Uint64()
	jump := NatFromUint64(1).Lsh(uint(k))
	e.setNgens(int32(k))

	for i := uint64(0); i < reps; i++ {
		if e.poller.Poll() {
			return nil
		}
		e.maybeCollect()
		mark := e.ss.mark()
		e.pushRoot()
		e.pushRoot()
		e.padRootTo(int32(k) + 2)
		e.root = e.ss.push(e.getResult(e.ss, e.root))
		e.rootDepth--
		e.generation = e.generation.Add(jump)
		e.popZeros()
		e.ss.release(mark)
	}
	return nil
}
