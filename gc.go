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

import "github.com/bits-and-blooms/bitset"

// GC runs a full mark-sweep pass (spec §4.9). Roots are the current
// root node, every entry on the active save-stack, every retained
// timeline frame's root, and the empty-node cache; everything else is
// freed and the hash index is rebuilt around the survivors. The mark
// set is a bitset sized to the arena rather than a field on node: the
// design notes call for the mark bit to be its own storage, not a reuse
// of another field, and a bitset keeps that storage out of node
// entirely instead of adding yet another always-mostly-false bool.
func (e *Engine) GC() {
	e.gcBusy = true
	defer func() { e.gcBusy = false }()

	marked := bitset.New(uint(len(e.arena.nodes)))

	var mark func(id nodeID)
	mark = func(id nodeID) {
		if id == invalidID || marked.Test(uint(id)) {
			return
		}
		marked.Set(uint(id))
		n := e.arena.get(id)
		if n.isInternal() {
			cnw, cne, csw, cse := n.children()
			mark(cnw)
			mark(cne)
			mark(csw)
			mark(cse)
			if n.result != invalidID {
				mark(n.result)
			}
		}
	}

	mark(e.root)
	for _, id := range e.ss.roots() {
		mark(id)
	}
	for _, f := range e.timeline {
		mark(f.root)
	}
	for _, id := range e.emptyCache {
		mark(id)
	}

	var live []nodeID
	e.arena.each(func(id nodeID, n *node) {
		if marked.Test(uint(id)) {
			live = append(live, id)
		} else {
			e.arena.free(id)
		}
	})
	e.idx.rebuild(live)
}

// maybeCollect triggers a GC pass once the arena crosses the soft node
// ceiling (spec §4.9); a 0 ceiling disables the check.
func (e *Engine) maybeCollect() {
	if e.maxNodes <= 0 || e.arena.alloced <= e.maxNodes {
		return
	}
	e.sink.Status("golly: node budget exceeded, collecting garbage")
	e.GC()
	if e.maxNodes > 0 && e.arena.alloced > e.maxNodes {
		e.sink.Warning("golly: node budget still exceeded after garbage collection")
	}
}

// PushTimelineFrame records the current root as a named point the
// pattern can later be rewound to, a supplemented feature
// (original_source/ keeps an undo/redo history; ambient here as a
// simple append-only timeline rather than full undo).
func (e *Engine) PushTimelineFrame() {
	e.timeline = append(e.timeline, timelineFrame{root: e.root, rootDepth: e.rootDepth, generation: e.generation})
}

// RewindTimeline restores the engine to its state as of the frame-th
// PushTimelineFrame call (0-indexed), discarding that frame and every
// later one.
func (e *Engine) RewindTimeline(frame int) bool {
	if frame < 0 || frame >= len(e.timeline) {
		return false
	}
	f := e.timeline[frame]
	e.root, e.rootDepth, e.generation = f.root, f.rootDepth, f.generation
	e.timeline = e.timeline[:frame]
	return true
}
