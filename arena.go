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

// arena is the single growable slab backing every node and leaf owned
// by an Engine. Slot 0 is never allocated: it stands for invalidID.
type arena struct {
	nodes    []node
	freeList []nodeID
	alloced  int // live node count, for the memory-budget check in gc.go
}

func newArena() *arena {
	a := &arena{nodes: make([]node, 1)} // slot 0 reserved
	return a
}

func (a *arena) get(id nodeID) *node {
	return &a.nodes[id]
}

// alloc returns a fresh, zeroed slot, reusing a freed one if available.
func (a *arena) alloc() nodeID {
	if n := len(a.freeList); n > 0 {
		id := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.nodes[id] = node{}
		a.alloced++
		return id
	}
	a.nodes = append(a.nodes, node{})
	a.alloced++
	return nodeID(len(a.nodes) - 1)
}

// free returns a slot to the free list. Called only by the sweep phase
// of the garbage collector.
func (a *arena) free(id nodeID) {
	a.nodes[id] = node{free: true}
	a.freeList = append(a.freeList, id)
	a.alloced--
}

// each calls f for every live (non-free, non-zero) slot.
func (a *arena) each(f func(id nodeID, n *node)) {
	for i := 1; i < len(a.nodes); i++ {
		if a.nodes[i].free {
			continue
		}
		f(nodeID(i), &a.nodes[i])
	}
}
