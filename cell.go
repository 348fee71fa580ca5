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

// localSide returns the side length, in cells, of the square a node at
// depth covers (depth 2 is a leaf's own 8x8).
func localSide(depth int32) int64 { return int64(1) << uint(depth+1) }

// SetCell sets the cell at (x, y), relative to the centre of the
// universe, to state (0 or 1), growing the root as needed to bring the
// coordinate in bounds. Every call rebuilds the path through the hash
// index, so the tree stays canonical; there is no separate drawing mode
// that mutates leaves in place.
func (e *Engine) SetCell(x, y int64, state int) {
	half := localSide(e.rootDepth) / 2
	for x < -half || x >= half || y < -half || y >= half {
		e.pushRoot()
		half = localSide(e.rootDepth) / 2
	}
	e.root = e.setCellRec(e.root, e.rootDepth, x+half, y+half, state)
}

// setCellRec rebuilds the path from id down to the target cell, ending
// in fresh canonical nodes (the old path's nodes are left for the
// garbage collector if nothing else references them).
func (e *Engine) setCellRec(id nodeID, depth int32, x, y int64, state int) nodeID {
	if depth <= 2 {
		nw, ne, sw, se := e.arena.get(id).leafWords()
		w, lx, ly := &nw, x, y
		switch {
		case x >= 4 && y < 4:
			w, lx = &ne, x-4
		case x < 4 && y >= 4:
			w, ly = &sw, y-4
		case x >= 4 && y >= 4:
			w, lx, ly = &se, x-4, y-4
		}
		g := decode16(*w)
		g[ly][lx] = state
		*w = encode16(g)
		return e.findLeaf(nw, ne, sw, se)
	}

	half := localSide(depth) / 2
	cnw, cne, csw, cse := e.arena.get(id).children()
	target, nx, ny := &cnw, x, y
	switch {
	case x >= half && y < half:
		target, nx = &cne, x-half
	case x < half && y >= half:
		target, ny = &csw, y-half
	case x >= half && y >= half:
		target, nx, ny = &cse, x-half, y-half
	}
	*target = e.setCellRec(*target, depth-1, nx, ny, state)
	return e.findNode(depth, cnw, cne, csw, cse)
}

// GetCell reads the cell at (x, y); coordinates outside the current
// root are always dead.
func (e *Engine) GetCell(x, y int64) int {
	half := localSide(e.rootDepth) / 2
	if x < -half || x >= half || y < -half || y >= half {
		return 0
	}
	return e.getCellRec(e.root, e.rootDepth, x+half, y+half)
}

func (e *Engine) getCellRec(id nodeID, depth int32, x, y int64) int {
	if id == e.emptyNode(depth) {
		return 0
	}
	if depth <= 2 {
		nw, ne, sw, se := e.arena.get(id).leafWords()
		w, lx, ly := nw, x, y
		switch {
		case x >= 4 && y < 4:
			w, lx = ne, x-4
		case x < 4 && y >= 4:
			w, ly = sw, y-4
		case x >= 4 && y >= 4:
			w, lx, ly = se, x-4, y-4
		}
		g := decode16(w)
		return g[ly][lx]
	}
	half := localSide(depth) / 2
	cnw, cne, csw, cse := e.arena.get(id).children()
	child, nx, ny := cnw, x, y
	switch {
	case x >= half && y < half:
		child, nx = cne, x-half
	case x < half && y >= half:
		child, ny = csw, y-half
	case x >= half && y >= half:
		child, nx, ny = cse, x-half, y-half
	}
	return e.getCellRec(child, depth-1, nx, ny)
}

// NextCell enumerates live cells in a fixed, deterministic quadrant
// order (NW, NE, SW, SE, recursively; row-major within a leaf) rather
// than the strict raster order a flat grid would use: the traversal
// follows the tree's own shape so whole empty subtrees are skipped via
// the canonicalisation invariant (a subtree is empty iff it equals
// emptyNode at its depth), without materialising the pattern. It
// returns the first live cell strictly after (x, y) in that order.
func (e *Engine) NextCell(x, y int64) (nx, ny int64, ok bool) {
	half := localSide(e.rootDepth) / 2
	return e.nextCellRec(e.root, e.rootDepth, -half, -half, x, y, true)
}

// EndOfPattern reports whether a NextCell/FirstCell call reached the
// end of the pattern without finding a live cell.
func EndOfPattern(ok bool) bool { return !ok }

// FirstCell returns the first live cell in NextCell's traversal order.
func (e *Engine) FirstCell() (x, y int64, ok bool) {
	half := localSide(e.rootDepth) / 2
	return e.nextCellRec(e.root, e.rootDepth, -half, -half, 0, 0, false)
}

func (e *Engine) nextCellRec(id nodeID, depth int32, originX, originY, afterX, afterY int64, useAfter bool) (int64, int64, bool) {
	if id == e.emptyNode(depth) {
		return 0, 0, false
	}
	if depth <= 2 {
		nw, ne, sw, se := e.arena.get(id).leafWords()
		grid := assembleGrid8x8(nw, ne, sw, se)
		for ly := 0; ly < 8; ly++ {
			ay := originY + int64(ly)
			for lx := 0; lx < 8; lx++ {
				ax := originX + int64(lx)
				if useAfter && (ay < afterY || (ay == afterY && ax <= afterX)) {
					continue
				}
				if grid[ly][lx] != 0 {
					return ax, ay, true
				}
			}
		}
		return 0, 0, false
	}

	half := localSide(depth) / 2
	cnw, cne, csw, cse := e.arena.get(id).children()
	quadIDs := [4]nodeID{cnw, cne, csw, cse}
	quadOriginX := [4]int64{originX, originX + half, originX, originX + half}
	quadOriginY := [4]int64{originY, originY, originY + half, originY + half}

	which := -1
	side := localSide(depth)
	switch {
	case !useAfter:
		which = -1
	case afterX < originX || afterY < originY:
		which = -1
	case afterX >= originX+side || afterY >= originY+side:
		which = 4
	default:
		qx, qy := 0, 0
		if afterX >= originX+half {
			qx = 1
		}
		if afterY >= originY+half {
			qy = 1
		}
		which = qy*2 + qx
	}
	if which == 4 {
		return 0, 0, false
	}

	for i := 0; i < 4; i++ {
		if i < which {
			continue
		}
		childUseAfter := useAfter && i == which
		if x, y, ok := e.nextCellRec(quadIDs[i], depth-1, quadOriginX[i], quadOriginY[i], afterX, afterY, childUseAfter); ok {
			return x, y, true
		}
	}
	return 0, 0, false
}

// FindEdges returns the tight bounding box of every live cell, or
// ok==false if the pattern is empty.
func (e *Engine) FindEdges() (minX, minY, maxX, maxY int64, ok bool) {
	half := localSide(e.rootDepth) / 2
	return e.findEdgesRec(e.root, e.rootDepth, -half, -half)
}

func (e *Engine) findEdgesRec(id nodeID, depth int32, originX, originY int64) (minX, minY, maxX, maxY int64, ok bool) {
	if id == e.emptyNode(depth) {
		return 0, 0, 0, 0, false
	}
	if depth <= 2 {
		nw, ne, sw, se := e.arena.get(id).leafWords()
		grid := assembleGrid8x8(nw, ne, sw, se)
		for ly := 0; ly < 8; ly++ {
			for lx := 0; lx < 8; lx++ {
				if grid[ly][lx] == 0 {
					continue
				}
				ax, ay := originX+int64(lx), originY+int64(ly)
				if !ok {
					minX, minY, maxX, maxY, ok = ax, ay, ax, ay, true
					continue
				}
				if ax < minX {
					minX = ax
				}
				if ax > maxX {
					maxX = ax
				}
				if ay < minY {
					minY = ay
				}
				if ay > maxY {
					maxY = ay
				}
			}
		}
		return
	}

	half := localSide(depth) / 2
	cnw, cne, csw, cse := e.arena.get(id).children()
	quadIDs := [4]nodeID{cnw, cne, csw, cse}
	quadOriginX := [4]int64{originX, originX + half, originX, originX + half}
	quadOriginY := [4]int64{originY, originY, originY + half, originY + half}
	for i := 0; i < 4; i++ {
		qMinX, qMinY, qMaxX, qMaxY, qOK := e.findEdgesRec(quadIDs[i], depth-1, quadOriginX[i], quadOriginY[i])
		if !qOK {
			continue
		}
		if !ok {
			minX, minY, maxX, maxY, ok = qMinX, qMinY, qMaxX, qMaxY, true
			continue
		}
		if qMinX < minX {
			minX = qMinX
		}
		if qMaxX > maxX {
			maxX = qMaxX
		}
		if qMinY < minY {
			minY = qMinY
		}
		if qMaxY > maxY {
			maxY = qMaxY
		}
	}
	return
}
