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

// getResult is HashLife's namesake recursion (spec §4.3): for an
// internal node at depth d (d>=3), it returns the depth-(d-1) node
// centred on n's middle, memoising the answer on n itself.
//
// Whether that answer is a full 2^(d-1)-generation jump or a smaller
// half/quarter jump is decided here by comparing e.ngens (the log2 of
// the step driver's current power-of-two increment, step.go's
// setNgens) against this node's child depth d-1: a full jump is only
// safe when the node's maximum horizon still fits inside what step.go
// ultimately wants, exactly mirroring original_source's
// `getres`/`ngens >= depth` check. Reaching the wrong branch here is
// what makes Step silently advance by the wrong number of generations,
// so every depth below the root recurses through this same decision,
// not just the top call.
func (e *Engine) getResult(ss *saveStack, id nodeID) nodeID {
	if cached := e.arena.get(id).result; cached != invalidID {
		return cached
	}
	depth := e.arena.get(id).depth
	childDepth := depth - 1
	full := e.ngens >= childDepth

	mark := ss.mark()
	var result nodeID
	switch {
	case depth == 3 && full:
		result = e.resultDepth3Full(ss, id)
	case depth == 3 && e.ngens == 0:
		result = e.resultDepth3Quarter(ss, id)
	case depth == 3:
		result = e.resultDepth3Half(ss, id)
	case full:
		result = e.resultGeneralFull(ss, id, depth)
	default:
		result = e.resultGeneralHalf(ss, id, depth)
	}
	ss.release(mark)
	e.arena.get(id).result = result
	return result
}

// buildLeafT builds the nine overlapping leaves spanning a depth-3
// node's 16x16 area (spec §4.3): the four corner leaves are the node's
// own children, reused as-is; the other five straddle the boundary
// between adjacent children and are assembled fresh from the sixteen
// 4x4 corner words. Every one of these nine leaves already carries its
// own res1/res2 (computed at creation, leaf.go's computeLeafResults),
// which is what the depth-3 full/half/quarter variants below consume.
func (e *Engine) buildLeafT(ss *saveStack, id nodeID) [3][3]nodeID {
	cnw, cne, csw, cse := e.arena.get(id).children()

	_, nwNE, nwSW, nwSE := e.arena.get(cnw).leafWords()
	neNW, _, neSW, neSE := e.arena.get(cne).leafWords()
	swNW, swNE, _, swSE := e.arena.get(csw).leafWords()
	seNW, seNE, seSW, _ := e.arena.get(cse).leafWords()

	var t [3][3]nodeID
	t[0][0] = cnw
	t[0][1] = ss.push(e.findLeaf(nwNE, neNW, nwSE, neSW))
	t[0][2] = cne
	t[1][0] = ss.push(e.findLeaf(nwSW, nwSE, swNW, swNE))
	t[1][1] = ss.push(e.findLeaf(nwSE, neSW, swNE, seNW))
	t[1][2] = ss.push(e.findLeaf(neSW, neSE, seNW, seNE))
	t[2][0] = csw
	t[2][1] = ss.push(e.findLeaf(swNE, seNW, swSE, seSW))
	t[2][2] = cse
	return t
}

// resultDepth3Full ports original_source's dorecurs_leaf: each of the
// nine overlapping leaves contributes its res2 (two generations
// forward), those are combined into four new leaves and res2'd again,
// giving four generations forward in total: 2^(d-1) at d=3, the same
// full-jump horizon resultGeneralFull delivers at every greater depth.
func (e *Engine) resultDepth3Full(ss *saveStack, id nodeID) nodeID {
	t := e.buildLeafT(ss, id)
	res2 := func(leafID nodeID) uint16 { return e.arena.get(leafID).res2 }

	t00, t01, t02 := res2(t[0][0]), res2(t[0][1]), res2(t[0][2])
	t10, t11, t12 := res2(t[1][0]), res2(t[1][1]), res2(t[1][2])
	t20, t21, t22 := res2(t[2][0]), res2(t[2][1]), res2(t[2][2])

	nw := e.arena.get(ss.push(e.findLeaf(t00, t01, t10, t11))).res2
	ne := e.arena.get(ss.push(e.findLeaf(t01, t02, t11, t12))).res2
	sw := e.arena.get(ss.push(e.findLeaf(t10, t11, t20, t21))).res2
	se := e.arena.get(ss.push(e.findLeaf(t11, t12, t21, t22))).res2

	return ss.push(e.findLeaf(nw, ne, sw, se))
}

// resultDepth3Half ports dorecurs_leaf_half: the same nine res2 values
// as resultDepth3Full, but the final 3x3->2x2 contraction is a spatial
// combine4 pick rather than a further res2 step, so only the two
// generations already embedded in res2 are delivered.
func (e *Engine) resultDepth3Half(ss *saveStack, id nodeID) nodeID {
	t := e.buildLeafT(ss, id)
	res2 := func(leafID nodeID) uint16 { return e.arena.get(leafID).res2 }

	t00, t01, t02 := res2(t[0][0]), res2(t[0][1]), res2(t[0][2])
	t10, t11, t12 := res2(t[1][0]), res2(t[1][1]), res2(t[1][2])
	t20, t21, t22 := res2(t[2][0]), res2(t[2][1]), res2(t[2][2])

	return ss.push(e.findLeaf(
		combine4(t00, t01, t10, t11),
		combine4(t01, t02, t11, t12),
		combine4(t10, t11, t20, t21),
		combine4(t11, t12, t21, t22),
	))
}

// resultDepth3Quarter ports dorecurs_leaf_quarter, the k==0 case: same
// shape as resultDepth3Half but built from res1 (one generation
// forward) instead of res2, finally giving res1 a consumer.
func (e *Engine) resultDepth3Quarter(ss *saveStack, id nodeID) nodeID {
	t := e.buildLeafT(ss, id)
	res1 := func(leafID nodeID) uint16 { return e.arena.get(leafID).res1 }

	t00, t01, t02 := res1(t[0][0]), res1(t[0][1]), res1(t[0][2])
	t10, t11, t12 := res1(t[1][0]), res1(t[1][1]), res1(t[1][2])
	t20, t21, t22 := res1(t[2][0]), res1(t[2][1]), res1(t[2][2])

	return ss.push(e.findLeaf(
		combine4(t00, t01, t10, t11),
		combine4(t01, t02, t11, t12),
		combine4(t10, t11, t20, t21),
		combine4(t11, t12, t21, t22),
	))
}

// buildIntermediates constructs the nine depth-(depth-1) nodes shared
// by resultGeneralFull and resultGeneralHalf (spec §4.3's Gosper-style
// 3x3 contraction): the four grandchild quadrants of n's own children,
// plus the five nodes straddling their shared edges and centre.
func (e *Engine) buildIntermediates(ss *saveStack, id nodeID, depth int32) [3][3]nodeID {
	cnw, cne, csw, cse := e.arena.get(id).children()

	nwA, nwB, nwC, nwD := e.arena.get(cnw).children()
	neA, neB, neC, neD := e.arena.get(cne).children()
	swA, swB, swC, swD := e.arena.get(csw).children()
	seA, seB, seC, seD := e.arena.get(cse).children()

	grid := [4][4]nodeID{
		{nwA, nwB, neA, neB},
		{nwC, nwD, neC, neD},
		{swA, swB, seA, seB},
		{swC, swD, seC, seD},
	}

	var inter [3][3]nodeID
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n := e.findNode(depth-1, grid[i][j], grid[i][j+1], grid[i+1][j], grid[i+1][j+1])
			ss.push(n)
			inter[i][j] = n
		}
	}
	return inter
}

// resultGeneralFull implements the classic two-round quadtree
// contraction (Gosper's algorithm): nine depth-(d-1) nodes are built
// from n's sixteen grandchildren, each advanced one sub-step by
// recursion; four more depth-(d-1) nodes are built from those nine
// results and advanced a second sub-step, and the final four results
// combine into the answer.
func (e *Engine) resultGeneralFull(ss *saveStack, id nodeID, depth int32) nodeID {
	inter := e.buildIntermediates(ss, id, depth)

	var r [3][3]nodeID
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = ss.push(e.getResult(ss, inter[i][j]))
		}
	}

	m00 := ss.push(e.findNode(depth-1, r[0][0], r[0][1], r[1][0], r[1][1]))
	m01 := ss.push(e.findNode(depth-1, r[0][1], r[0][2], r[1][1], r[1][2]))
	m10 := ss.push(e.findNode(depth-1, r[1][0], r[1][1], r[2][0], r[2][1]))
	m11 := ss.push(e.findNode(depth-1, r[1][1], r[1][2], r[2][1], r[2][2]))

	s00 := ss.push(e.getResult(ss, m00))
	s01 := ss.push(e.getResult(ss, m01))
	s10 := ss.push(e.getResult(ss, m10))
	s11 := ss.push(e.getResult(ss, m11))

	return ss.push(e.findNode(depth-1, s00, s01, s10, s11))
}

// resultGeneralHalf ports dorecurs_half: the same nine getResult calls
// as resultGeneralFull, but the final 3x3->2x2 contraction is a
// spatial-only pick (combine4's node-tree analogue) instead of a
// second getResult round, so it delivers exactly what its nine
// sub-results already carry instead of doubling it again. r's depth is
// depth-2; at depth-2==2 those are leaves (pick corner words), deeper
// than that they are internal nodes (pick grandchild quadrants).
func (e *Engine) resultGeneralHalf(ss *saveStack, id nodeID, depth int32) nodeID {
	inter := e.buildIntermediates(ss, id, depth)

	var r [3][3]nodeID
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = ss.push(e.getResult(ss, inter[i][j]))
		}
	}

	pick := func(a, b, c, d nodeID) nodeID {
		if depth > 4 {
			_, _, _, aSE := e.arena.get(a).children()
			_, _, bSW, _ := e.arena.get(b).children()
			_, cNE, _, _ := e.arena.get(c).children()
			dNW, _, _, _ := e.arena.get(d).children()
			return ss.push(e.findNode(depth-2, aSE, bSW, cNE, dNW))
		}
		_, _, _, aSE := e.arena.get(a).leafWords()
		_, _, bSW, _ := e.arena.get(b).leafWords()
		_, cNE, _, _ := e.arena.get(c).leafWords()
		dNW, _, _, _ := e.arena.get(d).leafWords()
		return ss.push(e.findLeaf(aSE, bSW, cNE, dNW))
	}

	p00 := pick(r[0][0], r[0][1], r[1][0], r[1][1])
	p01 := pick(r[0][1], r[0][2], r[1][1], r[1][2])
	p10 := pick(r[1][0], r[1][1], r[2][0], r[2][1])
	p11 := pick(r[1][1], r[1][2], r[2][1], r[2][2])

	return ss.push(e.findNode(depth-1, p00, p01, p10, p11))
}
