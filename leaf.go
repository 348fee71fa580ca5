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

import "math/bits"

// assembleGrid8x8 lays a leaf's four 4x4 corners out as one 8x8 grid,
// NW/NE/SW/SE, per spec §3.1's "4x4 bit-corners covering an 8x8 area".
func assembleGrid8x8(nw, ne, sw, se uint16) [][]int {
	nwg, neg, swg, seg := decode16(nw), decode16(ne), decode16(sw), decode16(se)
	g := make([][]int, 8)
	for r := 0; r < 8; r++ {
		g[r] = make([]int, 8)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g[r][c] = nwg[r][c]
			g[r][c+4] = neg[r][c]
			g[r+4][c] = swg[r][c]
			g[r+4][c+4] = seg[r][c]
		}
	}
	return g
}

// windowApply advances every inner cell of g by one generation, using
// C2's compiled table over the nine (or, for a 6x6 input, four)
// overlapping 4x4 windows described by spec §4.2, rather than calling
// evalCell directly: this is the literal "leaf engine uses the rule
// compiler's table" contract, and not just an equivalent direct
// simulation.
func windowApply(rule *Rule, g [][]int) [][]int {
	size := len(g)
	out := make([][]int, size-2)
	for i := range out {
		out[i] = make([]int, size-2)
	}
	for ro := 0; ro+4 <= size; ro += 2 {
		for co := 0; co+4 <= size; co += 2 {
			var win [4][4]int
			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					win[r][c] = g[ro+r][co+c]
				}
			}
			o := decode4(rule.Table[encode16(win)])
			out[ro][co] = o[0][0]
			out[ro][co+1] = o[0][1]
			out[ro+1][co] = o[1][0]
			out[ro+1][co+1] = o[1][1]
		}
	}
	return out
}

func cropCenter(g [][]int, out int) [][]int {
	margin := (len(g) - out) / 2
	c := make([][]int, out)
	for r := 0; r < out; r++ {
		c[r] = make([]int, out)
		copy(c[r], g[r+margin][margin:margin+out])
	}
	return c
}

func gridToWord(g [][]int) uint16 {
	var w [4][4]int
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			w[r][c] = g[r][c]
		}
	}
	return encode16(w)
}

// combine4 builds one 4x4 word from the innermost 2x2 quadrant of each
// of its four inputs: nw's SE quadrant, ne's SW quadrant, sw's NE
// quadrant, se's NW quadrant become the new word's NW/NE/SW/SE
// quadrants. This is the spatial-only contraction result.go's half and
// quarter jumps use in place of a further temporal step (spec §4.3),
// the grid-based equivalent of original_source's combine4 bit macro.
func combine4(nw, ne, sw, se uint16) uint16 {
	nwg, neg, swg, seg := decode16(nw), decode16(ne), decode16(sw), decode16(se)
	var out [4][4]int
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = nwg[r+2][c+2]
			out[r][c+2] = neg[r+2][c]
			out[r+2][c] = swg[r][c+2]
			out[r+2][c+2] = seg[r][c]
		}
	}
	return encode16(out)
}

// computeLeafResults fills in res1 (one generation forward, centred
// 4x4), res2 (two generations forward, centred 4x4) and pop (total
// population across all 64 cells) for a leaf with the given corners,
// per spec §3.2's leaf fields and §4.2's combine9/combine4 contract.
func computeLeafResults(rule *Rule, nw, ne, sw, se uint16) (res1, res2, pop uint16) {
	g8 := assembleGrid8x8(nw, ne, sw, se)
	gen1 := windowApply(rule, g8) // 6x6, one generation forward
	res1 = gridToWord(cropCenter(gen1, 4))
	gen2 := windowApply(rule, gen1) // 4x4, two generations forward
	res2 = gridToWord(gen2)

	pop = uint16(bits.OnesCount16(nw) + bits.OnesCount16(ne) + bits.OnesCount16(sw) + bits.OnesCount16(se))
	return
}
