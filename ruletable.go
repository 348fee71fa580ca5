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

// neighbourOrder is the clockwise-from-north bit order this package
// uses for the 8 Moore neighbours whenever a single 8-bit neighbour
// pattern needs a canonical numbering: isotropic non-totalistic letter
// classes (this file) and the MAP bitmask convention (rule.go) both
// build on it. dr/dc are offsets into a 4x4 leaf window.
var neighbourOrder = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
} // N, NE, E, SE, S, SW, W, NW

// hexNeighbours and vnNeighbours are named subsets of neighbourOrder,
// per spec §1's "hexagonal (subset of Moore)" / "von Neumann (subset
// of Moore)" framing: hex drops the NW/SE diagonal pair, von Neumann
// keeps only the four orthogonal directions.
var (
	hexIndices = []int{0, 1, 2, 4, 5, 6}    // N,NE,E,S,SW,W
	vnIndices  = []int{0, 2, 4, 6}          // N,E,S,W
	allIndices = []int{0, 1, 2, 3, 4, 5, 6, 7}
)

func neighbourIndices(nb Neighbourhood) []int {
	switch nb {
	case Hex:
		return hexIndices
	case VonNeumann:
		return vnIndices
	default:
		return allIndices
	}
}

// isoClass is one symmetry-equivalence class of neighbour patterns at
// a fixed population count, used by isotropic non-totalistic rules.
type isoClass struct {
	rep     uint8 // canonical (lowest) 8-bit pattern in the class
	members []uint8
}

// isoClassesByCount partitions all 8-bit Moore neighbour patterns with
// popcount==count into orbits of the neighbourhood's rotation/reflection
// group (the dihedral group of order 16 acting on the 8-cycle given by
// neighbourOrder), sorted by representative. This is what assigns a
// stable ordinal to each isotropic letter.
func isoClassesByCount(count int) []isoClass {
	seen := make(map[uint8]bool)
	var classes []isoClass
	for pat := 0; pat < 256; pat++ {
		if bits.OnesCount8(uint8(pat)) != count || seen[uint8(pat)] {
			continue
		}
		orbit := symmetryOrbit(uint8(pat))
		rep := uint8(255)
		for _, m := range orbit {
			if m < rep {
				rep = m
			}
		}
		for _, m := range orbit {
			seen[m] = true
		}
		classes = append(classes, isoClass{rep: rep, members: orbit})
	}
	// Sort by representative for a stable, deterministic letter order.
	for i := 1; i < len(classes); i++ {
		for j := i; j > 0 && classes[j].rep < classes[j-1].rep; j-- {
			classes[j], classes[j-1] = classes[j-1], classes[j]
		}
	}
	return classes
}

// symmetryOrbit returns every 8-bit pattern reachable from pat by
// rotating and/or reflecting the 8-cycle of neighbourOrder.
func symmetryOrbit(pat uint8) []uint8 {
	seen := map[uint8]bool{}
	var out []uint8
	add := func(p uint8) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	cur := pat
	for r := 0; r < 8; r++ {
		add(cur)
		add(reflect8(cur))
		cur = rotate8(cur)
	}
	return out
}

func rotate8(p uint8) uint8 {
	// Rotate the 8-cycle by one position: bit i moves to bit i+1 mod 8.
	return (p << 1) | (p >> 7)
}

func reflect8(p uint8) uint8 {
	// Mirror the 8-cycle: bit i maps to bit (8-i) mod 8, i.e. reverse
	// the cycle direction while keeping N fixed.
	var out uint8
	for i := 0; i < 8; i++ {
		if p&(1<<uint(i)) != 0 {
			out |= 1 << uint((8-i)%8)
		}
	}
	return out
}

// isoClassIndex finds which class (by ordinal within isoClassesByCount)
// the neighbour pattern pat belongs to.
func isoClassIndex(count int, pat uint8) int {
	for i, c := range isoClassesByCount(count) {
		for _, m := range c.members {
			if m == pat {
				return i
			}
		}
	}
	return -1
}

// isoLetters is the pool non-totalistic letters are assigned from, in
// class order, matching the alphabet spec §4.1 describes as "per-count".
var isoLetters = []byte("ceaiknjqrytwzdfghlmopuvx")

func classLetter(idx int) byte {
	if idx < len(isoLetters) {
		return isoLetters[idx]
	}
	return '?'
}

func letterClassIndex(letter byte) int {
	for i, l := range isoLetters {
		if l == letter {
			return i
		}
	}
	return -1
}
