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

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Neighbourhood selects which of a cell's potential 8 Moore neighbours
// actually participate in its rule, per spec §1's "square, hexagonal
// (subset of Moore), or von Neumann (subset of Moore)".
type Neighbourhood int

const (
	Moore Neighbourhood = iota
	Hex
	VonNeumann
)

func (nb Neighbourhood) degree() int {
	switch nb {
	case Hex:
		return 6
	case VonNeumann:
		return 4
	default:
		return 8
	}
}

func (nb Neighbourhood) suffix() string {
	switch nb {
	case Hex:
		return "H"
	case VonNeumann:
		return "V"
	default:
		return ""
	}
}

// countSpec describes which neighbour configurations at a fixed
// population count trigger a birth or a survival. totalistic means
// "every configuration at this count", matching a plain digit with no
// letters; otherwise classes names the (symmetry-equivalence-class)
// indices from isoClassesByCount that are included.
type countSpec struct {
	configured bool
	totalistic bool
	classes    map[int]bool
}

// Rule is the compiled, canonicalised form of a rule string: the
// 65536-entry lookup table C3's leaf engine drives, plus enough of the
// parsed structure to regenerate a canonical string (spec §4.1).
type Rule struct {
	Canonical     string
	Neighbourhood Neighbourhood
	Bounds        string // raw ":..." suffix, stored but not enforced (see DESIGN.md)
	Flipped       bool   // B0-with-Smax transform was applied

	Table [65536]uint8 // low 4 bits of each entry are the inner 2x2 result

	birth, survive [9]countSpec
}

// CompileRule parses and compiles a rule string (spec §6.3's grammar).
func CompileRule(s string) (*Rule, error) {
	orig := s
	s = strings.TrimSpace(s)

	bounds := ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		bounds = s[i:]
		s = s[:i]
	}

	if strings.EqualFold(s, "Life") {
		s = "B3/S23"
	}

	if len(s) >= 3 && strings.EqualFold(s[:3], "MAP") {
		return compileMapRule(s[3:], bounds)
	}

	nb := Moore
	if n := len(s); n > 0 {
		switch s[n-1] {
		case 'H', 'h':
			nb = Hex
			s = s[:n-1]
		case 'V', 'v':
			nb = VonNeumann
			s = s[:n-1]
		}
	}

	parts := strings.Split(s, "/")
	var bSpec, sSpec string
	var sawB, sawS bool
	for _, p := range parts {
		if p == "" {
			continue
		}
		switch p[0] {
		case 'B', 'b':
			bSpec, sawB = p[1:], true
		case 'S', 's':
			sSpec, sawS = p[1:], true
		default:
			return nil, fmt.Errorf("%w: %q", ErrRuleSyntax, orig)
		}
	}
	if !sawB || !sawS {
		return nil, fmt.Errorf("%w: rule needs both a B and an S part: %q", ErrRuleSyntax, orig)
	}

	r := &Rule{Neighbourhood: nb, Bounds: bounds}
	if err := r.parseCounts(bSpec, &r.birth); err != nil {
		return nil, err
	}
	if err := r.parseCounts(sSpec, &r.survive); err != nil {
		return nil, err
	}

	r.buildTable()
	if err := r.applyB0Smax(); err != nil {
		return nil, err
	}
	r.Canonical = r.canonicalString()
	return r, nil
}

// parseCounts reads a sequence of "<digit><letters?>" tokens such as
// "3" or "23" or "2-a3" into dst, one countSpec per population count.
func (r *Rule) parseCounts(spec string, dst *[9]countSpec) error {
	i := 0
	maxCount := r.Neighbourhood.degree()
	for i < len(spec) {
		c := spec[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: unexpected %q", ErrRuleSyntax, string(c))
		}
		count := int(c - '0')
		i++
		if count > maxCount {
			return fmt.Errorf("%w: count %d exceeds neighbourhood degree %d", ErrRuleDigitRange, count, maxCount)
		}
		negate := false
		var letters []byte
		for i < len(spec) && spec[i] != ',' && (spec[i] < '0' || spec[i] > '9') {
			if spec[i] == '-' {
				negate = true
			} else {
				letters = append(letters, spec[i])
			}
			i++
		}
		if i < len(spec) && spec[i] == ',' {
			i++
		}

		if dst[count].configured {
			return fmt.Errorf("%w: count %d repeated", ErrRuleSyntax, count)
		}

		cs := countSpec{configured: true}
		if len(letters) == 0 {
			cs.totalistic = true
		} else {
			if r.Neighbourhood != Moore {
				return fmt.Errorf("%w: count %d", ErrRuleNeedsMoore, count)
			}
			classes := isoClassesByCount(count)
			included := map[int]bool{}
			for _, l := range letters {
				idx := letterClassIndex(l)
				if idx < 0 || idx >= len(classes) {
					return fmt.Errorf("%w: unknown letter %q at count %d", ErrRuleSyntax, string(l), count)
				}
				included[idx] = true
			}
			if negate {
				full := map[int]bool{}
				for idx := range classes {
					if !included[idx] {
						full[idx] = true
					}
				}
				included = full
			}
			cs.classes = included
		}
		dst[count] = cs
	}
	return nil
}

func (r *Rule) included(spec *countSpec, count int, pat uint8) bool {
	if !spec.configured {
		return false
	}
	if spec.totalistic {
		return true
	}
	return spec.classes[isoClassIndex(count, pat)]
}

// evalCell computes the next state of a cell given its current state
// and the 8-bit Moore neighbour pattern (always computed over all 8
// directions; non-Moore neighbourhoods simply restrict which bits of
// pat can ever be set, via neighbourIndices).
func (r *Rule) evalCell(cur int, pat uint8) int {
	count := 0
	for _, idx := range neighbourIndices(r.Neighbourhood) {
		if pat&(1<<uint(idx)) != 0 {
			count++
		}
	}
	var spec *countSpec
	if cur == 0 {
		spec = &r.birth[count]
	} else {
		spec = &r.survive[count]
	}
	if r.included(spec, count, pat) {
		return 1
	}
	return 0
}

// stepGrid advances an NxN boolean grid (N>=3) by one generation,
// returning an (N-2)x(N-2) grid of the cells whose full neighbourhood
// was available. This is the single per-cell rule evaluation that both
// the 65536-entry table and the depth-3 result recursion (result.go)
// are built from.
func (r *Rule) stepGrid(g [][]int) [][]int {
	n := len(g)
	out := make([][]int, n-2)
	for row := 1; row < n-1; row++ {
		out[row-1] = make([]int, n-2)
		for col := 1; col < n-1; col++ {
			var pat uint8
			for i, off := range neighbourOrder {
				if g[row+off[0]][col+off[1]] != 0 {
					pat |= 1 << uint(i)
				}
			}
			out[row-1][col-1] = r.evalCell(g[row][col], pat)
		}
	}
	return out
}

func (r *Rule) buildTable() {
	for idx := 0; idx < 65536; idx++ {
		g := decode16(uint16(idx))
		grid := make([][]int, 4)
		for i := range grid {
			grid[i] = g[i][:]
		}
		out := r.stepGrid(grid) // 2x2
		var o [2][2]int
		o[0][0], o[0][1] = out[0][0], out[0][1]
		o[1][0], o[1][1] = out[1][0], out[1][1]
		r.Table[idx] = encode4(o)
	}
}

// applyB0Smax implements spec §4.1's duality check: if the all-dead
// 4x4 gives an all-alive inner 2x2 (birth fires with zero neighbours),
// the all-alive 4x4 must give an all-dead inner 2x2 (survival does not
// fire at the maximum count); otherwise the rule is rejected for the
// hashed engine. When both hold, the table is complemented-and-negated
// in place so the engine can keep treating "dead" as the common case.
func (r *Rule) applyB0Smax() error {
	b0 := r.Table[0x0000] == 0xF
	if !b0 {
		return nil
	}
	if r.Table[0xFFFF] != 0x0 {
		return ErrRuleUnsupported
	}
	r.Flipped = true
	var flipped [65536]uint8
	for i := 0; i < 65536; i++ {
		flipped[i] = 0xF ^ r.Table[uint16(i)^0xFFFF]
	}
	r.Table = flipped
	return nil
}

func (r *Rule) canonicalString() string {
	var b, s strings.Builder
	b.WriteByte('B')
	s.WriteByte('S')
	for count := 0; count <= r.Neighbourhood.degree(); count++ {
		writeCount(&b, &r.birth[count], count)
		writeCount(&s, &r.survive[count], count)
	}
	return b.String() + "/" + s.String() + r.Neighbourhood.suffix() + r.Bounds
}

func writeCount(out *strings.Builder, cs *countSpec, count int) {
	if !cs.configured {
		return
	}
	out.WriteString(strconv.Itoa(count))
	if cs.totalistic {
		return
	}
	total := len(isoClassesByCount(count))
	included := cs.classes
	// Negation minimisation: whichever of "included" or its complement
	// needs fewer letters becomes the printed form.
	useNegated := len(included) > total-len(included)
	var idxs []int
	if useNegated {
		out.WriteByte('-')
		for idx := 0; idx < total; idx++ {
			if !included[idx] {
				idxs = append(idxs, idx)
			}
		}
	} else {
		for idx := 0; idx < total; idx++ {
			if included[idx] {
				idxs = append(idxs, idx)
			}
		}
	}
	sort.Ints(idxs)
	for _, idx := range idxs {
		out.WriteByte(classLetter(idx))
	}
}

// --- MAP rules ---

func compileMapRule(b64, bounds string) (*Rule, error) {
	data, err := decodeMapBase64(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuleBadMap, err)
	}
	var nb Neighbourhood
	switch len(data) * 8 {
	case 512:
		nb = Moore
	case 128:
		nb = Hex
	case 32:
		nb = VonNeumann
	default:
		return nil, fmt.Errorf("%w: unexpected bit length %d", ErrRuleBadMap, len(data)*8)
	}

	r := &Rule{Neighbourhood: nb, Bounds: bounds}
	idxs := neighbourIndices(nb)
	bit := func(i int) int {
		if data[i/8]&(1<<uint(i%8)) != 0 {
			return 1
		}
		return 0
	}
	for idx := 0; idx < 65536; idx++ {
		g := decode16(uint16(idx))
		var o [2][2]int
		cells := [4][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
		for ci, rc := range cells {
			row, col := rc[0], rc[1]
			mapIdx := g[row][col] // self bit 0
			for i, ni := range idxs {
				if g[row+neighbourOrder[ni][0]][col+neighbourOrder[ni][1]] != 0 {
					mapIdx |= 1 << uint(1+i)
				}
			}
			o[ci/2][ci%2] = bit(mapIdx)
		}
		r.Table[idx] = encode4(o)
	}
	if err := r.applyB0Smax(); err != nil {
		return nil, err
	}
	r.Canonical = "MAP" + base64.StdEncoding.EncodeToString(data) + r.Neighbourhood.suffix() + r.Bounds
	return r, nil
}

func decodeMapBase64(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	if data, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(s)
}

// --- 4x4 / 2x2 bit packing, shared with the leaf engine ---

// decode16 unpacks a 16-bit value into a 4x4 grid, row-major MSB-first
// (bit 0x8000 is cell [0][0], the NW corner) per spec §3.2.
func decode16(v uint16) [4][4]int {
	var g [4][4]int
	for p := 0; p < 16; p++ {
		bit := (v >> uint(15-p)) & 1
		g[p/4][p%4] = int(bit)
	}
	return g
}

func encode16(g [4][4]int) uint16 {
	var v uint16
	for p := 0; p < 16; p++ {
		if g[p/4][p%4] != 0 {
			v |= 1 << uint(15-p)
		}
	}
	return v
}

// decode4/encode4 do the same for the inner 2x2 result, packed into
// the low 4 bits (bit 0x8 is [0][0]).
func decode4(v uint8) [2][2]int {
	var g [2][2]int
	for p := 0; p < 4; p++ {
		bit := (v >> uint(3-p)) & 1
		g[p/2][p%2] = int(bit)
	}
	return g
}

func encode4(g [2][2]int) uint8 {
	var v uint8
	for p := 0; p < 4; p++ {
		if g[p/2][p%2] != 0 {
			v |= 1 << uint(3-p)
		}
	}
	return v
}
