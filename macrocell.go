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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteMacrocell serialises the current pattern in a single post-order
// walk that numbers and emits each line together, keeping ordinals in a
// map: every distinct node is written once, after its children (a leaf
// as an 8-row '.'/'*' bitmap joined by '$', an
// internal node as "depth nw ne sw se"); a canonical all-empty node at
// any depth is never given its own line and is always referenced as 0.
func (e *Engine) WriteMacrocell(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[M2] (golly hashlife engine)")
	fmt.Fprintln(bw, "#R "+e.rule.Canonical)
	fmt.Fprintln(bw, "#G "+e.generation.String())
	if len(e.timeline) > 0 {
		fmt.Fprintln(bw, "#FRAMES "+strconv.Itoa(len(e.timeline)))
	}

	serial := map[nodeID]uint32{}
	next := uint32(1)

	var write func(id nodeID) (uint32, error)
	write = func(id nodeID) (uint32, error) {
		if s, ok := serial[id]; ok {
			return s, nil
		}
		n := e.arena.get(id)
		if !n.isInternal() {
			nw, ne, sw, se := n.leafWords()
			if nw == 0 && ne == 0 && sw == 0 && se == 0 {
				serial[id] = 0
				return 0, nil
			}
			grid := assembleGrid8x8(nw, ne, sw, se)
			var sb strings.Builder
			for r := 0; r < 8; r++ {
				if r > 0 {
					sb.WriteByte('$')
				}
				for c := 0; c < 8; c++ {
					if grid[r][c] != 0 {
						sb.WriteByte('*')
					} else {
						sb.WriteByte('.')
					}
				}
			}
			if _, err := fmt.Fprintln(bw, sb.String()); err != nil {
				return 0, err
			}
			s := next
			next++
			serial[id] = s
			return s, nil
		}

		cnw, cne, csw, cse := n.children()
		a, err := write(cnw)
		if err != nil {
			return 0, err
		}
		b, err := write(cne)
		if err != nil {
			return 0, err
		}
		c, err := write(csw)
		if err != nil {
			return 0, err
		}
		d, err := write(cse)
		if err != nil {
			return 0, err
		}
		if a == 0 && b == 0 && c == 0 && d == 0 {
			serial[id] = 0
			return 0, nil
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d\n", n.depth, a, b, c, d); err != nil {
			return 0, err
		}
		s := next
		next++
		serial[id] = s
		return s, nil
	}

	if _, err := write(e.root); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadMacrocell replaces the current pattern with one parsed from r
// (spec §4.11). The reader is tolerant of a growable ordinal table and
// of unknown '#' directives, which are skipped rather than rejected.
func (e *Engine) ReadMacrocell(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var ordinals []nodeID // 1-based; ordinals[0] corresponds to serial 1
	var lastID nodeID
	var lastDepth int32 = 2
	haveMagic := false
	haveAny := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !haveMagic {
			if !strings.HasPrefix(line, "[M2]") {
				return ErrMacrocellNoMagic
			}
			haveMagic = true
			continue
		}
		if strings.HasPrefix(line, "#") {
			if err := e.parseMacrocellDirective(line); err != nil {
				return err
			}
			continue
		}

		if line[0] >= '0' && line[0] <= '9' {
			var depth int32
			var a, b, c, d uint32
			if _, err := fmt.Sscanf(line, "%d %d %d %d %d", &depth, &a, &b, &c, &d); err != nil {
				return fmt.Errorf("%w: %q", ErrMacrocellSyntax, line)
			}
			resolve := func(ref uint32) (nodeID, error) {
				if ref == 0 {
					return e.emptyNode(depth - 1), nil
				}
				if int(ref) > len(ordinals) {
					return invalidID, fmt.Errorf("%w: %d", ErrMacrocellBadRef, ref)
				}
				return ordinals[ref-1], nil
			}
			cnw, err := resolve(a)
			if err != nil {
				return err
			}
			cne, err := resolve(b)
			if err != nil {
				return err
			}
			csw, err := resolve(c)
			if err != nil {
				return err
			}
			cse, err := resolve(d)
			if err != nil {
				return err
			}
			id := e.findNode(depth, cnw, cne, csw, cse)
			ordinals = append(ordinals, id)
			lastID, lastDepth, haveAny = id, depth, true
			continue
		}

		nw, ne, sw, se, err := parseLeafBitmap(line)
		if err != nil {
			return err
		}
		id := e.findLeaf(nw, ne, sw, se)
		ordinals = append(ordinals, id)
		lastID, lastDepth, haveAny = id, 2, true
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if !haveMagic {
		return ErrMacrocellNoMagic
	}
	if haveAny {
		e.root, e.rootDepth = lastID, lastDepth
	} else {
		e.rootDepth = 3
		e.root = e.emptyNode(e.rootDepth)
	}
	return nil
}

func (e *Engine) parseMacrocellDirective(line string) error {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return nil
	}
	switch fields[0] {
	case "#R":
		return e.SetRule(strings.TrimSpace(fields[1]))
	case "#G":
		n, err := ParseNat(strings.TrimSpace(fields[1]))
		if err != nil {
			return err
		}
		e.SetGeneration(n)
	}
	// #C, #FRAMES, #FRAME and anything unrecognised are ignored.
	return nil
}

// parseLeafBitmap decodes an 8-row '.'/'*' leaf record, '$'-separated,
// into the leaf's four 4x4 corner words.
func parseLeafBitmap(line string) (nw, ne, sw, se uint16, err error) {
	rows := strings.Split(line, "$")
	if len(rows) != 8 {
		return 0, 0, 0, 0, fmt.Errorf("%w: leaf needs 8 rows, got %d", ErrMacrocellSyntax, len(rows))
	}
	var g [8][8]int
	for r, row := range rows {
		if len(row) != 8 {
			return 0, 0, 0, 0, fmt.Errorf("%w: leaf row needs 8 columns", ErrMacrocellSyntax)
		}
		for c := 0; c < 8; c++ {
			switch row[c] {
			case '*':
				g[r][c] = 1
			case '.':
				g[r][c] = 0
			default:
				return 0, 0, 0, 0, fmt.Errorf("%w: unexpected leaf character %q", ErrMacrocellSyntax, string(row[c]))
			}
		}
	}
	var nwg, neg, swg, seg [4][4]int
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			nwg[r][c] = g[r][c]
			neg[r][c] = g[r][c+4]
			swg[r][c] = g[r+4][c]
			seg[r][c] = g[r+4][c+4]
		}
	}
	return encode16(nwg), encode16(neg), encode16(swg), encode16(seg), nil
}
