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
	"math/bits"
	"strings"
)

// Nat is an arbitrary-precision non-negative integer, used throughout
// the engine for generation counts, populations, and coordinates that
// must not silently truncate. It mirrors the API shape of a fixed-width
// word-slice integer (holiman/uint256.Int's Lsh/Rsh/Add/IsUint64 set)
// but grows its word slice instead of wrapping modulo 2^256: HashLife
// genuinely needs coordinates and generation counts that outgrow any
// fixed machine width once a pattern is hyper-stepped far enough.
//
// The zero value is a valid representation of zero.
type Nat struct {
	// words is little-endian base-2^64; words[len-1] != 0, except
	// for the zero value where words is nil.
	words []uint64
}

// NatFromUint64 builds a Nat from a machine word.
func NatFromUint64(v uint64) Nat {
	if v == 0 {
		return Nat{}
	}
	return Nat{words: []uint64{v}}
}

func (n Nat) normalize() Nat {
	w := n.words
	for len(w) > 0 && w[len(w)-1] == 0 {
		w = w[:len(w)-1]
	}
	n.words = w
	return n
}

// IsZero reports whether n is 0.
func (n Nat) IsZero() bool { return len(n.words) == 0 }

// IsUint64 reports whether n fits in a uint64.
func (n Nat) IsUint64() bool { return len(n.words) <= 1 }

// Uint64 returns the low 64 bits of n (truncating, like uint256's).
func (n Nat) Uint64() uint64 {
	if len(n.words) == 0 {
		return 0
	}
	return n.words[0]
}

// Odd reports whether n is odd.
func (n Nat) Odd() bool { return len(n.words) > 0 && n.words[0]&1 == 1 }

// Even reports whether n is even.
func (n Nat) Even() bool { return !n.Odd() }

// LowBits returns the low k bits of n as a uint64; k must be <= 64.
func (n Nat) LowBits(k uint) uint64 {
	if len(n.words) == 0 {
		return 0
	}
	if k >= 64 {
		return n.words[0]
	}
	return n.words[0] & ((uint64(1) << k) - 1)
}

// LowestSetBit returns the index of the least-significant set bit, or
// -1 if n is zero. This drives the step driver's 2^k·odd factoring.
func (n Nat) LowestSetBit() int {
	for i, w := range n.words {
		if w != 0 {
			return i*64 + trailingZeros64(w)
		}
	}
	return -1
}

func trailingZeros64(w uint64) int {
	if w == 0 {
		return 64
	}
	n := 0
	for w&1 == 0 {
		w >>= 1
		n++
	}
	return n
}

// Add returns n+m.
func (n Nat) Add(m Nat) Nat {
	la, lb := len(n.words), len(m.words)
	max := la
	if lb > max {
		max = lb
	}
	out := make([]uint64, max+1)
	var carry uint64
	for i := 0; i < max; i++ {
		var a, b uint64
		if i < la {
			a = n.words[i]
		}
		if i < lb {
			b = m.words[i]
		}
		sum := a + b + carry
		// carry if overflow occurred
		if sum < a || (carry == 1 && sum == a) {
			carry = 1
		} else {
			carry = 0
		}
		out[i] = sum
	}
	out[max] = carry
	return Nat{words: out}.normalize()
}

// AddUint64 returns n+v.
func (n Nat) AddUint64(v uint64) Nat {
	return n.Add(NatFromUint64(v))
}

// Lsh returns n<<k.
func (n Nat) Lsh(k uint) Nat {
	if n.IsZero() || k == 0 {
		return n
	}
	wordShift := int(k / 64)
	bitShift := uint(k % 64)
	out := make([]uint64, len(n.words)+wordShift+1)
	for i, w := range n.words {
		lo := w << bitShift
		out[i+wordShift] |= lo
		if bitShift > 0 {
			hi := w >> (64 - bitShift)
			out[i+wordShift+1] |= hi
		}
	}
	return Nat{words: out}.normalize()
}

// Rsh returns n>>k.
func (n Nat) Rsh(k uint) Nat {
	if n.IsZero() || k == 0 {
		return n
	}
	wordShift := int(k / 64)
	bitShift := uint(k % 64)
	if wordShift >= len(n.words) {
		return Nat{}
	}
	src := n.words[wordShift:]
	out := make([]uint64, len(src))
	for i := range src {
		lo := src[i] >> bitShift
		out[i] = lo
		if bitShift > 0 && i+1 < len(src) {
			out[i] |= src[i+1] << (64 - bitShift)
		}
	}
	return Nat{words: out}.normalize()
}

// Cmp compares n to m: -1, 0, or 1.
func (n Nat) Cmp(m Nat) int {
	if len(n.words) != len(m.words) {
		if len(n.words) < len(m.words) {
			return -1
		}
		return 1
	}
	for i := len(n.words) - 1; i >= 0; i-- {
		if n.words[i] != m.words[i] {
			if n.words[i] < m.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders n in decimal, matching the macrocell codec's need for
// a base-10 population/generation string.
func (n Nat) String() string {
	if n.IsZero() {
		return "0"
	}
	// Repeated divide-by-10^19 (largest power of ten under 2^64) on a
	// scratch copy, emitting 19-digit chunks least-significant first.
	const chunkDiv = uint64(1e19)
	rem := append([]uint64(nil), n.words...)
	var chunks []uint64
	for len(rem) > 0 {
		var r uint64
		for i := len(rem) - 1; i >= 0; i-- {
			// r < chunkDiv always holds, as bits.Div64 requires.
			rem[i], r = bits.Div64(r, rem[i], chunkDiv)
		}
		for len(rem) > 0 && rem[len(rem)-1] == 0 {
			rem = rem[:len(rem)-1]
		}
		chunks = append(chunks, r)
	}
	var sb strings.Builder
	sb.WriteString(itoa(chunks[len(chunks)-1]))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := itoa(chunks[i])
		for len(s) < 19 {
			s = "0" + s
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// ParseNat parses a decimal string into a Nat.
func ParseNat(s string) (Nat, error) {
	if s == "" {
		return Nat{}, errInvariant
	}
	n := Nat{}
	ten := NatFromUint64(10)
	for _, c := range s {
		if c < '0' || c > '9' {
			return Nat{}, errInvariant
		}
		n = n.mulSmall(ten).AddUint64(uint64(c - '0'))
	}
	return n, nil
}

func (n Nat) mulSmall(m Nat) Nat {
	if n.IsZero() || m.IsZero() {
		return Nat{}
	}
	if !m.IsUint64() {
		panic("golly: mulSmall requires a single-word multiplier")
	}
	mv := m.Uint64()
	out := make([]uint64, len(n.words)+1)
	var carry uint64
	for i, w := range n.words {
		hi, lo := mul64(w, mv)
		lo2 := lo + carry
		if lo2 < lo {
			hi++
		}
		out[i] = lo2
		carry = hi
	}
	out[len(n.words)] = carry
	return Nat{words: out}.normalize()
}

func mul64(a, b uint64) (hi, lo uint64) {
	const mask = 0xffffffff
	aLo, aHi := a&mask, a>>32
	bLo, bHi := b&mask, b>>32

	t := aLo * bLo
	w0 := t & mask
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	hi = aHi*bHi + w2 + k
	lo = (t << 32) | w0
	return
}
