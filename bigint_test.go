// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestNatAddLsh(t *testing.T) {
	a := NatFromUint64(1).Lsh(64)
	b := NatFromUint64(1)
	sum := a.Add(b)
	if sum.IsUint64() {
		t.Fatalf("expected overflow past one word")
	}
	if sum.Cmp(a) <= 0 {
		t.Fatalf("sum should exceed a")
	}
	if got := sum.Rsh(64).Uint64(); got != 1 {
		t.Fatalf("high word = %d, want 1", got)
	}
}

func TestNatStringRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "18446744073709551616", "123456789012345678901234567890"}
	for _, s := range cases {
		n, err := ParseNat(s)
		if err != nil {
			t.Fatalf("ParseNat(%q): %v", s, err)
		}
		if got := n.String(); got != s {
			t.Errorf("ParseNat(%q).String() = %q", s, got)
		}
	}
}

func TestNatLowestSetBit(t *testing.T) {
	n := NatFromUint64(1).Lsh(70)
	if got := n.LowestSetBit(); got != 70 {
		t.Fatalf("LowestSetBit() = %d, want 70", got)
	}
	if got := NatFromUint64(0).LowestSetBit(); got != -1 {
		t.Fatalf("LowestSetBit() of zero = %d, want -1", got)
	}
}

func TestNatOddEven(t *testing.T) {
	if !NatFromUint64(3).Odd() {
		t.Fatal("3 should be odd")
	}
	if !NatFromUint64(4).Even() {
		t.Fatal("4 should be even")
	}
}
