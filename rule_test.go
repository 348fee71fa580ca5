// This is free and unencumbered software released into the public domain.

package golly

import (
	"encoding/base64"
	"testing"
)

func TestCompileRuleCanonicalRoundTrip(t *testing.T) {
	r, err := CompileRule("s23/b3")
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	if r.Canonical != "B3/S23" {
		t.Fatalf("Canonical = %q, want B3/S23", r.Canonical)
	}

	r2, err := CompileRule("Life")
	if err != nil {
		t.Fatalf("CompileRule(Life): %v", err)
	}
	if r2.Canonical != r.Canonical {
		t.Fatalf("Life alias canonical = %q, want %q", r2.Canonical, r.Canonical)
	}
}

func TestCompileRuleHexVonNeumannSuffix(t *testing.T) {
	r, err := CompileRule("B2/S34H")
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	if r.Neighbourhood != Hex {
		t.Fatalf("Neighbourhood = %v, want Hex", r.Neighbourhood)
	}
	if r.Canonical != "B2/S34H" {
		t.Fatalf("Canonical = %q, want B2/S34H", r.Canonical)
	}

	if _, err := CompileRule("B9/S23"); err == nil {
		t.Fatal("expected ErrRuleDigitRange for B9 in a Moore rule")
	}
}

func TestCompileRuleRejectsB0WithoutSmax(t *testing.T) {
	// B0 fires (birth with zero neighbours) but S8 also fires, so the
	// maximum-count survival does not die: the duality check must reject it.
	if _, err := CompileRule("B0/S8"); err == nil {
		t.Fatal("expected rejection of B0 without a dying Smax")
	}
}

func TestCompileRuleIsotropicLetters(t *testing.T) {
	r, err := CompileRule("B3/S23-a")
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	if r.Neighbourhood != Moore {
		t.Fatalf("Neighbourhood = %v, want Moore", r.Neighbourhood)
	}
	// canonicalString must regenerate a rule that recompiles to the same table.
	r2, err := CompileRule(r.Canonical)
	if err != nil {
		t.Fatalf("re-compiling canonical form %q: %v", r.Canonical, err)
	}
	if r2.Table != r.Table {
		t.Fatalf("re-compiled table diverges from original for %q", r.Canonical)
	}
}

func TestMapRuleDecodesAllDeadTable(t *testing.T) {
	// A 512-bit all-zero MAP means "every configuration dies", a
	// Moore rule that exercises the MAP decode path end to end.
	raw := make([]byte, 64)
	b64 := base64.StdEncoding.EncodeToString(raw)
	r, err := CompileRule("MAP" + b64)
	if err != nil {
		t.Fatalf("CompileRule(MAP...): %v", err)
	}
	if r.Neighbourhood != Moore {
		t.Fatalf("Neighbourhood = %v, want Moore", r.Neighbourhood)
	}
	for idx := 0; idx < 65536; idx++ {
		if r.Table[idx] != 0 {
			t.Fatalf("all-zero MAP rule produced a live cell at table index %d", idx)
		}
	}
}

func TestIsoClassesByCountPartitionsEvenly(t *testing.T) {
	total := 0
	for count := 0; count <= 8; count++ {
		for _, c := range isoClassesByCount(count) {
			total += len(c.members)
		}
	}
	if total != 256 {
		t.Fatalf("isotropic classes cover %d patterns, want 256", total)
	}
}

func TestDecodeEncode16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0x0000, 0xFFFF, 0x8421, 0x1248} {
		if got := encode16(decode16(v)); got != v {
			t.Errorf("encode16(decode16(%#04x)) = %#04x", v, got)
		}
	}
}
