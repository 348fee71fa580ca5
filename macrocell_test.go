// This is free and unencumbered software released into the public domain.

package golly

import (
	"bytes"
	"strings"
	"testing"
)

func TestMacrocellWriteReadRoundTrip(t *testing.T) {
	e := NewEngine()
	pts := [][2]int64{{0, 0}, {1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, p := range pts {
		e.SetCell(p[0], p[1], 1)
	}
	e.SetGeneration(NatFromUint64(42))

	var buf bytes.Buffer
	if err := e.WriteMacrocell(&buf); err != nil {
		t.Fatalf("WriteMacrocell: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[M2]") {
		t.Fatalf("macrocell output missing [M2] header: %q", buf.String()[:20])
	}

	e2 := NewEngine()
	if err := e2.ReadMacrocell(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("ReadMacrocell: %v", err)
	}

	for _, p := range pts {
		if got := e2.GetCell(p[0], p[1]); got != 1 {
			t.Errorf("after round trip, GetCell(%d, %d) = %d, want 1", p[0], p[1], got)
		}
	}
	if got := e2.GetRule(); got != e.GetRule() {
		t.Errorf("round-tripped rule = %q, want %q", got, e.GetRule())
	}
	if got := e2.Generation(); got.Cmp(NatFromUint64(42)) != 0 {
		t.Errorf("round-tripped generation = %s, want 42", got.String())
	}
}

func TestMacrocellEmptyPatternRoundTrip(t *testing.T) {
	e := NewEngine()
	var buf bytes.Buffer
	if err := e.WriteMacrocell(&buf); err != nil {
		t.Fatalf("WriteMacrocell: %v", err)
	}
	e2 := NewEngine()
	e2.SetCell(0, 0, 1) // perturb first, to prove Read actually replaces it
	if err := e2.ReadMacrocell(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("ReadMacrocell: %v", err)
	}
	if !e2.IsEmpty() {
		t.Fatal("round-tripped empty pattern should read back empty")
	}
}

func TestMacrocellMissingMagicRejected(t *testing.T) {
	e := NewEngine()
	err := e.ReadMacrocell(strings.NewReader("not a macrocell file\n"))
	if err != ErrMacrocellNoMagic {
		t.Fatalf("ReadMacrocell error = %v, want ErrMacrocellNoMagic", err)
	}
}
