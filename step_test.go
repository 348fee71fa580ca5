// This is free and unencumbered software released into the public domain.

package golly

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestStepBlinkerOscillates checks the classic period-2 blinker: a row
// of three cells flips between horizontal and vertical every generation
// under Conway's Life (the engine's default rule).
func TestStepBlinkerOscillates(t *testing.T) {
	e := NewEngine()
	for _, x := range []int64{-1, 0, 1} {
		e.SetCell(x, 0, 1)
	}
	e.SetIncrement(NatFromUint64(1))

	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	for _, y := range []int64{-1, 0, 1} {
		if got := e.GetCell(0, y); got != 1 {
			t.Errorf("after one step, GetCell(0, %d) = %d, want 1", y, got)
		}
	}
	if e.GetCell(-1, 0) != 0 || e.GetCell(1, 0) != 0 {
		t.Error("after one step the original horizontal cells should be dead")
	}

	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	for _, x := range []int64{-1, 0, 1} {
		if got := e.GetCell(x, 0); got != 1 {
			t.Errorf("after two steps, GetCell(%d, 0) = %d, want 1", x, got)
		}
	}

	if got := e.Generation(); got.Cmp(NatFromUint64(2)) != 0 {
		t.Fatalf("Generation() = %s, want 2", got.String())
	}
}

// TestStepGliderTranslates advances a glider four generations, after
// which it has reproduced itself shifted by (1, 1) and the population
// is unchanged.
func TestStepGliderTranslates(t *testing.T) {
	e := NewEngine()
	cells := [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range cells {
		e.SetCell(c[0], c[1], 1)
	}
	e.SetIncrement(NatFromUint64(4))
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := NatFromUint64(5)
	if got := e.GetPopulation(); got.Cmp(want) != 0 {
		t.Fatalf("GetPopulation() = %s, want %s\nstats: %s", got.String(), want.String(), spew.Sdump(e.GetStats()))
	}
	for _, c := range cells {
		if got := e.GetCell(c[0]+1, c[1]+1); got != 1 {
			t.Errorf("GetCell(%d, %d) = %d, want 1 (shifted glider)", c[0]+1, c[1]+1, got)
		}
	}
}

func TestStepIncrementFactoring(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.SetIncrement(NatFromUint64(6)) // 2^1 * 3
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := e.Generation(); got.Cmp(NatFromUint64(6)) != 0 {
		t.Fatalf("Generation() = %s, want 6", got.String())
	}
}

func TestStepZeroIncrementIsNoop(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.SetIncrement(NatFromUint64(0))
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !e.Generation().IsZero() {
		t.Fatalf("Generation() = %s, want 0", e.Generation().String())
	}
	if e.GetCell(0, 0) != 1 {
		t.Fatal("zero-increment Step must not alter the pattern")
	}
}

func TestPushRootThenPopZerosRestoresDepth(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	startDepth := e.rootDepth
	e.pushRoot()
	e.pushRoot()
	if e.rootDepth != startDepth+2 {
		t.Fatalf("rootDepth = %d after two pushRoot calls, want %d", e.rootDepth, startDepth+2)
	}
	e.popZeros()
	if e.rootDepth != startDepth {
		t.Fatalf("popZeros did not restore rootDepth: got %d, want %d", e.rootDepth, startDepth)
	}
	if e.GetCell(0, 0) != 1 {
		t.Fatal("push/pop round trip lost the live cell")
	}
}
