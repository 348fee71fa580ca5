// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestGetPopulationCountsLiveCells(t *testing.T) {
	e := NewEngine()
	if !e.GetPopulation().IsZero() {
		t.Fatal("fresh engine should have zero population")
	}
	pts := [][2]int64{{0, 0}, {1, 0}, {-3, 4}, {100, -100}}
	for _, p := range pts {
		e.SetCell(p[0], p[1], 1)
	}
	want := NatFromUint64(uint64(len(pts)))
	if got := e.GetPopulation(); got.Cmp(want) != 0 {
		t.Fatalf("GetPopulation() = %s, want %s", got.String(), want.String())
	}
}

func TestGetPopulationStableAcrossRepeatedQueries(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.SetCell(1, 1, 1)
	first := e.GetPopulation()
	second := e.GetPopulation()
	if first.Cmp(second) != 0 {
		t.Fatalf("population changed between queries with no mutation: %s vs %s", first.String(), second.String())
	}
}

func TestGetPopulationAfterClearing(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.SetCell(0, 0, 0)
	if !e.GetPopulation().IsZero() {
		t.Fatalf("population after clearing the only live cell = %s, want 0", e.GetPopulation().String())
	}
}

func TestTryGetPopulationDuringGC(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.SetCell(1, 1, 1)

	e.gcBusy = true
	if _, ok := e.TryGetPopulation(); ok {
		t.Fatal("TryGetPopulation should report not-ok while a GC is in progress")
	}
	e.gcBusy = false

	pop, ok := e.TryGetPopulation()
	if !ok {
		t.Fatal("TryGetPopulation should succeed once no GC is in progress")
	}
	if want := NatFromUint64(2); pop.Cmp(want) != 0 {
		t.Fatalf("TryGetPopulation() = %s, want %s", pop.String(), want.String())
	}
}
