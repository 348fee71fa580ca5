// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestSetCellGetCellRoundTrip(t *testing.T) {
	e := NewEngine()
	pts := [][2]int64{{0, 0}, {5, -3}, {-100, 100}, {1000, -1000}}
	for _, p := range pts {
		e.SetCell(p[0], p[1], 1)
	}
	for _, p := range pts {
		if got := e.GetCell(p[0], p[1]); got != 1 {
			t.Errorf("GetCell(%d, %d) = %d, want 1", p[0], p[1], got)
		}
	}
	if e.GetCell(3, 3) != 0 {
		t.Error("untouched cell should read dead")
	}
}

func TestSetCellClear(t *testing.T) {
	e := NewEngine()
	e.SetCell(2, 2, 1)
	e.SetCell(2, 2, 0)
	if got := e.GetCell(2, 2); got != 0 {
		t.Fatalf("GetCell after clearing = %d, want 0", got)
	}
	if !e.IsEmpty() {
		t.Fatal("pattern should be empty after clearing its only live cell")
	}
}

func TestFindEdgesBoundingBox(t *testing.T) {
	e := NewEngine()
	pts := [][2]int64{{-3, -2}, {4, 5}, {0, 0}}
	for _, p := range pts {
		e.SetCell(p[0], p[1], 1)
	}
	minX, minY, maxX, maxY, ok := e.FindEdges()
	if !ok {
		t.Fatal("FindEdges reported no live cells")
	}
	if minX != -3 || minY != -2 || maxX != 4 || maxY != 5 {
		t.Fatalf("FindEdges = (%d,%d)-(%d,%d), want (-3,-2)-(4,5)", minX, minY, maxX, maxY)
	}
}

func TestFindEdgesEmptyPattern(t *testing.T) {
	e := NewEngine()
	if _, _, _, _, ok := e.FindEdges(); ok {
		t.Fatal("FindEdges should report ok=false for an empty pattern")
	}
}

func TestNextCellEnumeratesEveryLiveCellOnce(t *testing.T) {
	e := NewEngine()
	want := map[[2]int64]bool{
		{-1, -1}: true, {0, 0}: true, {2, 3}: true, {-5, 7}: true,
	}
	for p := range want {
		e.SetCell(p[0], p[1], 1)
	}

	got := map[[2]int64]bool{}
	x, y, ok := e.FirstCell()
	for ok {
		got[[2]int64{x, y}] = true
		x, y, ok = e.NextCell(x, y)
	}
	if len(got) != len(want) {
		t.Fatalf("NextCell enumerated %d cells, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("NextCell traversal missed live cell %v", p)
		}
	}
}

func TestEndOfPattern(t *testing.T) {
	if !EndOfPattern(false) {
		t.Error("EndOfPattern(false) should be true")
	}
	if EndOfPattern(true) {
		t.Error("EndOfPattern(true) should be false")
	}
}
