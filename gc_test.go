// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestGCPreservesLivePattern(t *testing.T) {
	e := NewEngine()
	cells := [][2]int64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range cells {
		e.SetCell(c[0], c[1], 1)
	}
	e.SetIncrement(NatFromUint64(1))
	for i := 0; i < 8; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	wantPop := e.GetPopulation()

	e.GC()

	if got := e.GetPopulation(); got.Cmp(wantPop) != 0 {
		t.Fatalf("population after GC = %s, want %s", got.String(), wantPop.String())
	}
	// The pattern must still advance correctly after a collection.
	if err := e.Step(); err != nil {
		t.Fatalf("Step after GC: %v", err)
	}
}

func TestGCReclaimsUnreachableNodes(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	before := e.GetStats().Nodes
	e.SetCell(0, 0, 0) // orphans the old leaf chain
	e.SetCell(1, 1, 1)
	e.GC()
	after := e.GetStats().Nodes
	if after > before+4 {
		t.Fatalf("node count after GC = %d, expected it not to have grown unreasonably from %d", after, before)
	}
}

func TestTimelineRewind(t *testing.T) {
	e := NewEngine()
	e.SetCell(0, 0, 1)
	e.PushTimelineFrame()

	e.SetCell(5, 5, 1)
	if e.GetCell(5, 5) != 1 {
		t.Fatal("setup: cell should be alive before rewind")
	}

	if ok := e.RewindTimeline(0); !ok {
		t.Fatal("RewindTimeline(0) should succeed")
	}
	if e.GetCell(5, 5) != 0 {
		t.Fatal("RewindTimeline did not undo the later mutation")
	}
	if e.GetCell(0, 0) != 1 {
		t.Fatal("RewindTimeline lost the cell present at the saved frame")
	}
}

func TestTimelineRewindOutOfRange(t *testing.T) {
	e := NewEngine()
	if e.RewindTimeline(0) {
		t.Fatal("RewindTimeline should fail with no frames pushed")
	}
}
