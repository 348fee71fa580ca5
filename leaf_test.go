// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestComputeLeafResultsMatchesDirectSimulation(t *testing.T) {
	rule, err := CompileRule("B3/S23")
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}

	// A 4x4 "block" (2x2 still life) placed in the nw corner, centred
	// enough that one generation forward should be unchanged.
	var nwWord uint16
	block := [4][4]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	}
	nwWord = encode16(block)

	res1, res2, pop := computeLeafResults(rule, nwWord, 0, 0, 0)

	// Cross-check res1 against a direct, non-windowed simulation of the
	// assembled 8x8 grid using the same per-cell rule evaluator.
	grid8 := assembleGrid8x8(nwWord, 0, 0, 0)
	gen1 := rule.stepGrid(grid8) // 6x6
	wantRes1 := gridToWord(cropCenter(gen1, 4))
	if res1 != wantRes1 {
		t.Fatalf("res1 = %#04x, want %#04x (direct stepGrid simulation)", res1, wantRes1)
	}

	gen2 := rule.stepGrid(gen1) // 4x4
	wantRes2 := gridToWord(gen2)
	if res2 != wantRes2 {
		t.Fatalf("res2 = %#04x, want %#04x (direct stepGrid simulation)", res2, wantRes2)
	}

	if pop != 4 {
		t.Fatalf("pop = %d, want 4", pop)
	}
}

func TestWindowApplyStableBlock(t *testing.T) {
	rule, err := CompileRule("B3/S23")
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	// A 2x2 block centred in an 8x8 all-dead field is a still life: one
	// generation forward it must be identical.
	grid := make([][]int, 8)
	for r := range grid {
		grid[r] = make([]int, 8)
	}
	grid[3][3], grid[3][4], grid[4][3], grid[4][4] = 1, 1, 1, 1

	gen1 := windowApply(rule, grid) // 6x6
	center := cropCenter(gen1, 2)
	if center[0][0] != 1 || center[0][1] != 1 || center[1][0] != 1 || center[1][1] != 1 {
		t.Fatalf("still-life block changed after one generation: %v", center)
	}
}

func TestAssembleGrid8x8Corners(t *testing.T) {
	nw := encode16([4][4]int{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	se := encode16([4][4]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 1}})
	grid := assembleGrid8x8(nw, 0, 0, se)
	if grid[0][0] != 1 {
		t.Error("nw corner bit not placed at (0,0)")
	}
	if grid[7][7] != 1 {
		t.Error("se corner bit not placed at (7,7)")
	}
}
