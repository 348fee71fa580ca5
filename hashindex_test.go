// This is free and unencumbered software released into the public domain.

package golly

import "testing"

func TestFindLeafCanonicalises(t *testing.T) {
	a := newArena()
	idx := newHashIndex(a, nil)

	id1, created1 := idx.findLeaf(1, 2, 3, 4)
	if !created1 {
		t.Fatal("first findLeaf call should report created=true")
	}
	id2, created2 := idx.findLeaf(1, 2, 3, 4)
	if created2 {
		t.Fatal("second findLeaf call with the same corners should report created=false")
	}
	if id1 != id2 {
		t.Fatalf("structurally identical leaves got different ids: %d vs %d", id1, id2)
	}

	id3, _ := idx.findLeaf(1, 2, 3, 5)
	if id3 == id1 {
		t.Fatal("structurally different leaves must not collide")
	}
}

func TestFindInternalCanonicalises(t *testing.T) {
	a := newArena()
	idx := newHashIndex(a, nil)
	leaf, _ := idx.findLeaf(0, 0, 0, 0)

	n1 := idx.findInternal(3, leaf, leaf, leaf, leaf)
	n2 := idx.findInternal(3, leaf, leaf, leaf, leaf)
	if n1 != n2 {
		t.Fatalf("identical internal nodes got different ids: %d vs %d", n1, n2)
	}

	// Same children, different depth: must not canonicalise together.
	n3 := idx.findInternal(4, leaf, leaf, leaf, leaf)
	if n3 == n1 {
		t.Fatal("internal nodes at different depths must not collide")
	}
}

func TestHashIndexResizeGrowsAndPreservesLookup(t *testing.T) {
	a := newArena()
	idx := newHashIndex(a, nil)
	initialBuckets := len(idx.buckets)

	ids := make([]nodeID, 0, 512)
	for i := uint16(0); i < 512; i++ {
		id, _ := idx.findLeaf(i, i+1, i+2, i+3)
		ids = append(ids, id)
	}
	if len(idx.buckets) <= initialBuckets {
		t.Fatalf("bucket count did not grow: started at %d, now %d", initialBuckets, len(idx.buckets))
	}

	for i := uint16(0); i < 512; i++ {
		id, created := idx.findLeaf(i, i+1, i+2, i+3)
		if created {
			t.Fatalf("leaf %d should already exist after resize", i)
		}
		if id != ids[i] {
			t.Fatalf("leaf %d resolved to a different id after resize: %d vs %d", i, id, ids[i])
		}
	}
}
