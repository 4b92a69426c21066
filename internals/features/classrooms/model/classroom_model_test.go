package model

import "testing"

func TestRandomClassIDRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id, err := RandomClassID()
		if err != nil {
			t.Fatalf("RandomClassID: %v", err)
		}
		if id < 100000 || id > 999999 {
			t.Fatalf("RandomClassID = %d, want a 6-digit id", id)
		}
	}
}

func TestRandomClassIDVaries(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		id, err := RandomClassID()
		if err != nil {
			t.Fatalf("RandomClassID: %v", err)
		}
		seen[id] = true
	}
	// 50 draws from a 900k keyspace colliding down to a single value would
	// mean the generator is broken
	if len(seen) < 2 {
		t.Errorf("RandomClassID produced %d distinct values in 50 draws", len(seen))
	}
}
