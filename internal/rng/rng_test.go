package rng

import "testing"

func TestSeedDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical prefixes")
	}
}

func TestFloat64Range(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 = %v out of [0,1)", v)
		}
	}
}

func TestSignedRange(t *testing.T) {
	r := New(7)
	sawNeg, sawPos := false, false
	for i := 0; i < 1000; i++ {
		v := r.Signed()
		if v < -1 || v >= 1 {
			t.Fatalf("Signed = %v out of [-1,1)", v)
		}
		if v < 0 {
			sawNeg = true
		} else {
			sawPos = true
		}
	}
	if !sawNeg || !sawPos {
		t.Error("Signed never changed sign over 1000 draws")
	}
}

func TestRangeBounds(t *testing.T) {
	r := New(3)
	for i := 0; i < 1000; i++ {
		v := r.Range(5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Range = %v out of [5,10)", v)
		}
	}
}

func TestIndexBounds(t *testing.T) {
	r := New(9)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		idx := r.Index(6)
		if idx < 0 || idx >= 6 {
			t.Fatalf("Index = %d out of [0,6)", idx)
		}
		seen[idx] = true
	}
	if len(seen) < 6 {
		t.Errorf("only %d of 6 indices drawn over 1000 tries", len(seen))
	}
}

func TestZeroSeedValid(t *testing.T) {
	r := New(0)
	if v := r.Float64(); v < 0 || v >= 1 {
		t.Errorf("seed 0 Float64 = %v", v)
	}
}
