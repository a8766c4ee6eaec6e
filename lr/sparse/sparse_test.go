package sparse

import (
	"testing"
)

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 5, 1)
	M.Set(2, 1, 7)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(2, 1); v != 7 {
		t.Errorf("expected M(2,1) to be 7, is %d", v)
	}
	if v := M.Value(9, 9); v != M.NullValue() {
		t.Errorf("expected M(9,9) to be null, is %d", v)
	}
	if v := M.Value(-1, 0); v != M.NullValue() {
		t.Errorf("expected M(-1,0) to be null, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
}

func TestOverwriteAndRemove(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(1, 1, 5).Set(1, 1, 6)
	if v := M.Value(1, 1); v != 6 || M.ValueCount() != 1 {
		t.Errorf("expected single value 6 at (1,1), have %d (count %d)", v, M.ValueCount())
	}
	M.Set(1, 1, -1)
	if M.ValueCount() != 0 {
		t.Errorf("expected setting the null value to remove the entry")
	}
	M.Set(0, 0, -1)
	if M.ValueCount() != 0 {
		t.Errorf("expected setting the null value on an empty position to be a no-op")
	}
}

func TestRowMajorOrderAndGrowth(t *testing.T) {
	M := NewIntMatrix(1, 1, 0)
	M.Set(4, 0, 40).Set(0, 7, 7).Set(4, 2, 42).Set(1, 1, 11)
	if M.M() != 5 || M.N() != 8 {
		t.Errorf("expected matrix to grow to 5x8, is %dx%d", M.M(), M.N())
	}
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	expected := []int32{7, 11, 40, 42}
	if len(seen) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, seen)
	}
	for k := range expected {
		if seen[k] != expected[k] {
			t.Errorf("expected %v, have %v", expected, seen)
			break
		}
	}
}

func TestNegativeIndexPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set with negative index to panic")
		}
	}()
	NewIntMatrix(1, 1, 0).Set(-1, 0, 1)
}
