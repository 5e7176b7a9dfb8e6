package random

import "testing"

// TestNewRepeatable verifies equal seeds give equal streams
func TestNewRepeatable(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}

	c := New(43)
	same := true
	a = New(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != c.Float64() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

// TestUniformRange verifies Uniform and Upto map the unit interval
func TestUniformRange(t *testing.T) {
	seq := &Sequence{Values: []float64{0, 0.5, 0.999}}
	want := []float64{-10, 0, 9.98}
	for i, w := range want {
		got := Uniform(seq, -10, 10)
		if got < w-0.001 || got > w+0.001 {
			t.Errorf("Uniform #%d = %v, want %v", i, got, w)
		}
	}

	seq = &Sequence{Values: []float64{0.25}}
	if got := Upto(seq, 40); got != 10 {
		t.Errorf("Upto = %v, want 10", got)
	}
	if seq.Calls() != 1 {
		t.Errorf("Calls = %d, want 1", seq.Calls())
	}
}
