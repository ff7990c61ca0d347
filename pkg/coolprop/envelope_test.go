package coolprop

import "testing"

func TestFilledPrefix(t *testing.T) {
	tau := []float64{1.1, 1.2, 1.3, 0, 0}
	delta := []float64{0.9, 0.8, 0, 0, 0}
	m1 := []float64{-1, -2, -3, 0, 0}
	if n := filledPrefix(tau, delta, m1); n != 3 {
		t.Fatalf("filledPrefix = %d, want 3", n)
	}

	// A zero inside the data is kept as long as a sibling array is non-zero
	// at the same position.
	if n := filledPrefix([]float64{0, 0}, []float64{0, 5}); n != 2 {
		t.Fatalf("filledPrefix = %d, want 2", n)
	}

	if n := filledPrefix([]float64{0, 0, 0}); n != 0 {
		t.Fatalf("filledPrefix = %d, want 0", n)
	}
}

func TestReshapeCompositions(t *testing.T) {
	flat := []float64{0.1, 0.9, 0.2, 0.8, 0.3, 0.7}
	rows := reshapeCompositions(flat, 3, 2)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	want := [][]float64{{0.1, 0.9}, {0.2, 0.8}, {0.3, 0.7}}
	for i, row := range rows {
		if len(row) != 2 || row[0] != want[i][0] || row[1] != want[i][1] {
			t.Fatalf("row %d = %v, want %v", i, row, want[i])
		}
	}

	if rows := reshapeCompositions(nil, 0, 2); len(rows) != 0 {
		t.Fatalf("empty reshape produced %d rows", len(rows))
	}
}
