// =======================
// render/grid_test.go
// =======================

package render

import "testing"

func TestMatrixBounds(t *testing.T) {
	m := NewMatrix[int](4, 3)

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 3, 2, true},
		{"col overflow", 4, 0, false},
		{"row overflow", 0, 3, false},
		{"negative col", -1, 0, false},
		{"negative row", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.InBounds(tt.col, tt.row); got != tt.want {
				t.Errorf("Expected InBounds(%d, %d) to be %v, got %v", tt.col, tt.row, tt.want, got)
			}
		})
	}
}

func TestMatrixSetAt(t *testing.T) {
	m := NewMatrix[float64](3, 2)

	m.Set(2, 1, 7.5)
	if got := m.At(2, 1); got != 7.5 {
		t.Errorf("Expected 7.5, got %v", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("Expected an untouched cell to stay zero, got %v", got)
	}

	m.Set(3, 0, 9) // dropped
	m.Set(0, -1, 9)
	if got := m.At(3, 0); got != 0 {
		t.Errorf("Expected out-of-bounds reads to return zero, got %v", got)
	}
}

func TestMatrixFill(t *testing.T) {
	m := NewMatrix[int](2, 2)
	m.Fill(42)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if got := m.At(col, row); got != 42 {
				t.Errorf("Expected 42 at (%d, %d), got %d", col, row, got)
			}
		}
	}
}

func TestMatrixNonPositiveSizes(t *testing.T) {
	m := NewMatrix[int](-3, 5)
	if m.Cols() != 0 {
		t.Errorf("Expected negative sizes to clamp to zero, got %d cols", m.Cols())
	}
	m.Set(0, 0, 1)
	if m.At(0, 0) != 0 {
		t.Error("Expected an empty matrix to swallow all access")
	}
}

func TestFrameGridBackground(t *testing.T) {
	g := NewFrameGrid(4, 2, '.')

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if got := g.At(col, row); got != '.' {
				t.Errorf("Expected background at (%d, %d), got %q", col, row, got)
			}
		}
	}
	if got := g.At(99, 99); got != '.' {
		t.Errorf("Expected background outside the grid, got %q", got)
	}
}

func TestFrameGridString(t *testing.T) {
	g := NewFrameGrid(3, 2, '.')
	g.Set(0, 0, 'a')
	g.Set(2, 1, 'b')
	g.Set(5, 5, 'x') // dropped

	want := "a..\n..b\n"
	if got := g.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFrameGridEmptyString(t *testing.T) {
	g := NewFrameGrid(0, 0, ' ')
	if got := g.String(); got != "" {
		t.Errorf("Expected an empty render, got %q", got)
	}
}
