// =======================
// geometry/shape_test.go
// =======================

package geometry

import "testing"

func TestEdgePairsCompleteGraph(t *testing.T) {
	tests := []struct {
		name     string
		vertices int
		want     int
	}{
		{"single vertex", 1, 0},
		{"line", 2, 1},
		{"triangle", 3, 3},
		{"quad with diagonals", 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Shape{Vertices: make([]Point3D, tt.vertices)}
			pairs := s.EdgePairs()
			if len(pairs) != tt.want {
				t.Errorf("Expected %d edge pairs, got %d", tt.want, len(pairs))
			}
			seen := make(map[[2]int]bool)
			for _, p := range pairs {
				if p[0] >= p[1] {
					t.Errorf("pair %v is not ordered", p)
				}
				if seen[p] {
					t.Errorf("pair %v appears twice", p)
				}
				seen[p] = true
			}
		})
	}
}

func TestEdgePairsExplicitTable(t *testing.T) {
	table := [][2]int{{0, 1}, {1, 2}}
	s := Shape{Vertices: make([]Point3D, 4), Edges: table}

	pairs := s.EdgePairs()
	if len(pairs) != len(table) {
		t.Fatalf("Expected the explicit table of %d pairs, got %d", len(table), len(pairs))
	}
	for i, p := range pairs {
		if p != table[i] {
			t.Errorf("pair %d = %v, want %v", i, p, table[i])
		}
	}
}

func TestNewLine(t *testing.T) {
	a := Point3D{X: -2, Y: 4, Z: 0}
	b := Point3D{X: 6, Y: -4, Z: 2}

	s := NewLine(a, b)
	if len(s.Vertices) != 2 {
		t.Fatalf("Expected 2 vertices, got %d", len(s.Vertices))
	}
	want := Point3D{X: 2, Y: 0, Z: 1}
	if !approxPoint(s.Origin, want) {
		t.Errorf("Expected midpoint origin %+v, got %+v", want, s.Origin)
	}
}

func TestNewCube(t *testing.T) {
	center := Point3D{X: 1, Y: -2, Z: 3}
	s := NewCube(center, 4)

	if len(s.Vertices) != 8 {
		t.Fatalf("Expected 8 vertices, got %d", len(s.Vertices))
	}
	if len(s.Edges) != 12 {
		t.Fatalf("Expected 12 edges, got %d", len(s.Edges))
	}
	if !approxPoint(s.Origin, center) {
		t.Errorf("Expected origin %+v, got %+v", center, s.Origin)
	}
	for i, v := range s.Vertices {
		d := v.Sub(center)
		for _, c := range []float64{d.X, d.Y, d.Z} {
			if !approx(c, 2) && !approx(c, -2) {
				t.Errorf("vertex %d offset %+v is not half the edge length from center", i, d)
			}
		}
	}

	// Every listed edge joins corners that differ on exactly one axis.
	for _, e := range s.Edges {
		d := s.Vertices[e[0]].Sub(s.Vertices[e[1]])
		axes := 0
		for _, c := range []float64{d.X, d.Y, d.Z} {
			if !approx(c, 0) {
				axes++
			}
		}
		if axes != 1 {
			t.Errorf("edge %v spans %d axes, want 1", e, axes)
		}
	}
}

func TestDemoScene(t *testing.T) {
	shapes := DemoScene()
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(shapes))
	}
	if got := len(shapes[0].Vertices); got != 3 {
		t.Errorf("Expected a triangle first, got %d vertices", got)
	}
	if got := len(shapes[1].Vertices); got != 4 {
		t.Errorf("Expected a quad second, got %d vertices", got)
	}
	if approxPoint(shapes[0].Origin, shapes[1].Origin) {
		t.Error("Expected the shapes to rotate about distinct origins")
	}
}
