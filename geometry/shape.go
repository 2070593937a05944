// =======================
// geometry/shape.go
// =======================

package geometry

// Shape is a fixed set of vertices plus the point it rotates about.
// Shapes are immutable after construction; animation happens by rotating
// copies of the vertices, never by writing back into the shape.
type Shape struct {
	Vertices []Point3D
	Origin   Point3D

	// Edges lists vertex index pairs to connect. A nil table means the
	// shape is a complete graph: every pair of vertices forms an edge.
	Edges [][2]int
}

// EdgePairs returns the index pairs that make up the shape's outline.
// With an explicit table the table wins; otherwise every unordered pair
// (i, j) with i < j is an edge, so each connection appears exactly once.
func (s Shape) EdgePairs() [][2]int {
	if s.Edges != nil {
		return s.Edges
	}
	n := len(s.Vertices)
	if n < 2 {
		return nil
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// NewLine builds a two-vertex segment that rotates about its midpoint.
func NewLine(a, b Point3D) Shape {
	return Shape{
		Vertices: []Point3D{a, b},
		Origin:   Lerp(a, b, 0.5),
	}
}

// NewTriangle builds a three-vertex face rotating about origin.
func NewTriangle(v0, v1, v2, origin Point3D) Shape {
	return Shape{
		Vertices: []Point3D{v0, v1, v2},
		Origin:   origin,
	}
}

// NewQuad builds a four-vertex face rotating about origin. Vertices are
// expected in perimeter order; interior sampling sweeps v0->v1 against
// v3->v2.
func NewQuad(v0, v1, v2, v3, origin Point3D) Shape {
	return Shape{
		Vertices: []Point3D{v0, v1, v2, v3},
		Origin:   origin,
	}
}

// cubeEdges connects the 8 corners of a cube: 4 around the front face,
// 4 around the back face, 4 joining the faces.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// NewCube builds an axis-aligned cube centered on center with the given
// edge length. The explicit edge table keeps the outline to the 12 real
// edges instead of the 28 pairs a complete graph would draw.
func NewCube(center Point3D, size float64) Shape {
	h := size / 2
	verts := []Point3D{
		{X: center.X - h, Y: center.Y - h, Z: center.Z - h},
		{X: center.X + h, Y: center.Y - h, Z: center.Z - h},
		{X: center.X + h, Y: center.Y + h, Z: center.Z - h},
		{X: center.X - h, Y: center.Y + h, Z: center.Z - h},
		{X: center.X - h, Y: center.Y - h, Z: center.Z + h},
		{X: center.X + h, Y: center.Y - h, Z: center.Z + h},
		{X: center.X + h, Y: center.Y + h, Z: center.Z + h},
		{X: center.X - h, Y: center.Y + h, Z: center.Z + h},
	}
	edges := make([][2]int, len(cubeEdges))
	copy(edges, cubeEdges[:])
	return Shape{Vertices: verts, Origin: center, Edges: edges}
}

// DemoScene is the default animated scene: a triangle in front of a
// quad with overlapping footprints, so the two overlap resolution modes
// are visibly different.
func DemoScene() []Shape {
	tri := NewTriangle(
		Point3D{X: -5, Y: -2, Z: -2},
		Point3D{X: 5, Y: -2, Z: -2},
		Point3D{X: 0, Y: 4, Z: -2},
		Point3D{Z: -2},
	)
	quad := NewQuad(
		Point3D{X: -4, Y: -3, Z: 1},
		Point3D{X: 4, Y: -3, Z: 1},
		Point3D{X: 4, Y: 3, Z: 1},
		Point3D{X: -4, Y: 3, Z: 1},
		Point3D{Z: 1},
	)
	return []Shape{tri, quad}
}
