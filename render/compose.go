// =======================
// render/compose.go
// =======================

package render

import (
	"math"

	"polyspin/geometry"
)

// Compositor renders shape lists into frames. It holds no per-frame
// state, so one compositor can serve any number of Compose calls; the
// caller owns the rotation angles and advances them between frames.
type Compositor struct {
	Config Config
	Ramp   Ramp

	// DepthTest switches overlap resolution from draw order (later
	// shapes and later points overwrite) to nearest depth wins.
	DepthTest bool
}

// NewCompositor builds a compositor from a config. A nil ramp selects
// DefaultRamp.
func NewCompositor(cfg Config, ramp Ramp) *Compositor {
	if ramp == nil {
		ramp = DefaultRamp
	}
	return &Compositor{Config: cfg, Ramp: ramp}
}

// Compose renders one frame: every shape is sampled into points, the
// points are rotated about the shape's own origin by the shared angles,
// projected, and shaded into a cols x rows grid. Faces contribute their
// interior plus their outline; other shapes just their outline. Points
// that land outside the grid or behind the camera are dropped.
//
// Shapes draw in slice order. Without the depth test a later write to a
// cell simply replaces the earlier one; with it, the nearest point seen
// at each cell keeps the cell regardless of order.
func (c *Compositor) Compose(shapes []geometry.Shape, a geometry.Angles, cols, rows int) *FrameGrid {
	grid := NewFrameGrid(cols, rows, c.Config.Background)
	if cols <= 0 || rows <= 0 {
		return grid
	}
	proj := NewProjector(c.Config, cols, rows)

	var nearest *Matrix[float64]
	if c.DepthTest {
		nearest = NewMatrix[float64](cols, rows)
		nearest.Fill(math.Inf(1))
	}

	var pts []geometry.Point3D
	for _, s := range shapes {
		pts = pts[:0]
		if n := len(s.Vertices); n == 3 || n == 4 {
			pts = s.AppendFillPoints(pts, c.Config.FaceSteps, c.Config.FaceSteps)
		}
		// Outline last so silhouettes stay crisp over the fill.
		pts = s.AppendEdgePoints(pts, c.Config.EdgeSteps)

		for _, p := range pts {
			sp, ok := proj.Project(p.RotateAround(s.Origin, a))
			if !ok || !grid.InBounds(sp.Col, sp.Row) {
				continue
			}
			if nearest != nil {
				if sp.Depth >= nearest.At(sp.Col, sp.Row) {
					continue
				}
				nearest.Set(sp.Col, sp.Row, sp.Depth)
			}
			grid.Set(sp.Col, sp.Row, c.Ramp.Shade(sp.Depth, c.Config.NearDepth, c.Config.FarDepth))
		}
	}
	return grid
}
