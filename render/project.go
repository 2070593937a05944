// =======================
// render/project.go
// =======================

package render

import (
	"math"

	"polyspin/geometry"
)

// ScreenPoint is a projected point: a grid cell plus the depth that
// survives projection for shading and depth tests.
type ScreenPoint struct {
	Col, Row int
	Depth    float64
}

// Projector maps world coordinates onto a grid of the given size. The
// grid center is the projection of the world origin.
type Projector struct {
	cfg       Config
	centerCol int
	centerRow int
}

// NewProjector binds a config to a cols x rows grid.
func NewProjector(cfg Config, cols, rows int) Projector {
	return Projector{cfg: cfg, centerCol: cols / 2, centerRow: rows / 2}
}

// Project maps p to a grid cell. The second return is false when the
// point sits at or behind the camera plane, where the perspective ratio
// would blow up or flip; such points are simply dropped.
//
// Positive world Y is up, so rows decrease as Y grows. Columns get the
// aspect stretch on top of the shared scale. Depth is the distance from
// the camera plane, smaller meaning closer.
func (pr Projector) Project(p geometry.Point3D) (ScreenPoint, bool) {
	denom := p.Z + pr.cfg.ViewDistance
	if denom <= pr.cfg.Epsilon {
		return ScreenPoint{}, false
	}
	ratio := pr.cfg.ViewDistance / denom
	return ScreenPoint{
		Col:   int(math.Round(p.X*pr.cfg.Scale*pr.cfg.Aspect*ratio)) + pr.centerCol,
		Row:   int(math.Round(-p.Y*pr.cfg.Scale*ratio)) + pr.centerRow,
		Depth: denom,
	}, true
}
