// =======================
// geometry/interpolate.go
// =======================

package geometry

// AppendEdgePoints appends the shape's outline sampled as a point cloud
// and returns the extended slice. Each edge contributes exactly steps+1
// points at t = i/steps, so both endpoints are always present and
// consecutive points are evenly spaced. steps below 1 is treated as 1.
func (s Shape) AppendEdgePoints(dst []Point3D, steps int) []Point3D {
	if steps < 1 {
		steps = 1
	}
	for _, e := range s.EdgePairs() {
		a, b := s.Vertices[e[0]], s.Vertices[e[1]]
		for i := 0; i <= steps; i++ {
			dst = append(dst, Lerp(a, b, float64(i)/float64(steps)))
		}
	}
	return dst
}

// EdgePoints is AppendEdgePoints into a fresh slice.
func (s Shape) EdgePoints(steps int) []Point3D {
	pairs := s.EdgePairs()
	if steps < 1 {
		steps = 1
	}
	return s.AppendEdgePoints(make([]Point3D, 0, len(pairs)*(steps+1)), steps)
}

// AppendFillPoints appends interior samples of the shape's face and
// returns the extended slice. Triangles are swept barycentrically and
// quads bilinearly, each on a (uSteps+1) x (vSteps+1) parameter lattice.
// Shapes that are not single faces fall back to their outline.
func (s Shape) AppendFillPoints(dst []Point3D, uSteps, vSteps int) []Point3D {
	if uSteps < 1 {
		uSteps = 1
	}
	if vSteps < 1 {
		vSteps = 1
	}
	switch len(s.Vertices) {
	case 3:
		return s.appendTriangleFill(dst, uSteps, vSteps)
	case 4:
		return s.appendQuadFill(dst, uSteps, vSteps)
	default:
		return s.AppendEdgePoints(dst, uSteps)
	}
}

// FillPoints is AppendFillPoints into a fresh slice.
func (s Shape) FillPoints(uSteps, vSteps int) []Point3D {
	return s.AppendFillPoints(nil, uSteps, vSteps)
}

// appendTriangleFill samples P = v0 + (v1-v0)u + (v2-v0)v over the
// lattice points with u+v <= 1. The inclusion test is done on integers
// (ui*vSteps + vi*uSteps <= uSteps*vSteps) so boundary points on the
// diagonal never drop out to float rounding.
func (s Shape) appendTriangleFill(dst []Point3D, uSteps, vSteps int) []Point3D {
	v0, v1, v2 := s.Vertices[0], s.Vertices[1], s.Vertices[2]
	du := v1.Sub(v0)
	dv := v2.Sub(v0)
	for ui := 0; ui <= uSteps; ui++ {
		for vi := 0; vi <= vSteps; vi++ {
			if ui*vSteps+vi*uSteps > uSteps*vSteps {
				continue
			}
			u := float64(ui) / float64(uSteps)
			v := float64(vi) / float64(vSteps)
			dst = append(dst, v0.Add(du.Scale(u)).Add(dv.Scale(v)))
		}
	}
	return dst
}

// appendQuadFill sweeps the v0->v1 edge against the v3->v2 edge and
// interpolates between them, covering the full bilinear patch.
func (s Shape) appendQuadFill(dst []Point3D, uSteps, vSteps int) []Point3D {
	v0, v1, v2, v3 := s.Vertices[0], s.Vertices[1], s.Vertices[2], s.Vertices[3]
	for ui := 0; ui <= uSteps; ui++ {
		u := float64(ui) / float64(uSteps)
		top := Lerp(v0, v1, u)
		bottom := Lerp(v3, v2, u)
		for vi := 0; vi <= vSteps; vi++ {
			dst = append(dst, Lerp(top, bottom, float64(vi)/float64(vSteps)))
		}
	}
	return dst
}
