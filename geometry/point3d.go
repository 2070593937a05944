// =======================
// geometry/point3d.go
// =======================

package geometry

import "math"

// Point3D holds a 3D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Angles holds per-axis rotation amounts in radians.
type Angles struct{ X, Y, Z float64 }

// Add returns the component-wise sum p + o.
func (p Point3D) Add(o Point3D) Point3D {
	return Point3D{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns the component-wise difference p - o.
func (p Point3D) Sub(o Point3D) Point3D {
	return Point3D{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Scale returns p with every component multiplied by s.
func (p Point3D) Scale(s float64) Point3D {
	return Point3D{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Lerp linearly interpolates between a and b. t=0 yields a, t=1 yields b.
func Lerp(a, b Point3D, t float64) Point3D {
	return Point3D{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// RotateX rotates around the X axis using the standard rotation matrix.
func (p Point3D) RotateX(rad float64) Point3D {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Point3D{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// RotateY rotates around the Y axis.
func (p Point3D) RotateY(rad float64) Point3D {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Point3D{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// RotateZ rotates around the Z axis.
func (p Point3D) RotateZ(rad float64) Point3D {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Point3D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
		Z: p.Z,
	}
}

// Rotate applies the X, Y and Z axis rotations in that fixed order.
func (p Point3D) Rotate(a Angles) Point3D {
	return p.RotateX(a.X).RotateY(a.Y).RotateZ(a.Z)
}

// RotateAround rotates p about origin instead of the world origin: the
// point is shifted so origin sits at zero, rotated, and shifted back.
func (p Point3D) RotateAround(origin Point3D, a Angles) Point3D {
	return p.Sub(origin).Rotate(a).Add(origin)
}
