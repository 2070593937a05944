package render

import "math"

// Ramp orders shading characters from emptiest to densest.
type Ramp []rune

// DefaultRamp is the classic ASCII depth ramp.
var DefaultRamp = Ramp(" .,-~:;=!*#$@")

// Shade picks the character for a depth inside the [near, far] band.
// Depth grows away from the camera, so depths at or inside near clamp to
// the densest character and depths at or beyond far to the sparsest.
// A collapsed or inverted band shades everything dense.
func (r Ramp) Shade(depth, near, far float64) rune {
	if len(r) == 0 {
		return DefaultBackground
	}
	t := 0.0
	if far > near {
		t = (depth - near) / (far - near)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return r[int(math.Round((1-t)*float64(len(r)-1)))]
}
