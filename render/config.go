// =======================
// render/config.go
// =======================

package render

const (
	DefaultViewDistance = 20.0 // camera distance to the projection plane
	DefaultScale        = 1.5  // world units to row cells
	DefaultAspect       = 2.0  // extra column stretch; terminal cells are tall
	DefaultEpsilon      = 1e-6 // minimum distance in front of the camera
	DefaultEdgeSteps    = 100  // segments per sampled edge
	DefaultFaceSteps    = 48   // parameter lattice per face axis
	DefaultBackground   = ' '
)

// Config carries the camera and sampling parameters for a compositor.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	ViewDistance float64
	Scale        float64
	Aspect       float64
	Epsilon      float64
	NearDepth    float64 // depth mapped to the densest ramp character
	FarDepth     float64 // depth mapped to the sparsest ramp character
	EdgeSteps    int
	FaceSteps    int
	Background   rune
}

// DefaultConfig is tuned for shapes a few units across on roughly 80x24
// terminals. The shading band straddles the view distance so rotation
// through the origin plane sweeps the middle of the ramp.
func DefaultConfig() Config {
	return Config{
		ViewDistance: DefaultViewDistance,
		Scale:        DefaultScale,
		Aspect:       DefaultAspect,
		Epsilon:      DefaultEpsilon,
		NearDepth:    DefaultViewDistance / 2,
		FarDepth:     DefaultViewDistance * 2,
		EdgeSteps:    DefaultEdgeSteps,
		FaceSteps:    DefaultFaceSteps,
		Background:   DefaultBackground,
	}
}
