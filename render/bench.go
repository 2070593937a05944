// =======================
// render/bench.go
// =======================

package render

import (
	"fmt"
	"time"

	"polyspin/geometry"
)

// BenchmarkInfo holds compose performance metrics for one grid size.
type BenchmarkInfo struct {
	Cols         int
	Rows         int
	Points       int // samples fed to the projector per frame
	Frames       int
	TimePerFrame time.Duration
	FramesPerSec float64
	CellsPerSec  float64
}

// BenchmarkCompose times full-frame composition of shapes across grid
// sizes, advancing the rotation between frames the way a driver would.
func BenchmarkCompose(c *Compositor, shapes []geometry.Shape, sizes [][2]int, frames int) ([]BenchmarkInfo, error) {
	if frames < 1 {
		return nil, fmt.Errorf("benchmark needs at least one frame, got %d", frames)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("benchmark needs at least one grid size")
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("benchmark needs at least one shape")
	}

	points := 0
	for _, s := range shapes {
		if n := len(s.Vertices); n == 3 || n == 4 {
			points += len(s.FillPoints(c.Config.FaceSteps, c.Config.FaceSteps))
		}
		points += len(s.EdgePoints(c.Config.EdgeSteps))
	}

	results := make([]BenchmarkInfo, 0, len(sizes))
	for _, size := range sizes {
		cols, rows := size[0], size[1]
		if cols < 1 || rows < 1 {
			return nil, fmt.Errorf("invalid benchmark grid size %dx%d", cols, rows)
		}

		var a geometry.Angles
		start := time.Now()
		for i := 0; i < frames; i++ {
			c.Compose(shapes, a, cols, rows)
			a.X += 0.03
			a.Y += 0.02
			a.Z += 0.01
		}
		duration := time.Since(start)
		seconds := duration.Seconds()

		results = append(results, BenchmarkInfo{
			Cols:         cols,
			Rows:         rows,
			Points:       points,
			Frames:       frames,
			TimePerFrame: duration / time.Duration(frames),
			FramesPerSec: float64(frames) / seconds,
			CellsPerSec:  float64(cols*rows*frames) / seconds,
		})
	}
	return results, nil
}

// PrintBenchmarkResults displays benchmark results in a formatted table.
func PrintBenchmarkResults(results []BenchmarkInfo) {
	fmt.Println("POLYSPIN Compose Benchmark Results")
	fmt.Println("==================================")
	fmt.Printf("%-10s | %-8s | %-12s | %-10s | %-14s\n",
		"Grid", "Points", "Time/Frame", "FPS", "Cells/Sec")
	fmt.Println("-----------|----------|--------------|------------|---------------")

	for _, result := range results {
		fmt.Printf("%-10s | %-8d | %-12s | %-10.1f | %-14.0f\n",
			fmt.Sprintf("%dx%d", result.Cols, result.Rows),
			result.Points,
			result.TimePerFrame.String(),
			result.FramesPerSec,
			result.CellsPerSec)
	}
}
