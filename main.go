// main.go
package main

import (
	"flag"
	"fmt"
	"time"

	"polyspin/geometry"
	"polyspin/render"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	shapeName := flag.String("shape", "scene", "Shape to animate: scene, triangle, quad, cube, line")
	fps := flag.Int("fps", 25, "Animation frames per second")
	step := flag.Float64("step", 0.02, "Auto-rotation step per frame in radians")
	depthTest := flag.Bool("depth", false, "Resolve overlaps by nearest depth instead of draw order")
	rampChars := flag.String("ramp", "", "Override the shading characters, emptiest first")
	width := flag.Int("width", 80, "Grid width for non-interactive modes")
	height := flag.Int("height", 24, "Grid height for non-interactive modes")
	frames := flag.Int("frames", 0, "Rotation ticks to advance before -oneshot/-snapshot output")
	oneshot := flag.Bool("oneshot", false, "Render one frame to stdout and exit")
	snapshotPath := flag.String("snapshot", "", "Render one frame to a PNG file and exit")
	bench := flag.Bool("bench", false, "Benchmark frame composition and exit")
	profileIt := flag.Bool("profile", false, "Write a CPU profile to the working directory")
	flag.Parse()

	if *fps < 1 || *fps > 120 {
		log.Fatalf("invalid fps %d, supported range: 1-120", *fps)
	}
	if *width < 1 || *height < 1 {
		log.Fatalf("invalid grid %dx%d, both sides must be positive", *width, *height)
	}
	if *frames < 0 {
		log.Fatalf("invalid frame count %d", *frames)
	}

	shapes, err := sceneFor(*shapeName)
	if err != nil {
		log.Fatalf("failed to pick scene: %v", err)
	}

	var ramp render.Ramp
	if *rampChars != "" {
		ramp = render.Ramp(*rampChars)
	}
	comp := render.NewCompositor(render.DefaultConfig(), ramp)
	comp.DepthTest = *depthTest

	if *profileIt {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	if *bench {
		runs := *frames
		if runs == 0 {
			runs = 60
		}
		sizes := [][2]int{{20, 10}, {80, 24}, {160, 48}}
		results, err := render.BenchmarkCompose(comp, shapes, sizes, runs)
		if err != nil {
			log.Fatalf("benchmark failed: %v", err)
		}
		render.PrintBenchmarkResults(results)
		return
	}

	if *oneshot || *snapshotPath != "" {
		angles := advance(geometry.Angles{}, *step, *frames)
		grid := comp.Compose(shapes, angles, *width, *height)
		if *oneshot {
			fmt.Print(grid.String())
		}
		if *snapshotPath != "" {
			if err := render.SnapshotFile(grid, *snapshotPath); err != nil {
				log.Fatalf("snapshot failed: %v", err)
			}
			log.Infof("wrote %dx%d snapshot to %s", *width, *height, *snapshotPath)
		}
		return
	}

	log.Infof("starting %s scene at %d fps, step %.3f, depth test %v",
		*shapeName, *fps, *step, *depthTest)
	if err := runAnimation(comp, shapes, *shapeName, *fps, *step); err != nil {
		log.Fatalf("animation failed: %v", err)
	}
}

// sceneFor maps a -shape value to the shapes the driver animates.
func sceneFor(name string) ([]geometry.Shape, error) {
	switch name {
	case "scene":
		return geometry.DemoScene(), nil
	case "triangle":
		return []geometry.Shape{geometry.NewTriangle(
			geometry.Point3D{X: -5, Y: -3},
			geometry.Point3D{X: 5, Y: -3},
			geometry.Point3D{Y: 5},
			geometry.Point3D{},
		)}, nil
	case "quad":
		return []geometry.Shape{geometry.NewQuad(
			geometry.Point3D{X: -5, Y: -4},
			geometry.Point3D{X: 5, Y: -4},
			geometry.Point3D{X: 5, Y: 4},
			geometry.Point3D{X: -5, Y: 4},
			geometry.Point3D{},
		)}, nil
	case "cube":
		return []geometry.Shape{geometry.NewCube(geometry.Point3D{}, 6)}, nil
	case "line":
		return []geometry.Shape{geometry.NewLine(
			geometry.Point3D{X: -5, Y: -2, Z: -2.5},
			geometry.Point3D{X: 5, Y: 2, Z: 2.5},
		)}, nil
	default:
		return nil, fmt.Errorf("unknown shape %q, want scene, triangle, quad, cube or line", name)
	}
}

// advance moves the rotation forward by ticks animation steps. The axes
// run at staggered rates so the spin never looks like a flat turntable.
func advance(a geometry.Angles, step float64, ticks int) geometry.Angles {
	t := float64(ticks)
	return geometry.Angles{
		X: a.X + step*t,
		Y: a.Y + step*1.5*t,
		Z: a.Z + step*0.75*t,
	}
}

// spinView is the interactive animation state. Everything in it is
// owned by the render loop goroutine; the input goroutine only forwards
// raw events.
type spinView struct {
	shapes     []geometry.Shape
	comp       *render.Compositor
	name       string
	angles     geometry.Angles
	step       float64
	auto       bool
	frameCount int
	note       string
}

func (v *spinView) update() {
	if v.auto {
		v.angles = advance(v.angles, v.step, 1)
	}
	v.frameCount++
}

// handleKey applies one key event and reports whether to quit.
func (v *spinView) handleKey(s tcell.Screen, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.angles.X -= 0.15
	case tcell.KeyDown:
		v.angles.X += 0.15
	case tcell.KeyLeft:
		v.angles.Y -= 0.15
	case tcell.KeyRight:
		v.angles.Y += 0.15
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r':
			v.angles = geometry.Angles{}
		case ' ', 'a':
			v.auto = !v.auto
		case 'd':
			v.comp.DepthTest = !v.comp.DepthTest
		case '+', '=':
			if v.step < 0.2 {
				v.step += 0.005
			}
		case '-', '_':
			if v.step > 0.005 {
				v.step -= 0.005
			}
		case 's', 'S':
			v.snapshot(s)
		}
	}
	return false
}

// snapshot writes the current frame as a PNG next to the binary and
// leaves the outcome in the status line, since stderr is off limits
// while the screen is live.
func (v *spinView) snapshot(s tcell.Screen) {
	w, h := s.Size()
	grid := v.comp.Compose(v.shapes, v.angles, w, h)
	name := fmt.Sprintf("polyspin-%d.png", time.Now().Unix())
	if err := render.SnapshotFile(grid, name); err != nil {
		v.note = fmt.Sprintf("snapshot failed: %v", err)
		return
	}
	v.note = "wrote " + name
}

func (v *spinView) draw(s tcell.Screen, w, h int) {
	grid := v.comp.Compose(v.shapes, v.angles, w, h)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			ch := grid.At(col, row)
			if ch == grid.Background() {
				continue
			}
			s.SetContent(col, row, ch, nil, style)
		}
	}

	uiText := "POLYSPIN | Arrows:nudge Space:pause D:depth R:reset S:png +/-:speed Q:quit"
	drawText(s, 1, 1, style, uiText)

	info := fmt.Sprintf("shape: %s | grid: %dx%d | depth test: %v | step: %.3f | frame: %d",
		v.name, w, h, v.comp.DepthTest, v.step, v.frameCount)
	if v.note != "" {
		info += " | " + v.note
	}
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

func runAnimation(comp *render.Compositor, shapes []geometry.Shape, name string, fps int, step float64) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	view := &spinView{
		shapes: shapes,
		comp:   comp,
		name:   name,
		step:   step,
		auto:   true,
	}

	// Input pump; PollEvent returns nil once the screen is finalized.
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if view.handleKey(s, ev) {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-ticker.C:
			view.update()
			s.Clear()
			w, h := s.Size()

			if w <= 15 || h <= 8 {
				continue
			}

			view.draw(s, w, h)
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
