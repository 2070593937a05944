// =======================
// render/illum_test.go
// =======================

package render

import "testing"

func rampIndex(t *testing.T, ch rune) int {
	t.Helper()
	for i, r := range DefaultRamp {
		if r == ch {
			return i
		}
	}
	t.Fatalf("rune %q is not in the default ramp", ch)
	return -1
}

func TestShadeBands(t *testing.T) {
	tests := []struct {
		name  string
		depth float64
		want  rune
	}{
		{"at near clamps densest", 0, '@'},
		{"inside near clamps densest", -25, '@'},
		{"quarter of the band", 25, '*'},
		{"middle of the band", 50, ';'},
		{"three quarters", 75, '-'},
		{"at far clamps sparsest", 100, ' '},
		{"beyond far clamps sparsest", 400, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultRamp.Shade(tt.depth, 0, 100)
			if got != tt.want {
				t.Errorf("Expected %q at depth %v, got %q", tt.want, tt.depth, got)
			}
		})
	}
}

func TestShadeMonotonic(t *testing.T) {
	prev := len(DefaultRamp)
	for depth := 0.0; depth <= 100; depth += 2.5 {
		idx := rampIndex(t, DefaultRamp.Shade(depth, 0, 100))
		if idx > prev {
			t.Fatalf("density rose from index %d to %d at depth %v", prev, idx, depth)
		}
		prev = idx
	}
}

func TestShadeDegenerateBand(t *testing.T) {
	if got := DefaultRamp.Shade(5, 10, 10); got != '@' {
		t.Errorf("Expected a collapsed band to shade densest, got %q", got)
	}
	if got := DefaultRamp.Shade(5, 40, 10); got != '@' {
		t.Errorf("Expected an inverted band to shade densest, got %q", got)
	}
}

func TestShadeEmptyRamp(t *testing.T) {
	if got := Ramp(nil).Shade(5, 0, 10); got != DefaultBackground {
		t.Errorf("Expected the background rune, got %q", got)
	}
}

func TestShadeSingleRune(t *testing.T) {
	if got := Ramp("#").Shade(55, 0, 100); got != '#' {
		t.Errorf("Expected the only rune, got %q", got)
	}
}
