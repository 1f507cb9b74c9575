package gcolor

import (
	"math"
	"testing"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

func TestACESFilmZero(t *testing.T) {
	if got := ACESFilm(0); got != 0 {
		t.Errorf("ACESFilm(0) = %f, want 0", got)
	}
}

// Sampled sweep up to a generous HDR ceiling: the curve must never
// decrease and never leave [0,1].
func TestACESFilmMonotoneAndBounded(t *testing.T) {
	prev := 0.0
	for x := 0.0; x <= 100.0; x += 0.01 {
		y := ACESFilm(x)
		if y < 0.0 || y > 1.0 {
			t.Fatalf("ACESFilm(%f) = %f, out of [0,1]", x, y)
		}
		if y < prev {
			t.Fatalf("ACESFilm decreases at x=%f: %f < %f", x, y, prev)
		}
		prev = y
	}
}

func TestACESFilmSaturatesToWhite(t *testing.T) {
	// Well above the curve's knee the output must sit pinned at 1.0
	for _, x := range []float64{20, 50, 100} {
		if got := ACESFilm(x); got != 1.0 {
			t.Errorf("ACESFilm(%f) = %f, want 1.0", x, got)
		}
	}
}

func TestDevelopMatchesSpotChain(t *testing.T) {
	camToXYZ := gmath.Mat3{
		0.6227, 0.3389, 0.0026,
		0.2548, 0.9378, -0.1926,
		0.0156, -0.1330, 0.9425,
	}

	c := NewCameraRGB(0.3, 0.5, 0.2)

	via := XYZToACEScg(c.ToXYZ(camToXYZ))
	got := c.Develop(camToXYZ)

	if math.Abs(via.R-got.R) > 1e-9 || math.Abs(via.G-got.G) > 1e-9 || math.Abs(via.B-got.B) > 1e-9 {
		t.Errorf("Develop = %v, sequential = %v", got, via)
	}
}

func TestXYZToACEScgKeepsHDRRange(t *testing.T) {
	// Scene referred: values above 1.0 must pass through unclamped
	out := XYZToACEScg(hdrcolor.XYZ{X: 4.0, Y: 4.0, Z: 4.0})
	if out.R <= 1.0 && out.G <= 1.0 && out.B <= 1.0 {
		t.Errorf("HDR input got squashed: %v", out)
	}
}
