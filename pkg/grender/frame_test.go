package grender

import (
	"image/color"
	"math"
	"testing"

	"github.com/AlexSegal/goodraw/pkg/gmath"
	"github.com/AlexSegal/goodraw/pkg/graw"
	"github.com/AlexSegal/goodraw/pkg/gview"
)

func uniformTexture(t *testing.T, w, h int, r, g, b float32) *Texture {
	t.Helper()
	img := graw.NewHalfImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetPixel(x, y, r, g, b)
		}
	}
	tex, err := Upload(img)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return tex
}

// A neutral mid-grey scene value must land near conventional mid grey
// on the display - far from black, far from white, and with no cast
// worth noticing. Catches pivot and sign errors in the chain.
func TestMidGreyEndToEnd(t *testing.T) {
	tex := uniformTexture(t, 2, 2, 0.18, 0.18, 0.18)

	view := gview.NewFitView(2, 2, 4, 4)
	frame, err := Render(tex, NewParams(), view.Transform(), 4, 4)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	c := frame.RGBAAt(2, 2)
	chans := []float64{float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0}

	for i, v := range chans {
		if v < 0.42 || v > 0.65 {
			t.Errorf("channel %d = %.3f, want mid grey in [0.42, 0.65]", i, v)
		}
	}

	spread := math.Max(chans[0], math.Max(chans[1], chans[2])) -
		math.Min(chans[0], math.Min(chans[1], chans[2]))
	if spread > 0.06 {
		t.Errorf("channel spread %.3f, grey came out tinted: %+v", spread, c)
	}
}

// Working-space white through the whole chain with neutral parameters
// must come out neutral, not tinted - the white point round trip.
func TestWhitePointRoundTripNeutral(t *testing.T) {
	out := ShadePixel(gmath.Vec3{1, 1, 1}, NewParams())

	spread := math.Max(out[0], math.Max(out[1], out[2])) -
		math.Min(out[0], math.Min(out[1], out[2]))
	if spread > 0.05 {
		t.Errorf("white came out tinted: %s (spread %.3f)", out, spread)
	}
	for i, v := range out {
		if v < 0.8 || v > 1.0 {
			t.Errorf("channel %d = %.3f, want bright neutral", i, v)
		}
	}
}

// +5 stops on a pixel already at 1.0 must clamp to display white.
func TestOverexposureClampsToWhite(t *testing.T) {
	p := NewParams()
	p.Exposure = 5.0

	out := ShadePixel(gmath.Vec3{1, 1, 1}, p)
	for i, v := range out {
		if v < 1.0-1e-9 || v > 1.0+1e-9 {
			t.Errorf("channel %d = %f, want 1.0", i, v)
		}
	}

	// And as an 8-bit framebuffer value: display white, no wrap
	tex := uniformTexture(t, 1, 1, 1.0, 1.0, 1.0)
	if got := renderTexel(tex, p, 0.5, 0.5); got.R != 0xff || got.G != 0xff || got.B != 0xff {
		t.Errorf("overexposed texel = %+v, want white", got)
	}
}

// Contrast pivoting in linear light can drive values negative; those
// must be clamped before the tone curve, never fed through it.
func TestContrastNegativesClamped(t *testing.T) {
	p := NewParams()
	p.Contrast = 3.0

	out := ShadePixel(gmath.Vec3{0.01, 0.01, 0.01}, p)
	for i, v := range out {
		if v != v || v < 0.0 {
			t.Errorf("channel %d = %f after deep contrast, want >= 0", i, v)
		}
	}
}

func TestContrastPivotFixedPoint(t *testing.T) {
	// Mid grey must not move when contrast changes
	base := ShadePixel(gmath.Vec3{ContrastPivot, ContrastPivot, ContrastPivot}, NewParams())

	p := NewParams()
	p.Contrast = 2.0
	contrasty := ShadePixel(gmath.Vec3{ContrastPivot, ContrastPivot, ContrastPivot}, p)

	for i := range base {
		if math.Abs(base[i]-contrasty[i]) > 1e-9 {
			t.Errorf("channel %d moved under contrast: %f -> %f", i, base[i], contrasty[i])
		}
	}
}

func TestOutsideTextureRendersBlack(t *testing.T) {
	tex := uniformTexture(t, 2, 2, 0.5, 0.5, 0.5)

	tests := []struct {
		name string
		u, v float64
	}{
		{"right of image", 1.5, 0.5},
		{"left of image", -0.25, 0.5},
		{"above image", 0.5, -0.1},
		{"below image", 0.5, 1.0001},
	}

	want := color.RGBA{0, 0, 0, 0xff}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderTexel(tex, NewParams(), tt.u, tt.v); got != want {
				t.Errorf("texel at (%g,%g) = %+v, want opaque black", tt.u, tt.v, got)
			}
		})
	}
}

func TestGridOverlay(t *testing.T) {
	tests := []struct {
		name string
		u, v float64
		want bool
	}{
		{"first third line", 1.0 / 3.0, 0.5, true},
		{"second third line", 0.5, 2.0 / 3.0, true},
		{"cell center", 0.5, 0.5, false},
		{"off line", 0.2, 0.45, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onGridLine(tt.u, tt.v); got != tt.want {
				t.Errorf("onGridLine(%g,%g) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}

	// With the grid enabled, a gridline texel renders pure white
	tex := uniformTexture(t, 3, 3, 0.18, 0.18, 0.18)
	p := NewParams()
	p.ShowGrid = true
	got := renderTexel(tex, p, 1.0/3.0, 0.5)
	if got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("gridline texel = %+v, want white", got)
	}
}

func TestWhiteBalanceCoupling(t *testing.T) {
	p := NewParams().WithWhiteBalance(0.1)

	if p.WB[1] != 1.0 {
		t.Errorf("green moved: %f", p.WB[1])
	}
	if math.Abs((p.WB[0]-1.0)+(p.WB[2]-1.0)) > 1e-12 {
		t.Errorf("red/blue not opposed: %s", p.WB)
	}

	// Warming must raise red relative to blue on the display side
	warm := ShadePixel(gmath.Vec3{0.18, 0.18, 0.18}, p)
	if warm[0] <= warm[2] {
		t.Errorf("warm tint didn't warm: %s", warm)
	}
}

func TestUploadRejectsEmpty(t *testing.T) {
	if _, err := Upload(nil); err == nil {
		t.Errorf("expected error for nil image")
	}
	if _, err := Upload(&graw.HalfImage{}); err == nil {
		t.Errorf("expected error for empty image")
	}
}

// The texture is a logical copy: mutating the CPU buffer after upload
// must not change what renders.
func TestUploadIsACopy(t *testing.T) {
	img := graw.NewHalfImage(1, 1)
	img.SetPixel(0, 0, 0.25, 0.25, 0.25)

	tex, err := Upload(img)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	img.SetPixel(0, 0, 9.0, 9.0, 9.0)

	got := tex.Sample(0, 0)
	if got[0] != 0.25 {
		t.Errorf("texture saw CPU-side mutation: %s", got)
	}
}
