package grender

// The color picker readout: what value lives under the cursor, in the
// working space and as displayed.

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Readout samples the texture at normalized (u,v) and describes the
// pixel before and after the display transform. Outside the texture
// there is nothing to describe.
func Readout(tex *Texture, p Params, u, v float64) (string, error) {
	if u < 0.0 || u > 1.0 || v < 0.0 || v > 1.0 {
		return "", fmt.Errorf("readout at (%.3f,%.3f): outside image", u, v)
	}

	working := tex.Sample(u, v)
	display := ShadePixel(working, p)
	display.FloorAt(0.0)
	display.CeilingAt(1.0)

	col := colorful.Color{R: display[0], G: display[1], B: display[2]}
	l, a, b := col.Lab()

	return fmt.Sprintf("ACEScg %s -> %s  Lab(%.1f, %+.1f, %+.1f)",
		working, col.Hex(), l*100.0, a*100.0, b*100.0), nil
}
