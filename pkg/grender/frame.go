package grender

// The per-frame display stage. On real hardware this is the fragment
// shader in shaders.go; this is the same math as a pure function
// Render(texture, params, view) -> framebuffer, so the host event loop
// can call it however it likes, and tests can call it directly.
//
// The whole frame re-renders unconditionally on every call. No dirty
// regions, no per-pixel state across frames.

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/AlexSegal/goodraw/pkg/gcolor"
	"github.com/AlexSegal/goodraw/pkg/gmath"
)

// ShadePixel maps one working-space sample to a display-encoded color
// under the given parameters. The whole adjustment chain, per sample:
// white balance, exposure, contrast about mid grey, the change of basis
// into display primaries, filmic tonemap, gamma encode.
func ShadePixel(rgb gmath.Vec3, p Params) gmath.Vec3 {
	c := rgb.MultElems(p.WB)
	c = c.Scale(math.Pow(2.0, p.Exposure))

	c = gmath.Vec3{
		(c[0]-ContrastPivot)*p.Contrast + ContrastPivot,
		(c[1]-ContrastPivot)*p.Contrast + ContrastPivot,
		(c[2]-ContrastPivot)*p.Contrast + ContrastPivot,
	}
	// Contrast in linear light can push values negative; the tone curve
	// is only defined for non-negative input
	c.FloorAt(0.0)

	c = gcolor.ACEScg_to_linear_sRGB.Apply(c)
	c = gcolor.ACESFilmVec(c)
	return gcolor.DisplayEncode(c)
}

// Render draws one frame of w x h output pixels. `view` maps normalized
// texture coordinates ([0,1] across the image) to output pixel
// coordinates; pixels that land outside the texture render opaque
// black, so a panned/zoomed image never streaks its edge texels.
func Render(tex *Texture, p Params, view gmath.Aff3, w, h int) (*image.RGBA, error) {
	inv, err := view.Invert()
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))

	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}
	band := (h + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += band {
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					u, v := inv.ApplyToPoint(float64(x)+0.5, float64(y)+0.5)
					out.SetRGBA(x, y, renderTexel(tex, p, u, v))
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return out, nil
}

func renderTexel(tex *Texture, p Params, u, v float64) color.RGBA {
	if u < 0.0 || u > 1.0 || v < 0.0 || v > 1.0 {
		return color.RGBA{0, 0, 0, 0xff}
	}

	c := ShadePixel(tex.Sample(u, v), p)

	if p.ShowGrid && onGridLine(u, v) {
		c = gmath.Vec3{1, 1, 1}
	}

	c.FloorAt(0.0)
	c.CeilingAt(1.0)
	return color.RGBA{
		uint8(c[0]*255.0 + 0.5),
		uint8(c[1]*255.0 + 0.5),
		uint8(c[2]*255.0 + 0.5),
		0xff,
	}
}

// The rule-of-thirds alignment grid: gridPeriod cells across each axis,
// lines drawn at the cell boundaries. Tied to texture coordinates, so
// it rotates and zooms with the image.
const (
	gridPeriod    = 3.0
	gridHalfWidth = 0.02 // In cell-relative units
)

func onGridLine(u, v float64) bool {
	fu := u*gridPeriod - 0.5
	fv := v*gridPeriod - 0.5
	gu := math.Abs(fu-math.Floor(fu)-0.5) * gridPeriod * 2.0
	gv := math.Abs(fv-math.Floor(fv)-0.5) * gridPeriod * 2.0
	return gu < gridHalfWidth || gv < gridHalfWidth
}
