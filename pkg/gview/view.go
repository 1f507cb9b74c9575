package gview

// The interactive view of the image quad: fit-to-window, zoom about the
// cursor, pan, rotate about the center. The view is an affine transform
// from normalized texture coordinates ([0,1] across the image) to
// output pixel coordinates; its inverse maps a mouse position back to a
// texel for picking. While panning or zooming, output pixels can land
// outside [0,1] in texture space - the display stage paints those black.

import (
	"github.com/AlexSegal/goodraw/pkg/gmath"
)

type View struct {
	m        gmath.Aff3
	w, h     int     // Output surface size, pixels
	Rotating bool    // The host sets this mid-drag; it drives the grid overlay
	RotADeg  float64 // Accumulated rotation
}

// NewFitView centers the image in a w x h output surface at the largest
// scale that shows all of it, preserving aspect.
func NewFitView(imgW, imgH, outW, outH int) *View {
	sx := float64(outW) / float64(imgW)
	sy := float64(outH) / float64(imgH)
	s := sx
	if sy < s {
		s = sy
	}

	drawW := float64(imgW) * s
	drawH := float64(imgH) * s
	ox := (float64(outW) - drawW) / 2.0
	oy := (float64(outH) - drawH) / 2.0

	// Rightmost operations performed first: scale texcoords up to
	// pixels, then center
	m := gmath.Identity().Translate(ox, oy).Scale(drawW, drawH)

	return &View{m: m, w: outW, h: outH}
}

func (v *View) Transform() gmath.Aff3 { return v.m }

// ZoomAbout scales the view by `factor` keeping the screen point
// (sx,sy) fixed - zoom about the cursor.
func (v *View) ZoomAbout(factor, sx, sy float64) {
	v.m = gmath.ScaleAbout(factor, sx, sy).Mult(v.m)
}

func (v *View) Pan(dx, dy float64) {
	v.m = gmath.Identity().Translate(dx, dy).Mult(v.m)
}

// RotateBy rotates the view about the center of the output surface.
func (v *View) RotateBy(thetaDeg float64) {
	cx, cy := float64(v.w)/2.0, float64(v.h)/2.0
	v.m = gmath.RotateAbout(thetaDeg, cx, cy).Mult(v.m)
	v.RotADeg += thetaDeg
}

// ScreenToImage maps an output pixel back to normalized texture
// coordinates. Values outside [0,1] mean the point misses the image.
func (v *View) ScreenToImage(sx, sy float64) (float64, float64, error) {
	inv, err := v.m.Invert()
	if err != nil {
		return 0, 0, err
	}
	u, vv := inv.ApplyToPoint(sx, sy)
	return u, vv, nil
}
