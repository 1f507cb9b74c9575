package grender

// The "GPU" side of the buffer hand-off. Upload takes a read-only
// logical copy of the working-space image, the way a texture upload
// would; the CPU-side buffer can be dropped or re-developed without
// disturbing frames in flight.

import (
	"fmt"

	"github.com/AlexSegal/goodraw/pkg/gmath"
	"github.com/AlexSegal/goodraw/pkg/graw"
)

type Texture struct {
	img *graw.HalfImage
}

func Upload(img *graw.HalfImage) (*Texture, error) {
	if img == nil || len(img.Pix) == 0 {
		return nil, fmt.Errorf("texture upload: empty image")
	}
	return &Texture{img: img.Clone()}, nil
}

func (t *Texture) W() int { return t.img.W }
func (t *Texture) H() int { return t.img.H }

// Sample reads the texel nearest to normalized coordinates (u,v), with
// edge clamping. Callers are expected to have already decided what to
// do about coordinates outside [0,1] (the display stage paints those
// black); clamping here just guards the array access.
func (t *Texture) Sample(u, v float64) gmath.Vec3 {
	x := int(gmath.Clamp01(u) * float64(t.img.W-1))
	y := int(gmath.Clamp01(v) * float64(t.img.H-1))
	r, g, b := t.img.Pixel(x, y)
	return gmath.Vec3{float64(r), float64(g), float64(b)}
}
