package grender

// The live adjustment state. A Params value is an immutable snapshot:
// the interaction layer builds a fresh one whenever a slider moves, and
// the render path takes it by value each frame. No shared widget fields,
// no cross-talk between controls.

import (
	"fmt"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

type Params struct {
	Exposure float64    // In stops; applied as 2^Exposure
	WB       gmath.Vec3 // Per-channel multipliers; green conventionally 1.0
	Contrast float64    // 1.0 = neutral; pivots around scene-linear mid grey
	ShowGrid bool       // Alignment grid overlay, toggled while rotating
}

// Mid grey in a scene-linear working space. The contrast pivot; chosen
// over the display-referred 0.5 because this stage runs on the working
// space texture, before the display transform.
const ContrastPivot = 0.18

func NewParams() Params {
	return Params{
		Exposure: 0.0,
		WB:       gmath.Vec3{1, 1, 1},
		Contrast: 1.0,
	}
}

func (p Params) String() string {
	return fmt.Sprintf("exp %+.2f, wb %s, contrast %.2f", p.Exposure, p.WB, p.Contrast)
}

// WithWhiteBalance derives the channel multipliers from a single tint
// knob. Green stays pinned at 1.0; red and blue move in opposite
// directions, so warming the image cools the blue channel by the same
// amount. A convention, not physics - but a consistent one.
func (p Params) WithWhiteBalance(tint float64) Params {
	p.WB = gmath.Vec3{1.0 + tint, 1.0, 1.0 - tint}
	return p
}
