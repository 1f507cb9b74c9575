package gcolor

import (
	"fmt"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

// A CameraRGB color is a sensor reading after demosaicing and
// linearization, mapped from [0, 0xFFFF] down to [0.0, 1.0]. It exists
// in an RGB space specific to the camera, described by the per-image
// calibration matrix the decoder hands us.
type CameraRGB struct {
	hdrcolor.RGB // Implements color.Color and hdrcolor.Color interfaces
}

func NewCameraRGB(r, g, b float64) CameraRGB {
	return CameraRGB{RGB: hdrcolor.RGB{R: r, G: g, B: b}}
}

func (c CameraRGB) String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f] camera-native", c.RGB.R, c.RGB.G, c.RGB.B)
}

// ToXYZ applies the per-image calibration matrix, taking the color into
// the camera-independent XYZ space.
func (c CameraRGB) ToXYZ(camToXYZ gmath.Mat3) hdrcolor.XYZ {
	xyz := camToXYZ.Apply(gmath.Vec3{c.RGB.R, c.RGB.G, c.RGB.B})
	return hdrcolor.XYZ{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// XYZToACEScg moves a device-independent XYZ color into the working
// space. Scene referred: values outside [0,1] are expected and kept.
func XYZToACEScg(xyz hdrcolor.XYZ) hdrcolor.RGB {
	rgb := XYZ_to_ACEScg.Apply(gmath.Vec3{xyz.X, xyz.Y, xyz.Z})
	return hdrcolor.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
}

// Develop runs the whole load-time chain for a single color value:
// camera RGB -> XYZ -> ACEScg, as one precomposed matrix. The bulk
// per-pixel version of this lives in graw.Develop; this one is for
// spot values (picker readouts, tests).
func (c CameraRGB) Develop(camToXYZ gmath.Mat3) hdrcolor.RGB {
	m := CameraToACEScg(camToXYZ)
	rgb := m.Apply(gmath.Vec3{c.RGB.R, c.RGB.G, c.RGB.B})
	return hdrcolor.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
}
