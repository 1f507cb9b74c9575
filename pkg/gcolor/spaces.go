package gcolor

// The fixed change-of-basis matrices for the ACES pipeline:
//
//   camera RGB -> XYZ -> ACES AP0 -> ACEScg (AP1)     on image load
//   ACEScg -> AP0 -> XYZ -> linear sRGB               every displayed frame
//
// These digits are the published constants from the ACES CTL release
// (https://github.com/ampas/aces-dev, see ACESlib.Utilities_Color.ctl)
// and Bruce Lindbloom's XYZ(D65)->sRGB table
// (http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html).
// Do NOT re-derive them from primaries/white-point formulas at runtime;
// any deviation changes color answers for every image.

import "github.com/AlexSegal/goodraw/pkg/gmath"

var (
	// XYZ -> ACES AP0 (Academy Color Encoding System primaries)
	XYZ_to_AP0 = gmath.Mat3{
		1.0498110175, 0.0, -0.0000974845,
		-0.4959030231, 1.3733130458, 0.0982400361,
		0.0, 0.0, 0.9912520182,
	}

	// ACES AP0 -> ACEScg (working space optimized for CG)
	AP0_to_AP1 = gmath.Mat3{
		1.4514393161, -0.2365107469, -0.2149285693,
		-0.0765537733, 1.1762296998, -0.0996759265,
		0.0083161484, -0.0060324498, 0.9977163014,
	}

	// ACEScg (AP1) -> ACES AP0
	AP1_to_AP0 = gmath.Mat3{
		0.6954522414, 0.1406786965, 0.1638690622,
		0.0447945634, 0.8596711185, 0.0955343182,
		-0.0055258826, 0.0040252103, 1.0015006723,
	}

	// ACES AP0 -> XYZ
	AP0_to_XYZ = gmath.Mat3{
		0.9525523959, 0.0, 0.0000936786,
		0.3439664498, 0.7281660966, -0.0721325464,
		0.0, 0.0, 1.0088251844,
	}

	// XYZ -> linear sRGB (Rec.709 primaries, D65)
	XYZ_to_linear_sRGB = gmath.Mat3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
)

// The two precomposed chains. Built exactly once, at package init, so
// the per-pixel loops apply a single matrix instead of two or three.
var (
	// XYZ -> ACEScg
	XYZ_to_ACEScg gmath.Mat3

	// ACEScg -> linear sRGB, the display-side change of basis
	ACEScg_to_linear_sRGB gmath.Mat3
)

func init() {
	// Chains compose back to front - rightmost matrix applied first
	XYZ_to_ACEScg = AP0_to_AP1.Mult(XYZ_to_AP0)
	ACEScg_to_linear_sRGB = XYZ_to_linear_sRGB.Mult(AP0_to_XYZ).Mult(AP1_to_AP0)
}

// CameraToACEScg folds a per-image calibration matrix (camera RGB ->
// XYZ, straight from the decoder's metadata) into the fixed chain.
// Call it once per image, never per pixel.
func CameraToACEScg(camToXYZ gmath.Mat3) gmath.Mat3 {
	return XYZ_to_ACEScg.Mult(camToXYZ)
}
