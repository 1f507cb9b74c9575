package gcolor

// The display-referred end of the pipeline: filmic highlight compression
// followed by the sRGB gamma encoding.

import "github.com/AlexSegal/goodraw/pkg/gmath"

// ACESFilm is the Narkowicz rational fit to the ACES RRT+ODT tone curve
// (https://knarkowicz.wordpress.com/2016/01/06/aces-filmic-tone-mapping-curve/).
// Monotone on x >= 0, f(0) = 0, output clamped to [0,1]. Applied per
// channel, independently.
func ACESFilm(x float64) float64 {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	return gmath.Clamp01((x * (a*x + b)) / (x*(c*x+d) + e))
}

func ACESFilmVec(v gmath.Vec3) gmath.Vec3 {
	return gmath.Vec3{ACESFilm(v[0]), ACESFilm(v[1]), ACESFilm(v[2])}
}

// DisplayEncode takes a linear sRGB color (already tonemapped, so in
// [0,1]) to the encoded value the display expects.
func DisplayEncode(v gmath.Vec3) gmath.Vec3 {
	return gmath.GammaEncode_sRGB(v)
}
