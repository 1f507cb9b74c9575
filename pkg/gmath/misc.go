package gmath

import "math"

// Some functions that only operate on basic types, that are useful

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// Each channel in `v` is assumed to be in the range [0,1]
func GammaEncode_sRGB(v Vec3) Vec3 {
	return Vec3{
		GammaEncode_F64(v[0]),
		GammaEncode_F64(v[1]),
		GammaEncode_F64(v[2]),
	}
}

// The standard piecewise sRGB OETF: linear segment below the breakpoint,
// power law above. Continuous at f=0.0031308.
func GammaEncode_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055*math.Pow(f, 1.0/2.4) - 0.055
}

func Clamp01(f float64) float64 {
	if f < 0 { return 0 }
	if f > 1 { return 1 }
	return f
}
