package graw

// The hand-off from the RAW decoding collaborator. The decoder (LibRaw
// or whatever else the host wires in) is expected to deliver demosaiced,
// linearized 16-bit RGB plus the camera calibration matrix from the
// file's metadata. Everything we need from it is in this struct; how it
// got produced is not our problem.

import (
	"fmt"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

// DecodeSpace says which color space the decoder was asked to emit.
type DecodeSpace int

const (
	SpaceCameraRGB DecodeSpace = iota // Needs the per-image calibration matrix
	SpaceDeviceXYZ                    // Already device independent
)

type RawResult struct {
	Data     []uint16    // Interleaved RGB, row major
	W, H     int
	Bits     int         // Bits per channel; only 16 is supported
	Channels int         // Samples per pixel; only 3 is supported
	Space    DecodeSpace
	CamToXYZ gmath.Mat3  // Per-image calibration: camera RGB -> XYZ
}

// FromRaw validates the decoder hand-off and converts it to half
// floats, mapping [0, 0xFFFF] to [0.0, 1.0]. This is the one hard
// failure path in the pipeline: a malformed result aborts the load
// before anything is written, rather than producing garbage pixels.
func FromRaw(res RawResult) (*HalfImage, error) {
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("raw convert: decoder returned no data")
	}
	if res.Bits != 16 || res.Channels != 3 {
		return nil, fmt.Errorf("raw convert: unsupported shape (bits=%d channels=%d), want 16-bit RGB",
			res.Bits, res.Channels)
	}
	if res.W <= 0 || res.H <= 0 || len(res.Data) != 3*res.W*res.H {
		return nil, fmt.Errorf("raw convert: %dx%d needs %d samples, decoder gave %d",
			res.W, res.H, 3*res.W*res.H, len(res.Data))
	}

	img := NewHalfImage(res.W, res.H)
	const inv = 1.0 / float32(0xFFFF)
	for y := 0; y < res.H; y++ {
		row := img.Row(y)
		src := res.Data[y*res.W*3 : (y+1)*res.W*3]
		for i, s := range src {
			row[i] = f16(float32(s) * inv)
		}
	}
	return img, nil
}
