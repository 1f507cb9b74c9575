package graw

// A file-based stand-in for the RAW decoding collaborator: loads a
// 16-bit linear TIFF (e.g. what `dcraw -4 -T` or dng_validate emit)
// along with its EXIF exposure metadata. Real RAW container parsing
// stays with the external decoder; this adapter just gives the CLI and
// tests a concrete input path that exercises the same RawResult
// hand-off.

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

// ExposureInfo is what the shot metadata tells us about how the sensor
// was driven. Purely informational; handy for the proxy caption.
type ExposureInfo struct {
	ISO          int64
	ApertureX10  int64 // f-number times 10, e.g. f/5.6 -> 56
	ShutterNum   int64
	ShutterDenom int64
}

func (ei ExposureInfo) String() string {
	return fmt.Sprintf("ISO %d, f/%.1f, %d/%ds",
		ei.ISO, float64(ei.ApertureX10)/10.0, ei.ShutterNum, ei.ShutterDenom)
}

// LoadTIFF16 reads a 16-bit RGB TIFF into a RawResult. The calibration
// matrix is the caller's to supply (it comes from the RAW file's
// metadata, which a plain TIFF no longer carries); pass the identity to
// treat the file as already being device XYZ.
func LoadTIFF16(filename string, camToXYZ gmath.Mat3) (RawResult, ExposureInfo, error) {
	res := RawResult{Bits: 16, Channels: 3, CamToXYZ: camToXYZ}

	ei, err := loadExposureInfo(filename)
	if err != nil {
		// EXIF is optional in practice - lots of intermediate TIFFs get
		// stripped. Keep loading, leave the info zeroed.
		ei = ExposureInfo{}
	}

	reader, err := os.Open(filename)
	if err != nil {
		return res, ei, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	img, err := tiff.Decode(reader)
	if err != nil {
		return res, ei, fmt.Errorf("tiff parse '%s': %v", filename, err)
	}

	b := img.Bounds()
	res.W, res.H = b.Dx(), b.Dy()
	res.Data = make([]uint16, 3*res.W*res.H)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA() // 16-bit channels
			res.Data[i] = uint16(r)
			res.Data[i+1] = uint16(g)
			res.Data[i+2] = uint16(bb)
			i += 3
		}
	}

	return res, ei, nil
}

func loadExposureInfo(filename string) (ExposureInfo, error) {
	ei := ExposureInfo{}

	reader, err := os.Open(filename)
	if err != nil {
		return ei, fmt.Errorf("open+r exif '%s': %v", filename, err)
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return ei, fmt.Errorf("exif parsing '%s': %v", filename, err)
	}

	if tag, err := ex.Get(exif.ISOSpeedRatings); err == nil {
		if val, err := tag.Int64(0); err == nil {
			ei.ISO = val
		}
	}

	if tag, err := ex.Get(exif.FNumber); err == nil {
		if num, denom, err := tag.Rat2(0); err == nil && denom != 0 {
			ei.ApertureX10 = num * 10 / denom
		}
	}

	if tag, err := ex.Get(exif.ExposureTime); err == nil {
		if num, denom, err := tag.Rat2(0); err == nil {
			ei.ShutterNum, ei.ShutterDenom = num, denom
		}
	}

	return ei, nil
}
