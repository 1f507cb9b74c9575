package graw

// Post-develop image statistics, mostly so the CLI can warn about
// clipped highlights and show where the exposure sits.

import (
	"fmt"
	"math"

	"github.com/skypies/util/histogram"
)

type LuminanceStats struct {
	// Log2 of per-pixel mean luminance, in 1/8th-stop buckets over
	// [-16, +16] stops around mid grey
	Hist histogram.Histogram

	NumPixels   int
	NumClipped  int // Pixels with any channel at or above 1.0
	NumNegative int // Pixels with any channel below 0.0 (matrix excursions)
}

func (ls LuminanceStats) String() string {
	return fmt.Sprintf("%d pixels: %.2f%% clipped, %.2f%% negative",
		ls.NumPixels,
		100.0*float64(ls.NumClipped)/float64(ls.NumPixels),
		100.0*float64(ls.NumNegative)/float64(ls.NumPixels))
}

func (ls LuminanceStats) ClipFraction() float64 {
	return float64(ls.NumClipped) / float64(ls.NumPixels)
}

func MeasureLuminance(img *HalfImage) LuminanceStats {
	ls := LuminanceStats{
		Hist:      histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 256},
		NumPixels: img.W * img.H,
	}

	for y := 0; y < img.H; y++ {
		row := img.Row(y)
		for i := 0; i < len(row); i += 3 {
			r := float64(row[i].Float32())
			g := float64(row[i+1].Float32())
			b := float64(row[i+2].Float32())

			if r >= 1.0 || g >= 1.0 || b >= 1.0 {
				ls.NumClipped++
			}
			if r < 0.0 || g < 0.0 || b < 0.0 {
				ls.NumNegative++
			}

			lum := (r + g + b) / 3.0
			if lum <= 0 {
				continue
			}
			// Map [-16,+16] stops to the 256 buckets, 8 buckets per stop
			stops := math.Log2(lum)
			ls.Hist.Add(histogram.ScalarVal(int((stops + 16.0) * 8.0)))
		}
	}

	return ls
}
