package graw

// The one-shot CPU stage: take a freshly decoded image into the ACEScg
// working space, in place. Each pixel is independent, so the work is
// split into row bands across the CPUs, with a WaitGroup barrier before
// the buffer moves on to the texture upload.

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/AlexSegal/goodraw/pkg/gcolor"
	"github.com/AlexSegal/goodraw/pkg/gmath"
)

// DevelopToACEScg converts an image of camera-native RGB, using the
// per-image calibration matrix. The three matrix hops (camera->XYZ,
// XYZ->AP0, AP0->AP1) are collapsed into one before the loop.
func DevelopToACEScg(img *HalfImage, camToXYZ gmath.Mat3, workers int) {
	applyInPlace(img, gcolor.CameraToACEScg(camToXYZ), workers)
}

// DevelopXYZToACEScg is the variant for decoders that already deliver
// device XYZ; only the two fixed matrices remain, precomposed at init.
func DevelopXYZToACEScg(img *HalfImage, workers int) {
	applyInPlace(img, gcolor.XYZ_to_ACEScg, workers)
}

func applyInPlace(img *HalfImage, m gmath.Mat3, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > img.H {
		workers = img.H
	}
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Row bands; each worker owns its rows outright, so no locking.
	var wg sync.WaitGroup
	band := (img.H + workers - 1) / workers
	for y0 := 0; y0 < img.H; y0 += band {
		y1 := y0 + band
		if y1 > img.H {
			y1 = img.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				row := img.Row(y)
				for i := 0; i < len(row); i += 3 {
					// Widen to float32 for the multiply-accumulate, narrow
					// back to half on write. No clamping: scene-referred
					// values above 1.0 are expected, and kept for tonemapping.
					r, g, b := m.ApplyF32(row[i].Float32(), row[i+1].Float32(), row[i+2].Float32())
					row[i], row[i+1], row[i+2] = f16(r), f16(g), f16(b)
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	log.Printf("Developed %s to ACEScg in %s (%d workers)\n", img, time.Since(start), workers)
}
