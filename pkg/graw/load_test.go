package graw

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

func writeTestTIFF(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint16((x + y*w) * 1000)
			img.SetRGBA64(x, y, color.RGBA64{R: v, G: v / 2, B: v / 3, A: 0xFFFF})
		}
	}

	filename := filepath.Join(t.TempDir(), "test.tif")
	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("create %s: %v", filename, err)
	}
	defer f.Close()

	if err := tiff.Encode(f, img, nil); err != nil {
		t.Fatalf("tiff encode: %v", err)
	}
	return filename
}

func TestLoadTIFF16(t *testing.T) {
	filename := writeTestTIFF(t, 5, 4)

	res, _, err := LoadTIFF16(filename, gmath.Identity3())
	if err != nil {
		t.Fatalf("LoadTIFF16: %v", err)
	}

	if res.W != 5 || res.H != 4 {
		t.Errorf("dimensions %dx%d, want 5x4", res.W, res.H)
	}
	if res.Bits != 16 || res.Channels != 3 {
		t.Errorf("shape bits=%d channels=%d, want 16/3", res.Bits, res.Channels)
	}
	if len(res.Data) != 3*5*4 {
		t.Errorf("buffer length %d, want %d", len(res.Data), 3*5*4)
	}

	// Pixel (2,1) was written as v=7000, v/2, v/3
	i := (1*5 + 2) * 3
	if res.Data[i] != 7000 || res.Data[i+1] != 3500 || res.Data[i+2] != 2333 {
		t.Errorf("pixel samples (%d,%d,%d), want (7000,3500,2333)",
			res.Data[i], res.Data[i+1], res.Data[i+2])
	}

	// And the whole result must pass validation into a half image
	if _, err := FromRaw(res); err != nil {
		t.Errorf("FromRaw on loaded TIFF: %v", err)
	}
}

func TestLoadTIFF16MissingFile(t *testing.T) {
	if _, _, err := LoadTIFF16("/no/such/file.tif", gmath.Identity3()); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadTIFF16NotATIFF(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "junk.tif")
	if err := os.WriteFile(filename, []byte("not a tiff at all"), 0644); err != nil {
		t.Fatalf("write junk: %v", err)
	}

	if _, _, err := LoadTIFF16(filename, gmath.Identity3()); err == nil {
		t.Errorf("expected error for junk file")
	}
}
