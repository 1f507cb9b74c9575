package graw

// The in-memory image the whole pipeline works on: interleaved RGB
// triplets stored as half floats. Half precision keeps a multi-megapixel
// scene-referred image affordable while preserving HDR headroom; every
// arithmetic step widens to float32, works, and narrows back on write.

import (
	"fmt"

	"github.com/x448/float16"
)

func f16(f float32) float16.Float16 { return float16.Fromfloat32(f) }

type HalfImage struct {
	W, H int
	Pix  []float16.Float16 // Interleaved RGB, row major; len is always 3*W*H
}

func NewHalfImage(w, h int) *HalfImage {
	return &HalfImage{W: w, H: h, Pix: make([]float16.Float16, 3*w*h)}
}

func (img *HalfImage) String() string {
	return fmt.Sprintf("HalfImage %dx%d (%d samples)", img.W, img.H, len(img.Pix))
}

// Pixel returns the (r,g,b) triplet at (x,y), widened to float32.
func (img *HalfImage) Pixel(x, y int) (float32, float32, float32) {
	i := (y*img.W + x) * 3
	return img.Pix[i].Float32(), img.Pix[i+1].Float32(), img.Pix[i+2].Float32()
}

func (img *HalfImage) SetPixel(x, y int, r, g, b float32) {
	i := (y*img.W + x) * 3
	img.Pix[i] = float16.Fromfloat32(r)
	img.Pix[i+1] = float16.Fromfloat32(g)
	img.Pix[i+2] = float16.Fromfloat32(b)
}

// Row returns the samples of row y, 3*W of them.
func (img *HalfImage) Row(y int) []float16.Float16 {
	return img.Pix[y*img.W*3 : (y+1)*img.W*3]
}

// Clone is the read-only logical copy handed to the display side, so
// the texture upload never aliases the buffer the CPU stage mutates.
func (img *HalfImage) Clone() *HalfImage {
	out := &HalfImage{W: img.W, H: img.H, Pix: make([]float16.Float16, len(img.Pix))}
	copy(out.Pix, img.Pix)
	return out
}
