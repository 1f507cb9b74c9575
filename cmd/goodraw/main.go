package main

// Renders graded PNG proxies from 16-bit linear TIFFs, using the same
// pipeline the interactive viewer runs: develop into ACEScg once, then
// the display transform under the requested adjustment parameters.

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/AlexSegal/goodraw/pkg/goodraw"
	"github.com/AlexSegal/goodraw/pkg/graw"
)

var (
	fConfigFilename string
	fOutputFilename string
	fExposure       float64
	fTint           float64
	fContrast       float64
	fGrid           bool
	fLabel          bool
	fXYZ            bool
)

func init() {
	flag.StringVar(&fConfigFilename, "config", "", "YAML config file")
	flag.StringVar(&fOutputFilename, "o", "out.png", "name of output image file")
	flag.Float64Var(&fExposure, "exposure", 0.0, "exposure adjustment, in stops")
	flag.Float64Var(&fTint, "tint", 0.0, "white balance tint; warms red, cools blue")
	flag.Float64Var(&fContrast, "contrast", 1.0, "contrast about scene-linear mid grey")
	flag.BoolVar(&fGrid, "grid", false, "overlay the alignment grid")
	flag.BoolVar(&fLabel, "label", false, "burn filename + params caption into the proxy")
	flag.BoolVar(&fXYZ, "xyz", false, "treat input as device XYZ (skip camera calibration)")
	flag.Parse()

	log.Printf("Starting\n")
}

func main() {
	if flag.NArg() != 1 {
		log.Fatalf("usage: goodraw [flags] <input.tif>\n")
	}
	filename := flag.Arg(0)

	cfg := goodraw.NewConfig()
	if fConfigFilename != "" {
		var err error
		if cfg, err = goodraw.LoadConfig(fConfigFilename); err != nil {
			log.Fatal(err)
		}
	}

	// Command line args override the config file, but only the ones
	// actually given - otherwise the flag defaults would clobber the
	// config file's values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exposure":
			cfg.Exposure = fExposure
		case "tint":
			cfg.Tint = fTint
		case "contrast":
			cfg.Contrast = fContrast
		}
	})

	res, ei, err := graw.LoadTIFF16(filename, cfg.CamToXYZ)
	if err != nil {
		log.Fatalf("Loading %s failed: %v\n", filename, err)
	}
	if fXYZ {
		res.Space = graw.SpaceDeviceXYZ
	}

	s := goodraw.NewSession(cfg)
	if err := s.Load(res); err != nil {
		log.Fatalf("Developing %s failed: %v\n", filename, err)
	}
	s.Params.ShowGrid = fGrid

	log.Printf("Image stats: %s\n", graw.MeasureLuminance(s.Img))

	frame, err := s.RenderFrame()
	if err != nil {
		log.Fatalf("Render failed: %v\n", err)
	}

	var out image.Image = frame
	if fLabel {
		caption := fmt.Sprintf("%s | %s | %s", filepath.Base(filename), s.Params, ei)
		out = burnInCaption(frame, caption)
	}

	if err := writePNG(out, fOutputFilename); err != nil {
		log.Fatalf("Writing %s failed: %v\n", fOutputFilename, err)
	}

	log.Printf("Render stats: %s\n", s.Timer)
	log.Printf("Proxy written to '%s'\n", fOutputFilename)
}

func burnInCaption(img image.Image, caption string) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetRGB(0, 0, 0)
	dc.DrawString(caption, 21, float64(img.Bounds().Dy())-19)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(caption, 20, float64(img.Bounds().Dy())-20)
	return dc.Image()
}

func writePNG(img image.Image, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	return png.Encode(writer, img)
}
