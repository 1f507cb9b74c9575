package goodraw

// A Session is one loaded image plus its live view state: the developed
// working-space buffer, the uploaded texture, the current adjustment
// parameters and the pan/zoom transform. The host event loop owns one
// session at a time and re-renders it whenever anything changes.

import (
	"fmt"
	"image"
	"log"

	"github.com/AlexSegal/goodraw/pkg/graw"
	"github.com/AlexSegal/goodraw/pkg/grender"
	"github.com/AlexSegal/goodraw/pkg/gview"
)

type Session struct {
	Config Config

	Img    *graw.HalfImage // CPU side, in ACEScg after Load
	Tex    *grender.Texture
	Params grender.Params
	View   *gview.View

	Timer *grender.FrameTimer
}

func NewSession(cfg Config) *Session {
	p := grender.NewParams().WithWhiteBalance(cfg.Tint)
	p.Exposure = cfg.Exposure
	p.Contrast = cfg.Contrast

	return &Session{
		Config: cfg,
		Params: p,
		Timer:  grender.NewFrameTimer(),
	}
}

// Load runs the whole load-time half of the pipeline: validate and
// convert the decoder hand-off, develop into the working space, upload.
// Any failure is terminal for this load attempt; the session keeps
// whatever image it had before.
func (s *Session) Load(res graw.RawResult) error {
	img, err := graw.FromRaw(res)
	if err != nil {
		return fmt.Errorf("session load: %v", err)
	}

	switch res.Space {
	case graw.SpaceCameraRGB:
		graw.DevelopToACEScg(img, res.CamToXYZ, s.Config.Workers)
	case graw.SpaceDeviceXYZ:
		graw.DevelopXYZToACEScg(img, s.Config.Workers)
	default:
		return fmt.Errorf("session load: unknown decode space %d", res.Space)
	}

	tex, err := grender.Upload(img)
	if err != nil {
		return fmt.Errorf("session load: %v", err)
	}

	s.Img = img
	s.Tex = tex
	s.View = gview.NewFitView(img.W, img.H, s.Config.OutputWidth, s.Config.OutputHeight)

	if s.Config.Verbosity > 0 {
		log.Printf("Loaded %s; %s\n", img, graw.MeasureLuminance(img))
	}

	return nil
}

// RenderFrame draws the current state. Parameters are taken as a
// snapshot here; mid-frame slider movement affects the next frame.
func (s *Session) RenderFrame() (*image.RGBA, error) {
	if s.Tex == nil {
		return nil, fmt.Errorf("render: no image loaded")
	}

	defer s.Timer.Time()()

	p := s.Params
	p.ShowGrid = p.ShowGrid || s.View.Rotating

	return grender.Render(s.Tex, p, s.View.Transform(), s.Config.OutputWidth, s.Config.OutputHeight)
}

// PickColor describes the pixel under an output-surface position.
func (s *Session) PickColor(sx, sy float64) (string, error) {
	if s.Tex == nil {
		return "", fmt.Errorf("pick: no image loaded")
	}

	u, v, err := s.View.ScreenToImage(sx, sy)
	if err != nil {
		return "", err
	}
	return grender.Readout(s.Tex, s.Params, u, v)
}
