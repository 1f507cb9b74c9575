package goodraw

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/AlexSegal/goodraw/pkg/gmath"
)

/* Example config file ...

workers: 8
outputwidth: 1920
outputheight: 1080
exposure: 0.5
tint: 0.05
contrast: 1.1
camtoxyz: [0.8598, -0.2848, -0.0857, -0.5618, 1.3606, 0.2195, -0.1002, 0.1773, 0.7137]

*/

type Config struct {
	Verbosity int

	Workers      int // 0 means one per CPU
	OutputWidth  int
	OutputHeight int

	// Default adjustment parameters for a freshly loaded image
	Exposure float64
	Tint     float64
	Contrast float64

	// Fallback calibration matrix, used when the input carries none
	// (e.g. a stripped intermediate TIFF). Zero value means identity.
	CamToXYZ gmath.Mat3
}

func NewConfig() Config {
	return Config{
		OutputWidth:  1280,
		OutputHeight: 800,
		Contrast:     1.0,
		CamToXYZ:     gmath.Identity3(),
	}
}

func LoadConfig(filename string) (Config, error) {
	c := NewConfig()

	contents, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("config read '%s': %v", filename, err)
	}
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return c, fmt.Errorf("config parse '%s': %v", filename, err)
	}

	return c, c.finalize()
}

func (c *Config) finalize() error {
	if c.OutputWidth <= 0 || c.OutputHeight <= 0 {
		return fmt.Errorf("config: bad output size %dx%d", c.OutputWidth, c.OutputHeight)
	}
	if c.Contrast <= 0 {
		return fmt.Errorf("config: contrast must be positive, got %f", c.Contrast)
	}

	if c.CamToXYZ == (gmath.Mat3{}) {
		c.CamToXYZ = gmath.Identity3()
	}

	return nil
}

func (c Config) AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}
