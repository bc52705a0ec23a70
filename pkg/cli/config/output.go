package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/service/render"
	"github.com/secmon-lab/indiviz/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/plot/vg"
)

// Output holds image output configuration
type Output struct {
	Dir    string
	Width  float64
	Height float64
}

// Flags returns CLI flags for Output configuration
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory to write chart images to",
			Category:    "Output",
			Value:       ".",
			Sources:     cli.EnvVars("INDIVIZ_OUTPUT"),
			Destination: &o.Dir,
		},
		&cli.FloatFlag{
			Name:        "width",
			Usage:       "Image width in inches",
			Category:    "Output",
			Value:       8,
			Sources:     cli.EnvVars("INDIVIZ_WIDTH"),
			Destination: &o.Width,
		},
		&cli.FloatFlag{
			Name:        "height",
			Usage:       "Image height in inches",
			Category:    "Output",
			Value:       6,
			Sources:     cli.EnvVars("INDIVIZ_HEIGHT"),
			Destination: &o.Height,
		},
	}
}

// Validate validates the output configuration
func (o *Output) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return goerr.New("image size must be positive",
			goerr.V("width", o.Width),
			goerr.V("height", o.Height))
	}
	return nil
}

// Configure creates the chart backend and the use case config
func (o *Output) Configure() (*render.Renderer, *usecase.ChartConfig, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}

	renderer := render.New(render.WithSize(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch))
	cfg := usecase.NewChartConfig(usecase.WithOutputDir(o.Dir))
	return renderer, cfg, nil
}

// LogValue returns structured log value
func (o Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", o.Dir),
		slog.Float64("width", o.Width),
		slog.Float64("height", o.Height),
	)
}
