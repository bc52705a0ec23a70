// Package render draws chart artifacts as PNG images with gonum/plot
package render

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/interfaces"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const imageFormat = "png"

// Option is a functional option for configuring Renderer
type Option func(*Renderer)

// WithSize sets the image size of line and bar charts
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// Renderer implements ChartRenderer with gonum/plot
type Renderer struct {
	width  vg.Length
	height vg.Length
}

var _ interfaces.ChartRenderer = (*Renderer)(nil)

// New creates a new Renderer. The default size is 8x6 inches.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  8 * vg.Inch,
		height: 6 * vg.Inch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) write(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(r.width, r.height, imageFormat)
	if err != nil {
		return goerr.Wrap(err, "failed to create image writer")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write image")
	}
	return nil
}
