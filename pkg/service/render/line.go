package render

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderLine draws one line per series over the year axis. Missing values
// split a series into separate segments of the same style.
func (r *Renderer) RenderLine(ctx context.Context, chart *model.LineChart, w io.Writer) error {
	p := plot.New()
	p.X.Label.Text = chart.Labels.X
	p.Y.Label.Text = chart.Labels.Y
	p.Add(plotter.NewGrid())

	for i, s := range chart.Series {
		style := plotter.DefaultLineStyle
		style.Color = plotutil.Color(i)
		style.Width = vg.Points(1.5)

		segments := s.Segments()
		if len(segments) == 0 {
			ctxlog.From(ctx).Warn("series has no values", "label", s.Label)
		}
		for _, seg := range segments {
			xys := make(plotter.XYs, len(seg))
			for k, pt := range seg {
				xys[k].X = float64(pt.Year)
				xys[k].Y = pt.Value
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return goerr.Wrap(err, "failed to create line", goerr.V("label", s.Label))
			}
			line.LineStyle = style
			p.Add(line)
		}
		p.Legend.Add(s.Label, &plotter.Line{LineStyle: style})
	}

	p.X.Min = float64(chart.XMin)
	p.X.Max = float64(chart.XMax)
	p.X.Tick.Marker = constantTicks(chart.Ticks)
	p.Legend.Top = true

	return r.write(p, w)
}

func constantTicks(ticks []model.Tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
