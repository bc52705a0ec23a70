package render

import (
	"context"
	"io"
	"math"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// RenderBar draws a grouped bar chart on a year axis. Every bar is centred on
// its series position and is model.BarWidth years wide.
func (r *Renderer) RenderBar(ctx context.Context, chart *model.BarChart, w io.Writer) error {
	if len(chart.Series) == 0 || len(chart.Decades) == 0 {
		return goerr.New("bar chart is empty",
			goerr.V("series", len(chart.Series)),
			goerr.V("decades", len(chart.Decades)))
	}

	p := plot.New()
	p.X.Label.Text = chart.Labels.X
	p.Y.Label.Text = chart.Labels.Y

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	for _, s := range chart.Series {
		if len(s.Positions) != len(s.Heights) {
			return goerr.New("bar positions and heights differ",
				goerr.V("label", s.Label),
				goerr.V("positions", len(s.Positions)),
				goerr.V("heights", len(s.Heights)))
		}

		var thumb *plotter.Polygon
		for k, x := range s.Positions {
			h := s.Heights[k]
			if math.IsNaN(h) {
				ctxlog.From(ctx).Warn("missing bar value drawn as zero",
					"label", s.Label,
					"decade", chart.Decades[k])
				h = 0
			}

			bar, err := barPolygon(x, h)
			if err != nil {
				return goerr.Wrap(err, "failed to create bar",
					goerr.V("label", s.Label),
					goerr.V("position", x))
			}
			bar.Color = plotutil.Color(s.Color)
			bar.LineStyle.Width = 0
			p.Add(bar)
			thumb = bar
		}
		if thumb != nil {
			p.Legend.Add(s.Label, thumb)
		}
	}

	ticks := make(plot.ConstantTicks, len(chart.Decades))
	for i, d := range chart.Decades {
		ticks[i] = plot.Tick{Value: float64(d), Label: strconv.Itoa(d)}
	}
	p.X.Tick.Marker = ticks
	p.X.Min, p.X.Max = chart.XRange()
	p.Legend.Top = true

	return r.write(p, w)
}

func barPolygon(x, height float64) (*plotter.Polygon, error) {
	half := model.BarWidth / 2
	return plotter.NewPolygon(plotter.XYs{
		{X: x - half, Y: 0},
		{X: x + half, Y: 0},
		{X: x + half, Y: height},
		{X: x - half, Y: height},
	})
}
