package render

import (
	"context"
	"image/color"
	"io"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	paletteSize   = 255
	colorBarShare = 0.15
)

var nanColor = color.Gray{Y: 0xe0}

// correlationGrid exposes a correlation matrix as a GridXYZ with row 0 at
// the top of the plot
type correlationGrid struct {
	m *model.CorrelationMatrix
}

func (g correlationGrid) Dims() (c, r int) {
	n := g.m.Size()
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 {
	return g.m.At(g.row(r), c)
}

func (g correlationGrid) X(c int) float64 {
	return float64(c)
}

func (g correlationGrid) Y(r int) float64 {
	return float64(r)
}

func (g correlationGrid) Min() float64 { return -1 }
func (g correlationGrid) Max() float64 { return 1 }

func (g correlationGrid) row(r int) int {
	return g.m.Size() - 1 - r
}

// RenderHeatmap draws the annotated correlation grid with a colour bar on
// the right hand side
func (r *Renderer) RenderHeatmap(ctx context.Context, chart *model.Heatmap, w io.Writer) error {
	n := chart.Matrix.Size()
	if n == 0 {
		return goerr.New("heatmap is empty", goerr.V("title", chart.Title))
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	grid := correlationGrid{m: chart.Matrix}
	hm := plotter.NewHeatMap(grid, cm.Palette(paletteSize))
	hm.Min = -1
	hm.Max = 1
	hm.NaN = nanColor

	p := plot.New()
	p.Title.Text = chart.Title
	p.Add(hm)

	xys := make(plotter.XYs, 0, n*n)
	texts := make([]string, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			texts = append(texts, chart.Annotations[i][j])
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return goerr.Wrap(err, "failed to create annotations", goerr.V("title", chart.Title))
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Color = color.Black
	}
	p.Add(labels)

	xTicks := make(plot.ConstantTicks, n)
	yTicks := make(plot.ConstantTicks, n)
	for i, label := range chart.Labels {
		xTicks[i] = plot.Tick{Value: float64(i), Label: label}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: label}
	}
	p.X.Tick.Marker = xTicks
	p.Y.Tick.Marker = yTicks
	p.X.Tick.Label.Rotation = chart.XTickRotation * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Min, p.X.Max = -0.5, float64(n)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	bar.HideX()
	bar.Y.Padding = 0

	side := max(r.height, vg.Length(n)*vg.Inch)
	width := side + side*colorBarShare
	img := vgimg.New(width, side)
	dc := draw.New(img)

	barWidth := width * colorBarShare
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, width-barWidth, 0, side*0.1, -side*0.1))

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write image", goerr.V("title", chart.Title))
	}
	return nil
}
