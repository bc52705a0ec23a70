package interfaces

//go:generate moq -out mocks/chart_mock.go -pkg mocks . ChartRenderer

import (
	"context"
	"io"

	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

// ChartRenderer draws fully computed chart artifacts as images
type ChartRenderer interface {
	RenderLine(ctx context.Context, chart *model.LineChart, w io.Writer) error
	RenderBar(ctx context.Context, chart *model.BarChart, w io.Writer) error
	RenderHeatmap(ctx context.Context, chart *model.Heatmap, w io.Writer) error
}
