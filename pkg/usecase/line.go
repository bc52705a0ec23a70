package usecase

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

// RenderLine draws the entities of table as a line chart and returns the image path
func (u *Chart) RenderLine(ctx context.Context, table *model.ByCountryTable, entities []string, labels model.AxisLabels) (string, error) {
	chart, err := model.NewLineChart(table, entities, labels)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build line chart", goerr.V("entities", entities))
	}

	return u.save(ctx, chart.FileName(), func(w io.Writer) error {
		return u.renderer.RenderLine(ctx, chart, w)
	})
}
