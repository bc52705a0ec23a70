package usecase

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

// RenderBar draws the entities of table as bars grouped by decade over the
// inclusive [start, end] range and returns the image path
func (u *Chart) RenderBar(ctx context.Context, table *model.ByCountryTable, entities []string, start, end int, labels model.AxisLabels) (string, error) {
	chart, err := model.NewBarChart(table, entities, start, end, labels)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build bar chart",
			goerr.V("entities", entities),
			goerr.V("start", start),
			goerr.V("end", end))
	}

	return u.save(ctx, chart.FileName(), func(w io.Writer) error {
		return u.renderer.RenderBar(ctx, chart, w)
	})
}
