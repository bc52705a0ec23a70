package usecase

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

// Correlate computes the Pearson matrix of the entity across indicator tables.
// labels name the tables in order.
func (u *Chart) Correlate(ctx context.Context, entity string, tables []*model.ByCountryTable, labels []string) (*model.CorrelationMatrix, error) {
	if len(tables) != len(labels) {
		return nil, goerr.New("number of labels must match number of tables",
			goerr.V("tables", len(tables)),
			goerr.V("labels", len(labels)))
	}

	series := make([]model.NamedSeries, len(tables))
	for i, table := range tables {
		if !table.Has(entity) {
			return nil, goerr.Wrap(model.ErrLookup, "entity missing from indicator table",
				goerr.V("entity", entity),
				goerr.V("label", labels[i]),
				goerr.V("source", table.Source))
		}
		s, err := table.Series(entity)
		if err != nil {
			return nil, err
		}
		series[i] = s
	}

	matrix, err := model.Correlate(series, labels)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to correlate indicators", goerr.V("entity", entity))
	}

	ctxlog.From(ctx).Info("indicators aligned",
		"entity", entity,
		"years", len(matrix.Years),
		"dropped_years", matrix.DroppedYears,
	)
	return matrix, nil
}

// RenderHeatmap draws the correlation heatmap of the entity and returns the image path
func (u *Chart) RenderHeatmap(ctx context.Context, entity string, tables []*model.ByCountryTable, labels []string) (string, error) {
	matrix, err := u.Correlate(ctx, entity, tables, labels)
	if err != nil {
		return "", err
	}

	chart := model.NewHeatmap(entity, matrix)
	return u.save(ctx, chart.FileName(), func(w io.Writer) error {
		return u.renderer.RenderHeatmap(ctx, chart, w)
	})
}
