package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

// LoadTable reads a source and returns its by-country view together with the
// cleaned row form. Tables already loaded under the same source name are
// served from the store.
func (u *Chart) LoadTable(ctx context.Context, src model.Source) (*model.ByCountryTable, *model.IndicatorTable, error) {
	logger := ctxlog.From(ctx)

	if err := src.Validate(); err != nil {
		return nil, nil, goerr.Wrap(err, "invalid source")
	}

	table, err := u.store.GetTable(ctx, src.Name)
	switch {
	case err == nil:
		logger.Debug("indicator table served from store", "source", src.Name)
		return transpose(table)
	case !errors.Is(err, model.ErrTableNotFound):
		return nil, nil, goerr.Wrap(err, "failed to look up table", goerr.V("source", src.Name))
	}

	rows, err := u.reader.ReadRows(ctx, src.Path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read source",
			goerr.V("source", src.Name),
			goerr.V("path", src.Path))
	}

	table, err = model.ParseIndicatorTable(src.Path, rows)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse source", goerr.V("source", src.Name))
	}

	if err := u.store.PutTable(ctx, src.Name, table); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to store table", goerr.V("source", src.Name))
	}

	logger.Info("indicator table loaded",
		"source", src.Name,
		"indicator", table.Indicator.Name,
		"entities", len(table.Entities),
		"years", len(table.Years),
		"dropped_years", table.DroppedYears,
	)
	return transpose(table)
}

func transpose(table *model.IndicatorTable) (*model.ByCountryTable, *model.IndicatorTable, error) {
	byCountry, err := table.Transpose()
	if err != nil {
		return nil, nil, err
	}
	return byCountry, table, nil
}
