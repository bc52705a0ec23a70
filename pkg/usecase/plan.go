package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
)

// Run renders every chart of the plan in order and returns the written image
// paths. The first failure stops the run; images written before it remain.
func (u *Chart) Run(ctx context.Context, plan *model.Plan) ([]string, error) {
	if err := plan.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid plan")
	}

	logger := ctxlog.From(ctx)
	var paths []string
	for i, job := range plan.Charts {
		logger.Debug("rendering chart", "index", i, "type", job.Type)

		path, err := u.runJob(ctx, plan, &job)
		if err != nil {
			return paths, goerr.Wrap(err, "chart failed",
				goerr.V("index", i),
				goerr.V("type", job.Type))
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (u *Chart) runJob(ctx context.Context, plan *model.Plan, job *model.ChartJob) (string, error) {
	switch job.Type {
	case types.ChartTypeLine:
		table, err := u.loadByName(ctx, plan, job.Source)
		if err != nil {
			return "", err
		}
		return u.RenderLine(ctx, table, job.Entities, job.Labels)

	case types.ChartTypeBar:
		table, err := u.loadByName(ctx, plan, job.Source)
		if err != nil {
			return "", err
		}
		start, end, err := table.YearRange()
		if err != nil {
			return "", err
		}
		if len(job.Years) == 2 {
			start, end = job.Years[0], job.Years[1]
		}
		return u.RenderBar(ctx, table, job.Entities, start, end, job.Labels)

	case types.ChartTypeHeatmap:
		tables := make([]*model.ByCountryTable, len(job.Indicators))
		labels := make([]string, len(job.Indicators))
		for i, ind := range job.Indicators {
			table, err := u.loadByName(ctx, plan, ind.Source)
			if err != nil {
				return "", err
			}
			tables[i] = table
			labels[i] = ind.Label
		}
		return u.RenderHeatmap(ctx, job.Entity, tables, labels)

	default:
		return "", goerr.New("unsupported chart type", goerr.V("type", job.Type))
	}
}

func (u *Chart) loadByName(ctx context.Context, plan *model.Plan, name types.SourceName) (*model.ByCountryTable, error) {
	src := plan.FindSource(name)
	if src == nil {
		return nil, goerr.Wrap(model.ErrLookup, "source not defined in plan", goerr.V("source", name))
	}
	table, _, err := u.LoadTable(ctx, *src)
	return table, err
}
