package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/indiviz/pkg/cli/config"
	"github.com/secmon-lab/indiviz/pkg/repository"
	"github.com/secmon-lab/indiviz/pkg/service/sheet"
	"github.com/secmon-lab/indiviz/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		planCfg   config.Plan
		outputCfg config.Output
		sheetName string
	)

	flags := joinFlags(
		planCfg.Flags(),
		outputCfg.Flags(),
		[]cli.Flag{sheetFlag(&sheetName)},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render every chart of a plan into PNG images",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting render",
				slog.Any("plan", planCfg),
				slog.Any("output", outputCfg),
			)

			plan, err := planCfg.Configure()
			if err != nil {
				return err
			}

			renderer, chartCfg, err := outputCfg.Configure()
			if err != nil {
				return err
			}

			store := repository.NewMemory()
			defer store.Close()

			uc := usecase.NewChart(sheet.New(sheet.WithSheet(sheetName)), renderer, store, chartCfg)
			paths, err := uc.Run(ctx, plan)
			if err != nil {
				return err
			}

			loaded, err := store.ListTables(ctx)
			if err != nil {
				return err
			}
			logger.Info("Render complete",
				slog.Int("charts", len(paths)),
				slog.Any("sources", loaded),
			)
			return nil
		},
	}
}
