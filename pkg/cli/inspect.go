package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
	"github.com/secmon-lab/indiviz/pkg/repository"
	"github.com/secmon-lab/indiviz/pkg/service/sheet"
	"github.com/secmon-lab/indiviz/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInspect() *cli.Command {
	var (
		source    string
		sheetName string
		entities  []string
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print a summary of an indicator source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "Indicator spreadsheet (xlsx or csv)",
				Required:    true,
				Destination: &source,
			},
			&cli.StringSliceFlag{
				Name:        "entity",
				Aliases:     []string{"e"},
				Usage:       "Print the yearly values of the entity (repeatable)",
				Destination: &entities,
			},
			sheetFlag(&sheetName),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Inspecting source", slog.String("source", source))

			store := repository.NewMemory()
			defer store.Close()

			uc := usecase.NewChart(sheet.New(sheet.WithSheet(sheetName)), nil, store, nil)
			src := model.Source{
				Name: types.SourceName(strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))),
				Path: source,
			}
			_, table, err := uc.LoadTable(ctx, src)
			if err != nil {
				return err
			}

			rows := make([][]float64, len(entities))
			for i, entity := range entities {
				row, err := table.Row(entity)
				if err != nil {
					return goerr.Wrap(err, "failed to select entity", goerr.V("source", source))
				}
				rows[i] = row
			}

			w := c.Root().Writer
			writeSummary(w, table)
			if len(entities) > 0 {
				writeValues(w, table.Years, entities, rows)
			}
			return nil
		},
	}
}

func writeSummary(w io.Writer, table *model.IndicatorTable) {
	first, last := "-", "-"
	if len(table.Years) > 0 {
		first = strconv.Itoa(table.Years[0])
		last = strconv.Itoa(table.Years[len(table.Years)-1])
	}

	dropped := make([]string, len(table.DroppedYears))
	for i, y := range table.DroppedYears {
		dropped[i] = strconv.Itoa(y)
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Field", "Value"})
	tw.Append([]string{"Indicator", table.Indicator.Name})
	tw.Append([]string{"Code", table.Indicator.Code})
	tw.Append([]string{"Entities", strconv.Itoa(len(table.Entities))})
	tw.Append([]string{"Years", fmt.Sprintf("%s - %s (%d)", first, last, len(table.Years))})
	tw.Append([]string{"Dropped years", strings.Join(dropped, ", ")})
	tw.Render()
}

// writeValues prints one row per year and one column per entity. rows[i]
// holds the values of entities[i] aligned with years.
func writeValues(w io.Writer, years []int, entities []string, rows [][]float64) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(append([]string{"Year"}, entities...))
	for k, year := range years {
		line := []string{strconv.Itoa(year)}
		for _, row := range rows {
			line = append(line, formatValue(row[k]))
		}
		tw.Append(line)
	}
	tw.Render()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
