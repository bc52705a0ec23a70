package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
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

func cmdCorrelate() *cli.Command {
	var (
		entity    string
		sources   []string
		sheetName string
	)

	return &cli.Command{
		Name:  "correlate",
		Usage: "Print the Pearson correlation matrix of an entity across indicators",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "entity",
				Aliases:     []string{"e"},
				Usage:       "Entity (country) name",
				Required:    true,
				Destination: &entity,
			},
			&cli.StringSliceFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "Indicator as label=path (repeatable)",
				Required:    true,
				Destination: &sources,
			},
			sheetFlag(&sheetName),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			refs, err := parseSourceRefs(sources)
			if err != nil {
				return err
			}

			store := repository.NewMemory()
			defer store.Close()

			uc := usecase.NewChart(sheet.New(sheet.WithSheet(sheetName)), nil, store, nil)
			tables := make([]*model.ByCountryTable, len(refs))
			labels := make([]string, len(refs))
			for i, ref := range refs {
				table, _, err := uc.LoadTable(ctx, ref.source)
				if err != nil {
					return err
				}
				tables[i] = table
				labels[i] = ref.label
			}

			matrix, err := uc.Correlate(ctx, entity, tables, labels)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Debug("Correlation computed",
				slog.String("entity", entity),
				slog.Int("years", len(matrix.Years)),
			)
			writeMatrix(c.Root().Writer, matrix)
			return nil
		},
	}
}

type sourceRef struct {
	label  string
	source model.Source
}

// parseSourceRefs parses label=path pairs. Labels must be unique and are also
// used as source names.
func parseSourceRefs(values []string) ([]sourceRef, error) {
	if len(values) == 0 {
		return nil, goerr.New("at least one source is required")
	}

	seen := make(map[string]bool, len(values))
	refs := make([]sourceRef, len(values))
	for i, v := range values {
		label, path, ok := strings.Cut(v, "=")
		label, path = strings.TrimSpace(label), strings.TrimSpace(path)
		if !ok || label == "" || path == "" {
			return nil, goerr.New("source must be label=path", goerr.V("value", v))
		}
		if seen[label] {
			return nil, goerr.New("duplicate source label", goerr.V("label", label))
		}
		seen[label] = true
		refs[i] = sourceRef{
			label:  label,
			source: model.Source{Name: types.SourceName(label), Path: path},
		}
	}
	return refs, nil
}

func writeMatrix(w io.Writer, matrix *model.CorrelationMatrix) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(append([]string{""}, matrix.Labels...))
	for i, label := range matrix.Labels {
		row := []string{label}
		for j := range matrix.Labels {
			row = append(row, model.FormatCoefficient(matrix.At(i, j)))
		}
		tw.Append(row)
	}
	tw.Render()

	if len(matrix.Years) > 0 {
		fmt.Fprintf(w, "years %d-%d (%d aligned, %d dropped)\n",
			matrix.Years[0], matrix.Years[len(matrix.Years)-1], len(matrix.Years), matrix.DroppedYears)
	}
}
