package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indiviz/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/domain/types"
	"github.com/secmon-lab/indiviz/pkg/repository"
	"github.com/secmon-lab/indiviz/pkg/usecase"
	"github.com/secmon-lab/indiviz/pkg/utils/testutil"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

var sources = map[string][][]string{
	"co2.xlsx": testutil.IndicatorRows("CO2 emissions", []int{2000, 2001, 2002, 2003, 2010, 2020},
		testutil.Entity{Name: "Japan", Values: testutil.Series(9.6, 9.7, 9.5, 9.4, 9.1, 8.2)},
		testutil.Entity{Name: "Ghana", Values: testutil.Series(0.3, 0.32, 0.31, 0.35, 0.4, 0.6)},
		testutil.Entity{Name: "Nigeria", Values: testutil.Series(0.7, 0.71, 0.69, 0.72, 0.6, 0.58)},
	),
	"gdp.xlsx": testutil.IndicatorRows("GDP per capita", []int{2001, 2002, 2003, 2004},
		testutil.Entity{Name: "Japan", Values: testutil.Series(33000, 31000, 34000, 37000)},
		testutil.Entity{Name: "Ghana", Values: testutil.Series(300, 320, 380, 420)},
	),
	"flat.xlsx": testutil.IndicatorRows("Electricity", []int{2000, 2001, 2002, 2003},
		testutil.Entity{Name: "Japan", Values: testutil.Series(8000, 8000, 8000, 8000)},
	),
	"late.xlsx": testutil.IndicatorRows("Late", []int{2015, 2016},
		testutil.Entity{Name: "Japan", Values: testutil.Series(1, 2)},
	),
}

func newReader() *mocks.SheetReaderMock {
	return &mocks.SheetReaderMock{
		ReadRowsFunc: func(ctx context.Context, path string) ([][]string, error) {
			rows, ok := sources[filepath.Base(path)]
			if !ok {
				return nil, model.ErrLoad
			}
			return rows, nil
		},
	}
}

func newRenderer() *mocks.ChartRendererMock {
	write := func(w io.Writer) error {
		_, err := w.Write([]byte("image"))
		return err
	}
	return &mocks.ChartRendererMock{
		RenderLineFunc: func(ctx context.Context, chart *model.LineChart, w io.Writer) error {
			return write(w)
		},
		RenderBarFunc: func(ctx context.Context, chart *model.BarChart, w io.Writer) error {
			return write(w)
		},
		RenderHeatmapFunc: func(ctx context.Context, chart *model.Heatmap, w io.Writer) error {
			return write(w)
		},
	}
}

func TestChart_LoadTable(t *testing.T) {
	ctx := testContext()

	t.Run("loads once per source name", func(t *testing.T) {
		reader := newReader()
		uc := usecase.NewChart(reader, newRenderer(), repository.NewMemory(), nil)
		src := model.Source{Name: "co2", Path: "data/co2.xlsx"}

		byCountry, table, err := uc.LoadTable(ctx, src)
		gt.NoError(t, err)
		gt.Equal(t, []string{"Japan", "Ghana", "Nigeria"}, table.Entities)
		gt.Equal(t, table.Years, byCountry.Years)
		gt.True(t, byCountry.Has("Ghana"))

		_, _, err = uc.LoadTable(ctx, src)
		gt.NoError(t, err)
		gt.Equal(t, 1, len(reader.ReadRowsCalls()))
		gt.Equal(t, "data/co2.xlsx", reader.ReadRowsCalls()[0].Path)
	})

	t.Run("reader failure is a load error", func(t *testing.T) {
		uc := usecase.NewChart(newReader(), newRenderer(), repository.NewMemory(), nil)

		_, _, err := uc.LoadTable(ctx, model.Source{Name: "x", Path: "absent.xlsx"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLoad))
	})

	t.Run("invalid source", func(t *testing.T) {
		uc := usecase.NewChart(newReader(), newRenderer(), repository.NewMemory(), nil)

		_, _, err := uc.LoadTable(ctx, model.Source{Name: "x"})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid source")
	})
}

func TestChart_RenderLine(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	renderer := newRenderer()
	uc := usecase.NewChart(newReader(), renderer, repository.NewMemory(),
		usecase.NewChartConfig(usecase.WithOutputDir(dir)))

	table, _, err := uc.LoadTable(ctx, model.Source{Name: "co2", Path: "co2.xlsx"})
	gt.NoError(t, err)

	t.Run("writes the named image", func(t *testing.T) {
		path, err := uc.RenderLine(ctx, table, []string{"Ghana", "Nigeria"},
			model.AxisLabels{X: "Year", Y: "CO2 Emissions (KT)"})
		gt.NoError(t, err)
		gt.Equal(t, filepath.Join(dir, "line_graph_Year_CO2 Emissions (KT).png"), path)

		data, err := os.ReadFile(path)
		gt.NoError(t, err)
		gt.Equal(t, "image", string(data))

		calls := renderer.RenderLineCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, []string{"Ghana", "Nigeria"}, calls[0].Chart.Legend())
		gt.Equal(t, 2000, calls[0].Chart.XMin)
		gt.Equal(t, 2020, calls[0].Chart.XMax)
	})

	t.Run("unknown entity renders nothing", func(t *testing.T) {
		before := len(renderer.RenderLineCalls())
		_, err := uc.RenderLine(ctx, table, []string{"Atlantis"}, model.AxisLabels{X: "Year", Y: "Other"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLookup))
		gt.Equal(t, before, len(renderer.RenderLineCalls()))

		_, statErr := os.Stat(filepath.Join(dir, "line_graph_Year_Other.png"))
		gt.True(t, os.IsNotExist(statErr))
	})
}

func TestChart_RenderBar(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	renderer := newRenderer()
	uc := usecase.NewChart(newReader(), renderer, repository.NewMemory(),
		usecase.NewChartConfig(usecase.WithOutputDir(dir)))

	table, _, err := uc.LoadTable(ctx, model.Source{Name: "co2", Path: "co2.xlsx"})
	gt.NoError(t, err)

	t.Run("renders decades", func(t *testing.T) {
		path, err := uc.RenderBar(ctx, table, []string{"Japan", "Ghana", "Nigeria"}, 2000, 2020,
			model.AxisLabels{X: "Year", Y: "CO2"})
		gt.NoError(t, err)
		gt.Equal(t, filepath.Join(dir, "bar_chart_Year_CO2.png"), path)

		chart := renderer.RenderBarCalls()[0].Chart
		gt.Equal(t, []int{2000, 2010, 2020}, chart.Decades)
		gt.Equal(t, []float64{1999, 2009, 2019}, chart.Series[0].Positions)
		gt.Equal(t, []float64{9.6, 9.1, 8.2}, chart.Series[0].Heights)
	})

	t.Run("missing decade is a lookup error", func(t *testing.T) {
		_, err := uc.RenderBar(ctx, table, []string{"Japan"}, 1990, 2020, model.AxisLabels{X: "Year", Y: "CO2"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLookup))
	})
}

func TestChart_RenderHeatmap(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	renderer := newRenderer()
	uc := usecase.NewChart(newReader(), renderer, repository.NewMemory(),
		usecase.NewChartConfig(usecase.WithOutputDir(dir)))

	load := func(name string) *model.ByCountryTable {
		table, _, err := uc.LoadTable(ctx, model.Source{Name: types.SourceName(name), Path: name + ".xlsx"})
		gt.NoError(t, err)
		return table
	}
	co2, gdp, flat, late := load("co2"), load("gdp"), load("flat"), load("late")

	t.Run("inner join and NaN for flat series", func(t *testing.T) {
		path, err := uc.RenderHeatmap(ctx, "Japan",
			[]*model.ByCountryTable{co2, gdp, flat},
			[]string{"CO2", "GDP", "Electricity"})
		gt.NoError(t, err)
		gt.Equal(t, filepath.Join(dir, "Japan_heat_map.png"), path)

		chart := renderer.RenderHeatmapCalls()[0].Chart
		gt.Equal(t, "Japan", chart.Title)
		gt.Equal(t, []int{2001, 2002, 2003}, chart.Matrix.Years)
		gt.Equal(t, 1.0, chart.Matrix.At(2, 2))
		gt.True(t, math.IsNaN(chart.Matrix.At(0, 2)))
		gt.Equal(t, "NaN", chart.Annotations[2][0])
	})

	t.Run("no overlap is degenerate", func(t *testing.T) {
		_, err := uc.RenderHeatmap(ctx, "Japan",
			[]*model.ByCountryTable{co2, late},
			[]string{"CO2", "Late"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDegenerateInput))
	})

	t.Run("entity missing from a table", func(t *testing.T) {
		_, err := uc.RenderHeatmap(ctx, "Nigeria",
			[]*model.ByCountryTable{co2, gdp},
			[]string{"CO2", "GDP"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLookup))
	})

	t.Run("labels must match tables", func(t *testing.T) {
		_, err := uc.Correlate(ctx, "Japan", []*model.ByCountryTable{co2, gdp}, []string{"CO2"})
		gt.Error(t, err)
	})

	t.Run("single indicator gives a unit grid", func(t *testing.T) {
		_, err := uc.RenderHeatmap(ctx, "Ghana", []*model.ByCountryTable{gdp}, []string{"GDP"})
		gt.NoError(t, err)

		calls := renderer.RenderHeatmapCalls()
		chart := calls[len(calls)-1].Chart
		gt.Equal(t, 1, chart.Matrix.Size())
		gt.Equal(t, 1.0, chart.Matrix.At(0, 0))
		gt.Equal(t, [][]string{{"1.00"}}, chart.Annotations)
	})

	t.Run("no indicators", func(t *testing.T) {
		_, err := uc.RenderHeatmap(ctx, "Japan", nil, nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDegenerateInput))
	})
}

func TestChart_RenderFailureLeavesNoFile(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	renderer := &mocks.ChartRendererMock{
		RenderLineFunc: func(ctx context.Context, chart *model.LineChart, w io.Writer) error {
			_, _ = w.Write([]byte("partial"))
			return errors.New("backend exploded")
		},
	}
	uc := usecase.NewChart(newReader(), renderer, repository.NewMemory(),
		usecase.NewChartConfig(usecase.WithOutputDir(dir)))

	table, _, err := uc.LoadTable(ctx, model.Source{Name: "co2", Path: "co2.xlsx"})
	gt.NoError(t, err)

	_, err = uc.RenderLine(ctx, table, []string{"Japan"}, model.AxisLabels{X: "Year", Y: "CO2"})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("backend exploded")

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.Equal(t, 0, len(entries))
}
