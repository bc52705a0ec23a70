package model_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

func denseTable(t *testing.T, start, end int, entities ...string) *model.ByCountryTable {
	years := yearsBetween(start, end)
	columns := make([][]float64, len(entities))
	for i := range entities {
		columns[i] = make([]float64, len(years))
		for j := range years {
			columns[i][j] = float64(i*100 + j)
		}
	}
	table, err := model.NewByCountryTable(years, entities, columns)
	gt.NoError(t, err)
	return table
}

func TestTickInterval(t *testing.T) {
	testCases := []struct {
		name     string
		start    int
		end      int
		expected int
	}{
		{"full World Bank range", 1960, 2021, 7},
		{"two decades", 2000, 2020, 2},
		{"narrow range", 2019, 2020, 1},
		{"single year", 2020, 2020, 1},
		{"nine years", 2000, 2009, 1},
		{"exactly eight divisions", 2000, 2017, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interval := model.TickInterval(tc.start, tc.end)
			gt.Equal(t, tc.expected, interval)
			gt.True(t, interval >= 1)
		})
	}
}

func TestNewLineChart(t *testing.T) {
	labels := model.AxisLabels{X: "Year", Y: "CO2 Emissions (KT)"}

	t.Run("ticks and bounds", func(t *testing.T) {
		table := denseTable(t, 1960, 2021, "United Kingdom", "Germany", "Ghana")
		chart, err := model.NewLineChart(table, []string{"Germany", "United Kingdom"}, labels)
		gt.NoError(t, err)

		gt.Equal(t, 1960, chart.XMin)
		gt.Equal(t, 2021, chart.XMax)
		gt.Equal(t, 7, chart.Interval)
		gt.Equal(t, 9, len(chart.Ticks))
		gt.Equal(t, "1960", chart.Ticks[0].Label)
		gt.Equal(t, "2016", chart.Ticks[8].Label)
		gt.Equal(t, []string{"Germany", "United Kingdom"}, chart.Legend())
		gt.Equal(t, 62, len(chart.Series[0].Points))
	})

	t.Run("narrow range does not loop", func(t *testing.T) {
		table := denseTable(t, 2019, 2020, "Ghana")
		chart, err := model.NewLineChart(table, []string{"Ghana"}, labels)
		gt.NoError(t, err)
		gt.Equal(t, 1, chart.Interval)
		gt.Equal(t, []model.Tick{{Value: 2019, Label: "2019"}, {Value: 2020, Label: "2020"}}, chart.Ticks)
	})

	t.Run("unknown entity", func(t *testing.T) {
		table := denseTable(t, 2000, 2010, "Ghana")
		_, err := model.NewLineChart(table, []string{"Ghana", "Atlantis"}, labels)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLookup))
	})

	t.Run("file name", func(t *testing.T) {
		table := denseTable(t, 2000, 2010, "Ghana")
		chart, err := model.NewLineChart(table, []string{"Ghana"}, labels)
		gt.NoError(t, err)
		gt.Equal(t, "line_graph_Year_CO2 Emissions (KT).png", chart.FileName())
	})

	t.Run("rendering twice is structurally identical", func(t *testing.T) {
		table := denseTable(t, 1990, 2020, "Ghana", "Nigeria")
		c1, err := model.NewLineChart(table, []string{"Ghana", "Nigeria"}, labels)
		gt.NoError(t, err)
		c2, err := model.NewLineChart(table, []string{"Ghana", "Nigeria"}, labels)
		gt.NoError(t, err)
		gt.Equal(t, c1, c2)
	})
}

func TestBarOffsets(t *testing.T) {
	for n := 1; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d bars", n), func(t *testing.T) {
			offsets := model.BarOffsets(n)
			gt.Equal(t, n, len(offsets))

			sum := 0
			for i, o := range offsets {
				if i > 0 {
					gt.Equal(t, offsets[i-1]+1, o)
				}
				sum += o
			}
			// the group centre stays within one unit of the tick
			centre := float64(sum) / float64(n)
			gt.True(t, math.Abs(centre) < 1)
			if n%2 == 1 {
				gt.Equal(t, 0, sum)
				gt.Equal(t, -offsets[0], offsets[n-1])
			} else {
				gt.Equal(t, -n/2, offsets[0])
				gt.Equal(t, n/2-1, offsets[n-1])
			}
		})
	}
}

func TestNewBarChart(t *testing.T) {
	labels := model.AxisLabels{X: "Year", Y: "CO2"}

	t.Run("nine entities over two decades", func(t *testing.T) {
		entities := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
		table := denseTable(t, 1990, 2021, entities...)

		chart, err := model.NewBarChart(table, entities, 2000, 2020, labels)
		gt.NoError(t, err)
		gt.Equal(t, []int{2000, 2010, 2020}, chart.Decades)
		gt.Equal(t, 9, len(chart.Series))
		gt.Equal(t, -4, chart.Series[0].Offset)
		gt.Equal(t, 4, chart.Series[8].Offset)

		for i, s := range chart.Series {
			gt.Equal(t, entities[i], s.Label)
			gt.Equal(t, i, s.Color)
			gt.Equal(t, 3, len(s.Heights))
			for k, d := range chart.Decades {
				gt.Equal(t, float64(d+s.Offset), s.Positions[k])
				v, err := table.Value(d, s.Label)
				gt.NoError(t, err)
				gt.Equal(t, v, s.Heights[k])
			}
		}
		gt.Equal(t, entities, chart.Legend())
		gt.Equal(t, "bar_chart_Year_CO2.png", chart.FileName())

		lo, hi := chart.XRange()
		gt.Equal(t, 2000.0-4-model.BarWidth, lo)
		gt.Equal(t, 2020.0+4+model.BarWidth, hi)
	})

	t.Run("x range of an empty chart", func(t *testing.T) {
		lo, hi := (&model.BarChart{}).XRange()
		gt.Equal(t, 0.0, lo)
		gt.Equal(t, 0.0, hi)
	})

	t.Run("end year not on a decade step", func(t *testing.T) {
		table := denseTable(t, 2000, 2021, "A", "B")
		chart, err := model.NewBarChart(table, []string{"A", "B"}, 2001, 2021, labels)
		gt.NoError(t, err)
		gt.Equal(t, []int{2001, 2011, 2021}, chart.Decades)
		gt.Equal(t, []int{-1, 0}, []int{chart.Series[0].Offset, chart.Series[1].Offset})
	})

	t.Run("missing decade row", func(t *testing.T) {
		table := denseTable(t, 2005, 2021, "A")
		_, err := model.NewBarChart(table, []string{"A"}, 2000, 2020, labels)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLookup))
	})

	t.Run("unknown entity", func(t *testing.T) {
		table := denseTable(t, 2000, 2020, "A")
		_, err := model.NewBarChart(table, []string{"A", "Z"}, 2000, 2020, labels)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrLookup))
	})

	t.Run("invalid input", func(t *testing.T) {
		table := denseTable(t, 2000, 2020, "A")
		_, err := model.NewBarChart(table, nil, 2000, 2020, labels)
		gt.Error(t, err)
		_, err = model.NewBarChart(table, []string{"A"}, 2020, 2000, labels)
		gt.Error(t, err)
	})
}

func TestNewHeatmap(t *testing.T) {
	m := &model.CorrelationMatrix{
		Labels: []string{"CO2 (KT)/Capita", "GDP/Capita"},
		Values: [][]float64{{1, -0.123}, {-0.123, 1}},
	}
	h := model.NewHeatmap("Japan", m)

	gt.Equal(t, "Japan", h.Title)
	gt.Equal(t, m.Labels, h.Labels)
	gt.Equal(t, 35.0, h.XTickRotation)
	gt.Equal(t, [][]string{{"1.00", "-0.12"}, {"-0.12", "1.00"}}, h.Annotations)
	gt.Equal(t, "Japan_heat_map.png", h.FileName())
}

func TestFormatCoefficient(t *testing.T) {
	gt.Equal(t, "NaN", model.FormatCoefficient(math.NaN()))
	gt.Equal(t, "0.57", model.FormatCoefficient(0.5678))
	gt.Equal(t, "-1.00", model.FormatCoefficient(-1))
	gt.Equal(t, "0.00", model.FormatCoefficient(-0.001))
}
