package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// maxTickDivisions bounds the number of year ticks on a line chart axis
const maxTickDivisions = 8

// DecadeStep is the spacing between bar chart groups
const DecadeStep = 10

// BarWidth is the width of a bar in years. Bars of a group are one width apart.
const BarWidth = 1.0

// HeatmapTickRotation is the rotation of heatmap x tick labels in degrees
const HeatmapTickRotation = 35.0

// AxisLabels holds the x and y axis titles of a chart
type AxisLabels struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Validate validates the axis labels
func (l AxisLabels) Validate() error {
	if l.X == "" || l.Y == "" {
		return goerr.New("both x and y labels are required",
			goerr.V("x", l.X),
			goerr.V("y", l.Y))
	}
	return nil
}

// Tick is an axis mark
type Tick struct {
	Value float64
	Label string
}

// LineChart is a multi series line chart over a shared year axis
type LineChart struct {
	Labels   AxisLabels
	XMin     int
	XMax     int
	Interval int
	Ticks    []Tick
	Series   []NamedSeries
}

// TickInterval returns the spacing in years between line chart ticks. It is
// never smaller than one.
func TickInterval(start, end int) int {
	interval := end - start - 1
	if interval < 0 {
		return 1
	}
	interval /= maxTickDivisions
	if interval < 1 {
		return 1
	}
	return interval
}

// YearTicks returns ticks from start to end (inclusive bound) every interval years
func YearTicks(start, end, interval int) []Tick {
	var ticks []Tick
	for y := start; y <= end; y += interval {
		ticks = append(ticks, Tick{Value: float64(y), Label: fmt.Sprint(y)})
	}
	return ticks
}

// NewLineChart builds a line chart of the given entities
func NewLineChart(table *ByCountryTable, entities []string, labels AxisLabels) (*LineChart, error) {
	series, err := table.Select(entities...)
	if err != nil {
		return nil, err
	}
	start, end, err := table.YearRange()
	if err != nil {
		return nil, err
	}

	interval := TickInterval(start, end)
	return &LineChart{
		Labels:   labels,
		XMin:     start,
		XMax:     end,
		Interval: interval,
		Ticks:    YearTicks(start, end, interval),
		Series:   series,
	}, nil
}

// Legend returns the legend entries in drawing order
func (c *LineChart) Legend() []string {
	legend := make([]string, len(c.Series))
	for i, s := range c.Series {
		legend[i] = s.Label
	}
	return legend
}

// FileName returns the image name of the chart
func (c *LineChart) FileName() string {
	return fmt.Sprintf("line_graph_%s_%s.png", fileSafe(c.Labels.X), fileSafe(c.Labels.Y))
}

// BarSeries holds the bars of a single entity across all decades
type BarSeries struct {
	Label string
	// Color is the palette index shared by every bar of the entity
	Color     int
	Offset    int
	Positions []float64
	Heights   []float64
}

// BarChart is a grouped bar chart with one group per decade
type BarChart struct {
	Labels  AxisLabels
	Decades []int
	Series  []BarSeries
}

// Decades returns start, start+10, ... up to and including end when it lands on a step
func Decades(start, end int) []int {
	var decades []int
	for y := start; y <= end; y += DecadeStep {
		decades = append(decades, y)
	}
	return decades
}

// BarOffsets returns the position offset of each of n bars in a group. Odd
// counts are centred exactly, even counts lean one unit to the left.
func BarOffsets(n int) []int {
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i - n/2
	}
	return offsets
}

// NewBarChart builds a grouped bar chart sampling the entities at every
// decade of [start, end]
func NewBarChart(table *ByCountryTable, entities []string, start, end int, labels AxisLabels) (*BarChart, error) {
	if len(entities) == 0 {
		return nil, goerr.New("at least one entity is required", goerr.V("source", table.Source))
	}
	if start > end {
		return nil, goerr.New("invalid year range",
			goerr.V("start", start),
			goerr.V("end", end))
	}

	decades := Decades(start, end)
	for _, d := range decades {
		if _, err := table.YearIndex(d); err != nil {
			return nil, err
		}
	}

	offsets := BarOffsets(len(entities))
	chart := &BarChart{
		Labels:  labels,
		Decades: decades,
		Series:  make([]BarSeries, len(entities)),
	}
	for i, entity := range entities {
		s := BarSeries{
			Label:     entity,
			Color:     i,
			Offset:    offsets[i],
			Positions: make([]float64, len(decades)),
			Heights:   make([]float64, len(decades)),
		}
		for k, d := range decades {
			v, err := table.Value(d, entity)
			if err != nil {
				return nil, err
			}
			s.Positions[k] = float64(d + offsets[i])
			s.Heights[k] = v
		}
		chart.Series[i] = s
	}
	return chart, nil
}

// XRange returns the year axis bounds covering every bar with half a bar of
// margin on each side
func (c *BarChart) XRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, x := range s.Positions {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo - BarWidth, hi + BarWidth
}

// Legend returns the legend entries in drawing order
func (c *BarChart) Legend() []string {
	legend := make([]string, len(c.Series))
	for i, s := range c.Series {
		legend[i] = s.Label
	}
	return legend
}

// FileName returns the image name of the chart
func (c *BarChart) FileName() string {
	return fmt.Sprintf("bar_chart_%s_%s.png", fileSafe(c.Labels.X), fileSafe(c.Labels.Y))
}

// Heatmap is an annotated correlation grid for a single entity
type Heatmap struct {
	Title         string
	Labels        []string
	Matrix        *CorrelationMatrix
	Annotations   [][]string
	XTickRotation float64
}

// NewHeatmap builds the heatmap artifact of a correlation matrix
func NewHeatmap(entity string, matrix *CorrelationMatrix) *Heatmap {
	n := matrix.Size()
	annotations := make([][]string, n)
	for i := range annotations {
		annotations[i] = make([]string, n)
		for j := range annotations[i] {
			annotations[i][j] = FormatCoefficient(matrix.At(i, j))
		}
	}
	return &Heatmap{
		Title:         entity,
		Labels:        matrix.Labels,
		Matrix:        matrix,
		Annotations:   annotations,
		XTickRotation: HeatmapTickRotation,
	}
}

// FileName returns the image name of the chart
func (h *Heatmap) FileName() string {
	return fileSafe(h.Title) + "_heat_map.png"
}

// FormatCoefficient renders a coefficient rounded to two decimals
func FormatCoefficient(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

var fileReplacer = strings.NewReplacer("/", "_", "\\", "_")

func fileSafe(s string) string {
	return fileReplacer.Replace(s)
}
