package model

import (
	"math"
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// Point is a single observation of a series. Value is NaN when missing.
type Point struct {
	Year  int
	Value float64
}

// Missing reports whether the point has no value
func (p Point) Missing() bool {
	return math.IsNaN(p.Value)
}

// NamedSeries is a labelled year series
type NamedSeries struct {
	Label  string
	Points []Point
}

// Years returns the years of the series in order
func (s NamedSeries) Years() []int {
	years := make([]int, len(s.Points))
	for i, p := range s.Points {
		years[i] = p.Year
	}
	return years
}

// Values returns the values of the series in order
func (s NamedSeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Segments splits the series at missing values into runs of present points
func (s NamedSeries) Segments() [][]Point {
	var segments [][]Point
	var current []Point
	for _, p := range s.Points {
		if p.Missing() {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, p)
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// Series returns the entity column as a NamedSeries labelled with the entity
func (t *ByCountryTable) Series(entity string) (NamedSeries, error) {
	col, err := t.Column(entity)
	if err != nil {
		return NamedSeries{}, err
	}
	points := make([]Point, len(col))
	for i, v := range col {
		points[i] = Point{Year: t.Years[i], Value: v}
	}
	return NamedSeries{Label: entity, Points: points}, nil
}

// Select extracts one series per entity name, all aligned on the table's
// year index and returned in the given order.
func (t *ByCountryTable) Select(names ...string) ([]NamedSeries, error) {
	if len(names) == 0 {
		return nil, goerr.New("at least one entity is required", goerr.V("source", t.Source))
	}
	result := make([]NamedSeries, 0, len(names))
	for _, name := range names {
		s, err := t.Series(name)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// InnerJoin aligns series on the years present in every one of them. Missing
// values stay NaN in the aligned slices. It returns the surviving years, one
// value slice per series, and the number of distinct years that were dropped.
func InnerJoin(series []NamedSeries) (years []int, values [][]float64, dropped int) {
	if len(series) == 0 {
		return nil, nil, 0
	}

	counts := make(map[int]int)
	for _, s := range series {
		for _, y := range s.Years() {
			counts[y]++
		}
	}
	for year, n := range counts {
		if n == len(series) {
			years = append(years, year)
		}
	}
	slices.Sort(years)

	values = make([][]float64, len(series))
	for i, s := range series {
		byYear := make(map[int]float64, len(s.Points))
		for k, v := range s.Values() {
			byYear[s.Points[k].Year] = v
		}
		values[i] = make([]float64, len(years))
		for k, y := range years {
			values[i][k] = byYear[y]
		}
	}
	return years, values, len(counts) - len(years)
}

// pairwiseComplete returns the values of a and b at positions where both are present
func pairwiseComplete(a, b []float64) (x, y []float64) {
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		x = append(x, a[k])
		y = append(y, b[k])
	}
	return x, y
}
