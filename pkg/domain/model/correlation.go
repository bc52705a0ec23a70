package model

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix holds pairwise Pearson coefficients between indicators.
// Each coefficient uses the years of Years where both indicators have a value.
// Values[i][j] is NaN when fewer than two such years exist or either side has
// zero variance over them.
type CorrelationMatrix struct {
	Labels       []string
	Values       [][]float64
	Years        []int
	DroppedYears int
}

// Correlate aligns the series by year with an inner join, relabels them with
// labels and computes the Pearson correlation matrix over pairwise complete
// observations.
func Correlate(series []NamedSeries, labels []string) (*CorrelationMatrix, error) {
	if len(series) != len(labels) {
		return nil, goerr.New("number of labels must match number of series",
			goerr.V("series", len(series)),
			goerr.V("labels", len(labels)))
	}
	if len(series) == 0 {
		return nil, goerr.Wrap(ErrDegenerateInput, "no series to correlate")
	}

	years, values, dropped := InnerJoin(series)
	if len(years) == 0 {
		return nil, goerr.Wrap(ErrDegenerateInput, "series have no overlapping years",
			goerr.V("labels", labels),
			goerr.V("dropped", dropped))
	}

	n := len(series)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			r := pearson(values[i], values[j])
			m[i][j] = r
			m[j][i] = r
		}
	}

	out := make([]string, n)
	copy(out, labels)
	return &CorrelationMatrix{
		Labels:       out,
		Values:       m,
		Years:        years,
		DroppedYears: dropped,
	}, nil
}

// Size returns the number of indicators in the matrix
func (c *CorrelationMatrix) Size() int {
	return len(c.Labels)
}

// At returns the coefficient between indicators i and j
func (c *CorrelationMatrix) At(i, j int) float64 {
	return c.Values[i][j]
}

func pearson(a, b []float64) float64 {
	x, y := pairwiseComplete(a, b)
	if zeroVariance(x) || zeroVariance(y) {
		return math.NaN()
	}
	return clamp(stat.Correlation(x, y, nil))
}

func zeroVariance(v []float64) bool {
	if len(v) < 2 {
		return true
	}
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}

// clamp keeps rounding noise from pushing a coefficient outside [-1, 1]
func clamp(r float64) float64 {
	if math.IsNaN(r) {
		return r
	}
	return math.Max(-1, math.Min(1, r))
}
