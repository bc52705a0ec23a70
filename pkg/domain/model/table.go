package model

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Column headers of the indicator sheet layout
const (
	ColumnCountryName   = "Country Name"
	ColumnCountryCode   = "Country Code"
	ColumnIndicatorName = "Indicator Name"
	ColumnIndicatorCode = "Indicator Code"
)

// HeaderOffset is the number of preamble rows preceding the header row
const HeaderOffset = 3

// Indicator describes the metric carried by a table
type Indicator struct {
	Name string
	Code string
}

// IndicatorTable is the cleaned row form of an indicator sheet: one row per
// entity, one column per year. Values[i][j] is the value of Entities[i] at
// Years[j]; NaN marks a missing value.
type IndicatorTable struct {
	Source       string
	Indicator    Indicator
	Entities     []string
	Years        []int
	Values       [][]float64
	DroppedYears []int
}

type yearColumn struct {
	year  int
	index int
}

// ParseIndicatorTable builds an IndicatorTable from raw sheet rows. The first
// HeaderOffset rows are skipped, the next row is the header. Year columns that
// are empty for every entity are dropped together with the code and
// descriptive columns.
func ParseIndicatorTable(source string, rows [][]string) (*IndicatorTable, error) {
	if len(rows) <= HeaderOffset {
		return nil, goerr.Wrap(ErrLoad, "header row not found",
			goerr.V("source", source),
			goerr.V("rows", len(rows)),
			goerr.V("offset", HeaderOffset))
	}

	header := rows[HeaderOffset]
	required := []string{ColumnCountryName, ColumnCountryCode, ColumnIndicatorName, ColumnIndicatorCode}
	index := make(map[string]int, len(required))
	lastMeta := -1
	for _, name := range required {
		i := slices.IndexFunc(header, func(h string) bool { return strings.TrimSpace(h) == name })
		if i < 0 {
			return nil, goerr.Wrap(ErrLoad, "required column is missing",
				goerr.V("source", source),
				goerr.V("column", name))
		}
		index[name] = i
		lastMeta = max(lastMeta, i)
	}

	var columns []yearColumn
	seen := make(map[int]bool)
	for i := lastMeta + 1; i < len(header); i++ {
		h := strings.TrimSpace(header[i])
		if h == "" {
			continue
		}
		year, err := strconv.Atoi(h)
		if err != nil {
			return nil, goerr.Wrap(ErrLoad, "year column header is not an integer",
				goerr.V("source", source),
				goerr.V("header", h),
				goerr.V("column", i))
		}
		if seen[year] {
			return nil, goerr.Wrap(ErrLoad, "duplicated year column",
				goerr.V("source", source),
				goerr.V("year", year))
		}
		seen[year] = true
		columns = append(columns, yearColumn{year: year, index: i})
	}
	slices.SortFunc(columns, func(a, b yearColumn) int { return a.year - b.year })

	table := &IndicatorTable{Source: source}
	entities := make(map[string]bool)
	for r, row := range rows[HeaderOffset+1:] {
		name := strings.TrimSpace(cellAt(row, index[ColumnCountryName]))
		if name == "" {
			continue
		}
		if entities[name] {
			return nil, goerr.Wrap(ErrLoad, "duplicated entity",
				goerr.V("source", source),
				goerr.V("entity", name))
		}
		entities[name] = true

		if len(table.Entities) == 0 {
			table.Indicator = Indicator{
				Name: strings.TrimSpace(cellAt(row, index[ColumnIndicatorName])),
				Code: strings.TrimSpace(cellAt(row, index[ColumnIndicatorCode])),
			}
		}

		values := make([]float64, len(columns))
		for j, col := range columns {
			v, err := parseCell(cellAt(row, col.index))
			if err != nil {
				return nil, goerr.Wrap(ErrLoad, "cell is not numeric",
					goerr.V("source", source),
					goerr.V("row", HeaderOffset+2+r),
					goerr.V("entity", name),
					goerr.V("year", col.year))
			}
			values[j] = v
		}
		table.Entities = append(table.Entities, name)
		table.Values = append(table.Values, values)
	}

	if len(table.Entities) == 0 {
		return nil, goerr.Wrap(ErrLoad, "no data rows", goerr.V("source", source))
	}

	return table.dropEmptyYears(columns), nil
}

func (t *IndicatorTable) dropEmptyYears(columns []yearColumn) *IndicatorTable {
	keep := make([]int, 0, len(columns))
	for j, col := range columns {
		empty := true
		for i := range t.Values {
			if !math.IsNaN(t.Values[i][j]) {
				empty = false
				break
			}
		}
		if empty {
			t.DroppedYears = append(t.DroppedYears, col.year)
			continue
		}
		keep = append(keep, j)
		t.Years = append(t.Years, col.year)
	}

	for i, row := range t.Values {
		kept := make([]float64, len(keep))
		for k, j := range keep {
			kept[k] = row[j]
		}
		t.Values[i] = kept
	}
	return t
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Row returns a copy of the values of entity in year order
func (t *IndicatorTable) Row(entity string) ([]float64, error) {
	i := slices.Index(t.Entities, entity)
	if i < 0 {
		return nil, goerr.Wrap(ErrLookup, "entity not found",
			goerr.V("source", t.Source),
			goerr.V("entity", entity))
	}
	return slices.Clone(t.Values[i]), nil
}

// Transpose returns the by-country view of the table
func (t *IndicatorTable) Transpose() (*ByCountryTable, error) {
	byCountry, err := NewByCountryTable(t.Years, t.Entities, t.Values)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to transpose table", goerr.V("source", t.Source))
	}
	byCountry.Source = t.Source
	byCountry.Indicator = t.Indicator
	return byCountry, nil
}

// ByCountryTable is the transposed view of an IndicatorTable. Years is the
// ascending row index and every entity column spans all of it.
type ByCountryTable struct {
	Source    string
	Indicator Indicator
	Years     []int
	Entities  []string
	columns   map[string][]float64
}

// NewByCountryTable builds a table from explicit columns. columns[i] holds the
// values of entities[i] aligned with years. Years are sorted if needed.
func NewByCountryTable(years []int, entities []string, columns [][]float64) (*ByCountryTable, error) {
	if len(entities) != len(columns) {
		return nil, goerr.New("entities and columns must have the same length",
			goerr.V("entities", len(entities)),
			goerr.V("columns", len(columns)))
	}

	order := make([]int, len(years))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return years[a] - years[b] })
	sorted := make([]int, len(years))
	for i, j := range order {
		sorted[i] = years[j]
		if i > 0 && sorted[i] == sorted[i-1] {
			return nil, goerr.New("duplicated year", goerr.V("year", sorted[i]))
		}
	}

	t := &ByCountryTable{
		Years:    sorted,
		Entities: slices.Clone(entities),
		columns:  make(map[string][]float64, len(entities)),
	}
	for i, name := range entities {
		if len(columns[i]) != len(years) {
			return nil, goerr.New("column length does not match years",
				goerr.V("entity", name),
				goerr.V("length", len(columns[i])),
				goerr.V("years", len(years)))
		}
		if _, ok := t.columns[name]; ok {
			return nil, goerr.New("duplicated entity", goerr.V("entity", name))
		}
		col := make([]float64, len(order))
		for k, j := range order {
			col[k] = columns[i][j]
		}
		t.columns[name] = col
	}
	return t, nil
}

// Has reports whether entity is a column of the table
func (t *ByCountryTable) Has(entity string) bool {
	_, ok := t.columns[entity]
	return ok
}

// Column returns a copy of the entity's year series
func (t *ByCountryTable) Column(entity string) ([]float64, error) {
	col, ok := t.columns[entity]
	if !ok {
		return nil, goerr.Wrap(ErrLookup, "entity not found",
			goerr.V("source", t.Source),
			goerr.V("entity", entity))
	}
	return slices.Clone(col), nil
}

// YearIndex returns the row position of year
func (t *ByCountryTable) YearIndex(year int) (int, error) {
	i, ok := slices.BinarySearch(t.Years, year)
	if !ok {
		return -1, goerr.Wrap(ErrLookup, "year not found",
			goerr.V("source", t.Source),
			goerr.V("year", year))
	}
	return i, nil
}

// Value returns the cell at (year, entity). A missing cell is NaN.
func (t *ByCountryTable) Value(year int, entity string) (float64, error) {
	col, ok := t.columns[entity]
	if !ok {
		return 0, goerr.Wrap(ErrLookup, "entity not found",
			goerr.V("source", t.Source),
			goerr.V("entity", entity))
	}
	i, err := t.YearIndex(year)
	if err != nil {
		return 0, err
	}
	return col[i], nil
}

// YearRange returns the first and last year of the index
func (t *ByCountryTable) YearRange() (start, end int, err error) {
	if len(t.Years) == 0 {
		return 0, 0, goerr.Wrap(ErrLookup, "table has no years", goerr.V("source", t.Source))
	}
	return t.Years[0], t.Years[len(t.Years)-1], nil
}
