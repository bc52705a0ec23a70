// Package testutil builds indicator source fixtures for tests
package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/xuri/excelize/v2"
)

// Entity is a fixture row: the entity name and one cell per year, "" for blank
type Entity struct {
	Name   string
	Values []string
}

// IndicatorRows builds sheet rows in the indicator layout: three preamble
// rows, the header row, then one row per entity
func IndicatorRows(indicator string, years []int, entities ...Entity) [][]string {
	rows := [][]string{
		{"Data Source", "World Development Indicators"},
		{"Last Updated Date", "2022-12-01"},
		{"Note", "fixture"},
	}

	header := []string{"Country Name", "Country Code", "Indicator Name", "Indicator Code"}
	for _, y := range years {
		header = append(header, strconv.Itoa(y))
	}
	rows = append(rows, header)

	code := strings.ToUpper(strings.ReplaceAll(indicator, " ", "."))
	for _, e := range entities {
		row := []string{e.Name, entityCode(e.Name), indicator, code}
		row = append(row, e.Values...)
		rows = append(rows, row)
	}
	return rows
}

// Series formats values as fixture cells, NaN-free
func Series(values ...float64) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return cells
}

// WriteWorkbook writes rows into the Data sheet of a new workbook and returns its path
func WriteWorkbook(t testing.TB, dir, name string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	gt.NoError(t, f.SetSheetName("Sheet1", "Data"))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		gt.NoError(t, err)

		values := make([]any, len(row))
		for j, s := range row {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				values[j] = v
			} else if s != "" {
				values[j] = s
			}
		}
		gt.NoError(t, f.SetSheetRow("Data", cell, &values))
	}

	path := filepath.Join(dir, name)
	gt.NoError(t, f.SaveAs(path))
	return path
}

// WriteCSV writes rows as a CSV file and returns its path
func WriteCSV(t testing.TB, dir, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	fd, err := os.Create(path)
	gt.NoError(t, err)
	defer fd.Close()

	w := csv.NewWriter(fd)
	gt.NoError(t, w.WriteAll(rows))
	return path
}

func entityCode(name string) string {
	code := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(code) > 3 {
		code = code[:3]
	}
	return fmt.Sprintf("%-3s", code)
}
