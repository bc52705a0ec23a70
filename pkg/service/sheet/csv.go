package sheet

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

const utf8BOM = "\uFEFF"

// readCSV reads a CSV export. Blank lines are skipped by the CSV parser, so
// the export must keep non-empty preamble rows to match the sheet layout.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(model.ErrLoad, "failed to open csv",
			goerr.V("path", path),
			goerr.V("cause", err.Error()))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, goerr.Wrap(model.ErrLoad, "failed to parse csv",
			goerr.V("path", path),
			goerr.V("cause", err.Error()))
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}
