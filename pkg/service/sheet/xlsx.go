package sheet

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

func readWorkbook(path, sheet string) (rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, goerr.Wrap(model.ErrLoad, "failed to open workbook",
			goerr.V("path", path),
			goerr.V("cause", err.Error()))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = goerr.Wrap(cerr, "failed to close workbook", goerr.V("path", path))
		}
	}()

	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, goerr.Wrap(model.ErrLoad, "sheet not found",
			goerr.V("path", path),
			goerr.V("sheet", sheet),
			goerr.V("sheets", f.GetSheetList()))
	}

	rows, err = f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, goerr.Wrap(model.ErrLoad, "failed to read rows",
			goerr.V("path", path),
			goerr.V("sheet", sheet),
			goerr.V("cause", err.Error()))
	}
	return rows, nil
}
