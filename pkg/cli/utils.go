package cli

import (
	"github.com/secmon-lab/indiviz/pkg/service/sheet"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

func sheetFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "sheet",
		Usage:       "Workbook sheet holding the indicator data",
		Value:       sheet.DefaultSheet,
		Sources:     cli.EnvVars("INDIVIZ_SHEET"),
		Destination: dst,
	}
}
