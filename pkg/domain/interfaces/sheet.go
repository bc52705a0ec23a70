package interfaces

//go:generate moq -out mocks/sheet_mock.go -pkg mocks . SheetReader

import (
	"context"
)

// SheetReader loads the raw cell rows of an indicator source. Every row is
// returned as cell text; short rows are allowed.
type SheetReader interface {
	ReadRows(ctx context.Context, path string) ([][]string, error)
}
