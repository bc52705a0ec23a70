package sheet

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indiviz/pkg/domain/interfaces"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
)

// DefaultSheet is the workbook sheet holding indicator data
const DefaultSheet = "Data"

// Option is a functional option for configuring Reader
type Option func(*Reader)

// WithSheet sets the workbook sheet to read
func WithSheet(name string) Option {
	return func(r *Reader) {
		r.sheet = name
	}
}

// Reader reads indicator sources from xlsx workbooks or CSV exports,
// chosen by file extension
type Reader struct {
	sheet string
}

var _ interfaces.SheetReader = (*Reader)(nil)

// New creates a new Reader
func New(opts ...Option) *Reader {
	r := &Reader{sheet: DefaultSheet}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadRows returns every row of the source as cell text
func (r *Reader) ReadRows(ctx context.Context, path string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ctxlog.From(ctx).Debug("reading indicator source", "path", path, "format", ext)

	switch ext {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, r.sheet)
	case ".csv":
		return readCSV(path)
	default:
		return nil, goerr.Wrap(model.ErrLoad, "unsupported source format",
			goerr.V("path", path),
			goerr.V("ext", ext))
	}
}
