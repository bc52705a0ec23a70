// Package apperr reports errors that reach the top of the application
package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/indiviz/pkg/domain/model"
	"github.com/secmon-lab/indiviz/pkg/utils/safe"
)

// Kind classifies an application error by the sentinel it wraps
func Kind(err error) string {
	switch {
	case errors.Is(err, model.ErrLoad):
		return "load"
	case errors.Is(err, model.ErrLookup), errors.Is(err, model.ErrTableNotFound):
		return "lookup"
	case errors.Is(err, model.ErrDegenerateInput):
		return "degenerate_input"
	case errors.Is(err, safe.ErrPanic):
		return "panic"
	default:
		return "other"
	}
}

// Handle logs err with its kind
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	ctxlog.From(ctx).Error("application error", "kind", Kind(err), "error", err)
}
