// Package safe runs callbacks that may panic inside third-party code
package safe

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ErrPanic is wrapped by errors returned for a recovered panic
var ErrPanic = goerr.New("panic recovered")

// Call executes handler and converts a panic into an error. The stack of the
// panic is logged at error level.
func Call(ctx context.Context, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("Panic in handler",
				"recover", r,
				"stack", string(stack),
			)
			err = goerr.Wrap(ErrPanic, "handler panicked", goerr.V("recover", r))
		}
	}()

	return handler(ctx)
}
