// Package errhandler turns skip errors returned by pipes into warnings.
package errhandler

import (
	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/pipe"
	"github.com/blacktop/wslcam/internal/pipeline/middleware"
)

// Handle handles an action error, ignoring and logging pipe skipped
// errors.
func Handle(action middleware.Action) middleware.Action {
	return func(ctx *context.Context) error {
		err := action(ctx)
		if err == nil {
			return nil
		}
		if pipe.IsSkip(err) {
			log.WithField("reason", err.Error()).Warn("pipe skipped")
			return nil
		}
		return err
	}
}
