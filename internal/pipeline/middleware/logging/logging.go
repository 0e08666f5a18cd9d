// Package logging prints a banner for every pipe and indents what it logs.
package logging

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/blacktop/wslcam/internal/colors"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/pipeline/middleware"
)

var defaultPadding = cli.Default.Padding

// Log pretty prints the given action and its title.
func Log(title string, next middleware.Action) middleware.Action {
	return func(ctx *context.Context) error {
		defer func() {
			cli.Default.Padding = defaultPadding
		}()
		cli.Default.Padding = defaultPadding
		log.Info(colors.Bold().Sprint(title))
		cli.Default.Padding = defaultPadding * 2
		return next(ctx)
	}
}
