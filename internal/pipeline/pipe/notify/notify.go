// Package notify shows a desktop notification once the photos are saved.
package notify

import (
	"fmt"

	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/pipe"
)

// Pipe for notifications.
type Pipe struct{}

func (Pipe) String() string { return "notifying" }

// Skip skips the pipe unless notifications are enabled.
func (Pipe) Skip(ctx *context.Context) bool { return !ctx.Config.Notify || ctx.Notify == nil }

// Run sends the notification. A failure only skips the pipe.
func (Pipe) Run(ctx *context.Context) error {
	msg := fmt.Sprintf("Saved %d photos to %s", len(ctx.Converted), ctx.Destination)
	if err := ctx.Notify("wslcam", msg); err != nil {
		return pipe.Skip(fmt.Sprintf("failed to send notification: %v", err))
	}
	return nil
}
