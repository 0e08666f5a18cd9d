// Package cleanup deletes the transferred photos from the camera.
package cleanup

import (
	"fmt"

	"github.com/blacktop/wslcam/internal/context"
)

// Pipe for cleanup.
type Pipe struct{}

func (Pipe) String() string { return "deleting photos from camera" }

// Skip skips the pipe unless delete-after-transfer is set.
func (Pipe) Skip(ctx *context.Context) bool { return !ctx.Config.DeleteAfterTransfer }

func (Pipe) Run(ctx *context.Context) error {
	if err := ctx.GPhoto.DeleteAllFiles(ctx); err != nil {
		return fmt.Errorf("error deleting photos from camera: %w", err)
	}
	return nil
}
