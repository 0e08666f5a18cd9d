// Package attach attaches the camera port to WSL.
package attach

import (
	"fmt"

	"github.com/blacktop/wslcam/internal/context"
)

// DetachPipe releases the port when it is already attached somewhere.
type DetachPipe struct{}

func (DetachPipe) String() string { return "detaching USB port" }

// Skip skips the pipe when the port is free.
func (DetachPipe) Skip(ctx *context.Context) bool {
	port, ok := ctx.Port()
	return !ok || !port.Attached()
}

func (DetachPipe) Run(ctx *context.Context) error {
	if err := ctx.USBIPD.Detach(ctx, ctx.BusID); err != nil {
		return fmt.Errorf("error detaching USB port: %w", err)
	}
	return nil
}

// Pipe attaches the port to the WSL guest.
type Pipe struct{}

func (Pipe) String() string { return "attaching USB port to WSL" }

func (Pipe) Run(ctx *context.Context) error {
	if err := ctx.USBIPD.Attach(ctx, ctx.BusID); err != nil {
		return fmt.Errorf("error attaching USB port to WSL: %w", err)
	}
	return nil
}
