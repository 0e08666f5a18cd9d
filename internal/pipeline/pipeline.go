// Package pipeline provides the camera retrieval pipeline.
package pipeline

import (
	stdctx "context"
	"fmt"

	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/pipeline/middleware/errhandler"
	"github.com/blacktop/wslcam/internal/pipeline/middleware/logging"
	"github.com/blacktop/wslcam/internal/pipeline/middleware/skip"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/attach"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/cleanup"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/gphoto"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/guest"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/notify"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/ports"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/preflight"
	"github.com/blacktop/wslcam/internal/pipeline/pipe/transfer"
)

// Piper defines a pipe, which can be part of a pipeline (a series of pipes).
type Piper interface {
	fmt.Stringer

	// Run the pipe
	Run(ctx *context.Context) error
}

// Pipeline contains all pipe implementations in order.
// nolint: gochecknoglobals
var Pipeline = []Piper{
	preflight.HostPipe{},  // usbipd --version
	preflight.GuestPipe{}, // wsl --version
	guest.SetupPipe{},     // install usbip in the guest
	ports.ListPipe{},      // usbipd wsl list
	ports.SelectPipe{},    // find the camera or ask for it
	attach.DetachPipe{},   // free the port if it is attached
	attach.Pipe{},         // attach the port to WSL
	guest.DevicesPipe{},   // lsusb
	gphoto.Pipe{},         // check or install gphoto2
	transfer.Pipe{},       // download, pick destination and convert
	cleanup.Pipe{},        // delete the photos from the camera
	notify.Pipe{},         // desktop notification
}

// Guard starts task and returns when it does or when the user interrupts it,
// e.g. ctrlc.Default.Run.
type Guard func(ctx stdctx.Context, task func() error) error

// RunGuarded runs the pipeline under guard. Once guard returns, ctx is
// canceled and the pipeline is waited for, so a pipe interrupted mid-way
// still kills its child and removes its staging directory.
func RunGuarded(ctx *context.Context, cancel stdctx.CancelFunc, guard Guard) error {
	done := make(chan struct{})
	err := guard(ctx, func() error {
		defer close(done)
		return Run(ctx)
	})
	cancel()
	<-done
	return err
}

// Run runs every pipe in order and stops at the first error.
func Run(ctx *context.Context) error {
	for _, pipe := range Pipeline {
		if err := skip.Maybe(
			pipe,
			logging.Log(
				pipe.String(),
				errhandler.Handle(pipe.Run),
			),
		)(ctx); err != nil {
			return err
		}
	}
	return nil
}
