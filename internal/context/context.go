// Package context provides the wslcam context which is passed through the
// pipeline.
//
// The context extends the standard library context and add a few more
// fields and other things, so pipes can gather data provided by previous
// pipes without really knowing each other.
package context

import (
	stdctx "context"
	"io"
	"runtime"

	"github.com/blacktop/wslcam/internal/config"
	"github.com/blacktop/wslcam/internal/prompt"
	"github.com/blacktop/wslcam/internal/shell"
	"github.com/blacktop/wslcam/pkg/gphoto2"
	"github.com/blacktop/wslcam/pkg/photo"
	"github.com/blacktop/wslcam/pkg/usbipd"
	"github.com/blacktop/wslcam/pkg/wsl"
)

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// Context carries along some data through the pipes.
type Context struct {
	stdctx.Context
	Config *config.Config

	USBIPD *usbipd.Client
	WSL    *wsl.Client
	GPhoto *gphoto2.Client
	Prompt prompt.Prompter
	Notify Notifier
	// Progress receives the conversion progress bar; nil discards it.
	Progress io.Writer

	// filled in by the pipes
	USBIPDVersion string
	Ports         *usbipd.PortTable
	BusID         string
	Destination   string
	Converted     []photo.Result

	Runtime Runtime
}

type Runtime struct {
	Goos   string
	Goarch string
}

// New context.
func New(cfg *config.Config, r shell.Runner, p prompt.Prompter) *Context {
	return Wrap(stdctx.Background(), cfg, r, p)
}

// WrapWithCancel wraps ctx in a context that is canceled by the returned
// function. Commands started through it are killed on cancel.
func WrapWithCancel(ctx stdctx.Context, cfg *config.Config, r shell.Runner, p prompt.Prompter) (*Context, stdctx.CancelFunc) {
	ctx, cancel := stdctx.WithCancel(ctx)
	return Wrap(ctx, cfg, r, p), cancel
}

// Wrap wraps an existing context.
func Wrap(ctx stdctx.Context, cfg *config.Config, r shell.Runner, p prompt.Prompter) *Context {
	w := wsl.NewClient(r, cfg.Distro)
	return &Context{
		Context: ctx,
		Config:  cfg,
		USBIPD:  usbipd.NewClient(r),
		WSL:     w,
		GPhoto:  gphoto2.NewClient(w),
		Prompt:  p,
		Runtime: Runtime{
			Goos:   runtime.GOOS,
			Goarch: runtime.GOARCH,
		},
	}
}

// Port returns the selected port.
func (c *Context) Port() (usbipd.Port, bool) {
	if c.Ports == nil || c.BusID == "" {
		return usbipd.Port{}, false
	}
	return c.Ports.Get(c.BusID)
}
