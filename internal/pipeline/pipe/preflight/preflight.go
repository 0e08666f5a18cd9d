// Package preflight checks that the host and guest tools are usable.
package preflight

import (
	"fmt"

	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/pkg/usbipd"
)

// HostPipe checks usbipd on the Windows host.
type HostPipe struct{}

func (HostPipe) String() string { return "checking usbipd" }

// Run runs `usbipd --version`.
func (HostPipe) Run(ctx *context.Context) error {
	if ctx.Runtime.Goos != "windows" {
		log.Warnf("usbipd and wsl only exist on Windows, running on %s/%s", ctx.Runtime.Goos, ctx.Runtime.Goarch)
	}

	out, err := ctx.USBIPD.Version(ctx)
	if err != nil {
		return fmt.Errorf("usbipd is not working, try installing it from https://github.com/dorssel/usbipd-win/releases: %w", err)
	}
	ctx.USBIPDVersion = out

	v, err := usbipd.ParseVersion(out)
	if err != nil {
		log.WithError(err).Debug("unknown usbipd version")
		return nil
	}
	if !usbipd.LegacyWSL(v) {
		log.WithField("version", v.String()).Warn("usbipd 4.0.0 and later removed the 'wsl' subcommands, install an earlier release if attaching fails")
	}

	return nil
}

// GuestPipe checks that WSL runs.
type GuestPipe struct{}

func (GuestPipe) String() string { return "checking WSL" }

// Run runs `wsl --version`.
func (GuestPipe) Run(ctx *context.Context) error {
	if _, err := ctx.WSL.Version(ctx); err != nil {
		return fmt.Errorf("WSL is not working, try installing it and make sure the default distro is the one you want to use: %w", err)
	}
	return nil
}
