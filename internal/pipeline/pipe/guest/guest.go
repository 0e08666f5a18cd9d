// Package guest prepares USB/IP inside the WSL distro.
package guest

import (
	"fmt"

	"github.com/blacktop/wslcam/internal/context"
)

// SetupPipe installs the usbip client tools in the guest.
type SetupPipe struct{}

func (SetupPipe) String() string { return "setting up USB in WSL" }

func (SetupPipe) Run(ctx *context.Context) error {
	if err := ctx.WSL.EnableUSB(ctx); err != nil {
		return fmt.Errorf("failed to setup USB communication in WSL: %w", err)
	}
	return nil
}

// DevicesPipe shows the USB devices the guest sees once the camera is attached.
type DevicesPipe struct{}

func (DevicesPipe) String() string { return "listing WSL USB devices" }

func (DevicesPipe) Run(ctx *context.Context) error {
	if err := ctx.WSL.ListUSB(ctx); err != nil {
		return fmt.Errorf("error listing WSL USB devices: %w", err)
	}
	return nil
}
