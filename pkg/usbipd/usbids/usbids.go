// Package usbids names usbipd ports from the linux-usb.org id database.
package usbids

import (
	"github.com/blacktop/wslcam/pkg/usbipd"
	"github.com/google/gousb"
	"github.com/google/gousb/usbid"
)

// Describe returns the vendor and product names of the port's VID:PID,
// or the DEVICE column when the VID:PID cannot be parsed.
func Describe(p usbipd.Port) string {
	vid, pid, err := p.IDs()
	if err != nil {
		return p.Device
	}
	return usbid.Describe(&gousb.DeviceDesc{Vendor: gousb.ID(vid), Product: gousb.ID(pid)})
}
