// Package ports finds the USB port the camera is plugged into.
package ports

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/pkg/usbipd"
)

// ListPipe reads the usbipd port table.
type ListPipe struct{}

func (ListPipe) String() string { return "listing USB ports" }

func (ListPipe) Run(ctx *context.Context) error {
	table, err := ctx.USBIPD.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list USB ports: %w", err)
	}
	ctx.Ports = table
	log.Debugf("found %d USB ports", table.Len())
	return nil
}

// SelectPipe picks the camera port, asking the user when no known camera
// name matches.
type SelectPipe struct{}

func (SelectPipe) String() string { return "selecting camera port" }

func (SelectPipe) Run(ctx *context.Context) error {
	if ctx.Ports == nil {
		return fmt.Errorf("no USB port table")
	}

	busID, ok := usbipd.FindCamera(ctx.Ports, ctx.Config.KnownNames)
	if !ok {
		log.Warn("could not find the camera automatically")
		for {
			answer, err := ctx.Prompt.Input("Please enter the port ID that corresponds to the camera")
			if err != nil {
				return fmt.Errorf("failed to read port ID: %w", err)
			}
			answer = strings.TrimSpace(answer)
			if ctx.Ports.Has(answer) {
				busID = answer
				break
			}
			log.Errorf("%q is not a listed port ID", answer)
		}
	}

	ctx.BusID = busID
	port, _ := ctx.Ports.Get(busID)
	log.WithField("device", port.Device).Infof("Using USB port %s", busID)
	return nil
}
