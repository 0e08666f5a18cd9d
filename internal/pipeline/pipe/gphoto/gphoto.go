// Package gphoto makes sure gphoto2 is available in the guest.
package gphoto

import (
	"fmt"

	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/context"
)

// Pipe for gphoto2.
type Pipe struct{}

func (Pipe) String() string { return "checking gphoto2" }

func (Pipe) Run(ctx *context.Context) error {
	err := ctx.GPhoto.Version(ctx)
	if err == nil {
		return nil
	}
	if !ctx.Config.AllowInstallations {
		return fmt.Errorf("please install gphoto2 in WSL: %w", err)
	}

	log.WithError(err).Warn("gphoto2 not found, installing it")
	if err := ctx.GPhoto.Install(ctx); err != nil {
		return fmt.Errorf("error installing gphoto2: %w", err)
	}
	return nil
}
