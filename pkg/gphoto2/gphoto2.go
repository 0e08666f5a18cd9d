// Package gphoto2 drives the gphoto2 camera tool inside WSL.
package gphoto2

import (
	"context"

	"github.com/blacktop/wslcam/pkg/wsl"
)

// Package is the guest package providing the gphoto2 binary.
const Package = "gphoto2"

const binary = "gphoto2"

// Client runs gphoto2 through a WSL client.
//
// Every command uses --auto-detect, so it talks to whichever camera the guest
// sees; with more than one camera attached the choice is gphoto2's.
type Client struct {
	wsl *wsl.Client
}

// NewClient returns a gphoto2 client on top of w.
func NewClient(w *wsl.Client) *Client {
	return &Client{wsl: w}
}

// Version checks that gphoto2 is installed and runs.
func (c *Client) Version(ctx context.Context) error {
	_, err := c.wsl.Run(ctx, c.wsl.Command(false, binary, "--version"))
	return err
}

// Install installs gphoto2 with the guest package manager.
func (c *Client) Install(ctx context.Context) error {
	return c.wsl.Install(ctx, Package)
}

// GetAllFiles downloads every file on the camera into dir.
func (c *Client) GetAllFiles(ctx context.Context, dir string) error {
	_, err := c.wsl.Run(ctx, c.wsl.Command(true, binary, "--auto-detect", "-P").In(dir))
	return err
}

// DeleteAllFiles deletes every file on the camera.
func (c *Client) DeleteAllFiles(ctx context.Context) error {
	_, err := c.wsl.Run(ctx, c.wsl.Command(true, binary, "--auto-detect", "-D"))
	return err
}
