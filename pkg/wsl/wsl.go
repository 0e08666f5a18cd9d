// Package wsl runs commands inside a Windows Subsystem for Linux distribution.
package wsl

import (
	"context"

	"github.com/blacktop/wslcam/internal/shell"
)

// DefaultPath is the WSL launcher looked up on PATH.
const DefaultPath = "wsl"

// usbSetupCommand installs the usbip client tools in the guest and makes the
// kernel-versioned binary available as `usbip`.
const usbSetupCommand = `sh -c "apt install linux-tools-generic hwdata && ` +
	`update-alternatives --install /usr/local/bin/usbip usbip /usr/lib/linux-tools/*-generic/usbip 20"`

// Client runs commands in a WSL distribution.
type Client struct {
	Path string
	// Distro selects a distribution; empty means the default one.
	Distro string
	runner shell.Runner
}

// NewClient returns a Client that launches wsl through r.
func NewClient(r shell.Runner, distro string) *Client {
	return &Client{Path: DefaultPath, Distro: distro, runner: r}
}

// Command builds a guest command line. root runs it as the guest's root user.
func (c *Client) Command(root bool, args ...string) *shell.Cmd {
	argv := []string{c.Path}
	if c.Distro != "" {
		argv = append(argv, "-d", c.Distro)
	}
	if root {
		argv = append(argv, "-u", "root")
	}
	return shell.Command(append(argv, args...)...)
}

// Run runs cmd through the client's runner.
func (c *Client) Run(ctx context.Context, cmd *shell.Cmd) (string, error) {
	return c.runner.Run(ctx, cmd)
}

// Version runs `wsl --version`. The output is captured so it can be decoded
// from the UTF-16 wsl.exe emits, then echoed.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, shell.Command(c.Path, "--version").Captured(true))
}

// EnableUSB installs the guest side USB/IP tooling. Needs root in the guest.
func (c *Client) EnableUSB(ctx context.Context) error {
	setup, err := shell.Parse(usbSetupCommand)
	if err != nil {
		return err
	}
	_, err = c.runner.Run(ctx, c.Command(true, setup.Args...))
	return err
}

// ListUSB runs `lsusb` in the guest.
func (c *Client) ListUSB(ctx context.Context) error {
	_, err := c.runner.Run(ctx, c.Command(false, "lsusb"))
	return err
}

// Install installs packages with the guest's package manager.
func (c *Client) Install(ctx context.Context, pkgs ...string) error {
	_, err := c.runner.Run(ctx, c.Command(true, append([]string{"apt", "install"}, pkgs...)...))
	return err
}
