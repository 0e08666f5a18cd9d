// Package usbipd drives the usbipd-win host utility that shares USB devices
// with WSL distributions.
package usbipd

import (
	"context"
	"fmt"
	"strings"

	"github.com/blacktop/wslcam/internal/shell"
	"github.com/hashicorp/go-version"
)

// DefaultPath is the usbipd executable looked up on PATH.
const DefaultPath = "usbipd"

// wslRemovedIn is the first usbipd release that dropped the `wsl` subcommands.
var wslRemovedIn = version.Must(version.NewVersion("4.0.0"))

// Client runs usbipd commands.
type Client struct {
	Path   string
	runner shell.Runner
}

// NewClient returns a Client that runs usbipd through r.
func NewClient(r shell.Runner) *Client {
	return &Client{Path: DefaultPath, runner: r}
}

func (c *Client) command(args ...string) *shell.Cmd {
	return shell.Command(append([]string{c.Path}, args...)...)
}

// Version runs `usbipd --version` and returns its (echoed) output.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.command("--version").Captured(true))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// List runs `usbipd wsl list` and parses the port table.
func (c *Client) List(ctx context.Context) (*PortTable, error) {
	out, err := c.runner.Run(ctx, c.command("wsl", "list").Captured(true))
	if err != nil {
		return nil, err
	}
	return ParseList(out)
}

// Attach attaches the port to WSL.
func (c *Client) Attach(ctx context.Context, busID string) error {
	_, err := c.runner.Run(ctx, c.command("wsl", "attach", "--busid", busID))
	return err
}

// Detach detaches the port from whatever it is attached to.
func (c *Client) Detach(ctx context.Context, busID string) error {
	_, err := c.runner.Run(ctx, c.command("wsl", "detach", "--busid", busID))
	return err
}

// ParseVersion parses the first line of `usbipd --version`, e.g.
// "4.3.0+42.Branch.master.Sha.c1c3f28".
func ParseVersion(out string) (*version.Version, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	v, err := version.NewVersion(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("failed to parse usbipd version %q: %w", line, err)
	}
	return v, nil
}

// LegacyWSL returns true if v still ships the `usbipd wsl ...` subcommands.
func LegacyWSL(v *version.Version) bool {
	return v.LessThan(wslRemovedIn)
}
