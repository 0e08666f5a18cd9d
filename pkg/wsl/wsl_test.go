package wsl

import (
	"context"
	"reflect"
	"testing"

	"github.com/blacktop/wslcam/internal/shell/shelltest"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		distro string
		root   bool
		args   []string
		want   []string
	}{
		{
			name: "default distro",
			args: []string{"lsusb"},
			want: []string{"wsl", "lsusb"},
		},
		{
			name: "root",
			root: true,
			args: []string{"apt", "install", "gphoto2"},
			want: []string{"wsl", "-u", "root", "apt", "install", "gphoto2"},
		},
		{
			name:   "named distro",
			distro: "Ubuntu-22.04",
			root:   true,
			args:   []string{"lsusb"},
			want:   []string{"wsl", "-d", "Ubuntu-22.04", "-u", "root", "lsusb"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(shelltest.New(), tt.distro)
			if got := c.Command(tt.root, tt.args...).Args; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Command() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnableUSB(t *testing.T) {
	r := shelltest.New()
	c := NewClient(r, "")

	if err := c.EnableUSB(context.Background()); err != nil {
		t.Fatal(err)
	}
	script := "apt install linux-tools-generic hwdata && " +
		"update-alternatives --install /usr/local/bin/usbip usbip /usr/lib/linux-tools/*-generic/usbip 20"
	if !r.Called("wsl", "-u", "root", "sh", "-c", script) {
		t.Errorf("unexpected calls: %v", r.Calls)
	}
	if r.Calls[0].Capture {
		t.Error("USB setup should stream its output")
	}
}

func TestVersionIsCaptured(t *testing.T) {
	r := shelltest.New().Output("WSL version: 2.0.9.0", "wsl", "--version")

	out, err := NewClient(r, "Debian").Version(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "WSL version: 2.0.9.0" {
		t.Errorf("Version() = %q", out)
	}
	if !r.Calls[0].Capture || !r.Calls[0].Echo {
		t.Error("version should be captured and echoed")
	}
}
