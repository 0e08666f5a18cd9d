package usbipd

import (
	"context"
	"testing"

	"github.com/blacktop/wslcam/internal/shell"
	"github.com/blacktop/wslcam/internal/shell/shelltest"
)

func TestClientList(t *testing.T) {
	r := shelltest.New().Output(listOutput, "usbipd", "wsl", "list")
	c := NewClient(r)

	table, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	calls := r.Find("usbipd", "wsl", "list")
	if len(calls) != 1 || !calls[0].Capture || !calls[0].Echo {
		t.Errorf("expected one captured+echoed list call, got %v", calls)
	}
}

func TestClientListFailure(t *testing.T) {
	r := shelltest.New().Fail(1, "usbipd", "wsl", "list")

	if _, err := NewClient(r).List(context.Background()); shell.ExitCode(err) != 1 {
		t.Errorf("List() error = %v, want exit code 1", err)
	}
}

func TestClientAttachDetach(t *testing.T) {
	r := shelltest.New()
	c := NewClient(r)

	if err := c.Detach(context.Background(), "1-1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Attach(context.Background(), "1-1"); err != nil {
		t.Fatal(err)
	}
	if !r.Called("usbipd", "wsl", "detach", "--busid", "1-1") {
		t.Error("detach was not called")
	}
	if !r.Called("usbipd", "wsl", "attach", "--busid", "1-1") {
		t.Error("attach was not called")
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		legacy  bool
		wantErr bool
	}{
		{in: "2.4.1+12.Branch.master.Sha.aaaa\r\n", legacy: true},
		{in: "3.2.0", legacy: true},
		{in: "4.3.0+42.Branch.master.Sha.c1c3f28", legacy: false},
		{in: "not a version", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := LegacyWSL(v); got != tt.legacy {
				t.Errorf("LegacyWSL(%s) = %t, want %t", v, got, tt.legacy)
			}
		})
	}
}
