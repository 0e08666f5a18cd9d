package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

// TestHelperProcess is not a real test; it is re-executed by helperCmd to
// act as the child process.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("WSLCAM_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) > 0 {
		args = args[1:]
	}
	switch args[0] {
	case "echo":
		fmt.Fprint(os.Stdout, strings.Join(args[1:], " "))
	case "warn":
		fmt.Fprint(os.Stderr, strings.Join(args[1:], " "))
	case "pwd":
		wd, _ := os.Getwd()
		fmt.Fprint(os.Stdout, wd)
	case "exit":
		fmt.Fprint(os.Stdout, "partial")
		fmt.Fprint(os.Stderr, "boom")
		os.Exit(2)
	}
	os.Exit(0)
}

func helperCmd(args ...string) *Cmd {
	c := Command(append([]string{os.Args[0], "-test.run=TestHelperProcess", "--"}, args...)...)
	c.Env = []string{"WSLCAM_WANT_HELPER_PROCESS=1"}
	return c
}

func testExec() (*Exec, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Exec{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRunCaptureReturnsOutput(t *testing.T) {
	e, stdout, _ := testExec()

	out, err := e.Run(context.Background(), helperCmd("echo", "hello").Captured(false))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Run() = %q, want %q", out, "hello")
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no echo, got %q", stdout.String())
	}
}

func TestRunCaptureEcho(t *testing.T) {
	e, stdout, _ := testExec()

	if _, err := e.Run(context.Background(), helperCmd("echo", "hello").Captured(true)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "hello" {
		t.Errorf("echoed %q, want %q", got, "hello")
	}
}

func TestRunCapturePrintsStderr(t *testing.T) {
	e, _, stderr := testExec()

	if _, err := e.Run(context.Background(), helperCmd("warn", "careful").Captured(false)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(stderr.String()); got != "careful" {
		t.Errorf("stderr = %q, want %q", got, "careful")
	}
}

func TestRunCapturePrintsBlankStderr(t *testing.T) {
	e, _, stderr := testExec()

	if _, err := e.Run(context.Background(), helperCmd("warn", " ").Captured(false)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := stderr.String(); got != " \n" {
		t.Errorf("stderr = %q, want %q", got, " \n")
	}
}

func TestRunExitCode(t *testing.T) {
	tests := []struct {
		name    string
		capture bool
	}{
		{name: "captured", capture: true},
		{name: "streamed", capture: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := testExec()
			c := helperCmd("exit")
			c.Capture = tt.capture

			_, err := e.Run(context.Background(), c)
			if err == nil {
				t.Fatal("expected an error")
			}
			var ee *ExitError
			if !errors.As(err, &ee) {
				t.Fatalf("expected *ExitError, got %T", err)
			}
			if ee.Code != 2 {
				t.Errorf("Code = %d, want 2", ee.Code)
			}
			if ExitCode(err) != 2 {
				t.Errorf("ExitCode() = %d, want 2", ExitCode(err))
			}
			if tt.capture {
				if ee.Stdout != "partial" || ee.Stderr != "boom" {
					t.Errorf("streams = (%q, %q), want (%q, %q)", ee.Stdout, ee.Stderr, "partial", "boom")
				}
			}
		})
	}
}

func TestRunMissingProgram(t *testing.T) {
	e, _, _ := testExec()

	_, err := e.Run(context.Background(), Command("wslcam-does-not-exist-anywhere").Captured(false))
	if err == nil {
		t.Fatal("expected an error")
	}
	if ExitCode(err) != -1 {
		t.Errorf("ExitCode() = %d, want -1", ExitCode(err))
	}
}

func TestRunDir(t *testing.T) {
	e, _, _ := testExec()
	dir := t.TempDir()

	out, err := e.Run(context.Background(), helperCmd("pwd").Captured(false).In(dir))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	wantInfo, _ := os.Stat(dir)
	gotInfo, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat %q: %v", out, err)
	}
	if !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("child ran in %q, want %q", out, dir)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(`wsl -u root sh -c "apt install gphoto2"`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"wsl", "-u", "root", "sh", "-c", "apt install gphoto2"}
	if len(c.Args) != len(want) {
		t.Fatalf("Parse() = %v, want %v", c.Args, want)
	}
	for i := range want {
		if c.Args[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, c.Args[i], want[i])
		}
	}
	if _, err := Parse(`sh -c "unterminated`); err == nil {
		t.Error("expected an error for unterminated quote")
	}
	if _, err := Parse("   "); err == nil {
		t.Error("expected an error for empty command line")
	}
}
