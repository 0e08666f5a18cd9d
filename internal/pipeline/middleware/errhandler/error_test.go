package errhandler

import (
	"errors"
	"testing"

	"github.com/blacktop/wslcam/internal/config"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/pipe"
	"github.com/blacktop/wslcam/internal/shell/shelltest"
)

func TestHandle(t *testing.T) {
	ctx := context.New(&config.Config{}, shelltest.New(), nil)
	boom := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"ok", nil, nil},
		{"skipped", pipe.Skip("nothing to do"), nil},
		{"failed", boom, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Handle(func(*context.Context) error { return tt.err })(ctx)
			if !errors.Is(got, tt.want) {
				t.Errorf("Handle() = %v, want %v", got, tt.want)
			}
		})
	}
}
