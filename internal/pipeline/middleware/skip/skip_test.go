package skip

import (
	"testing"

	"github.com/blacktop/wslcam/internal/config"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/shell/shelltest"
)

type skipper bool

func (s skipper) String() string                 { return "skipper" }
func (s skipper) Skip(ctx *context.Context) bool { return bool(s) }

func TestMaybe(t *testing.T) {
	ctx := context.New(&config.Config{}, shelltest.New(), nil)

	tests := []struct {
		name    string
		skipper interface{}
		wantRun bool
	}{
		{"skip", skipper(true), false},
		{"do not skip", skipper(false), true},
		{"not a skipper", struct{}{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran bool
			if err := Maybe(tt.skipper, func(*context.Context) error {
				ran = true
				return nil
			})(ctx); err != nil {
				t.Fatal(err)
			}
			if ran != tt.wantRun {
				t.Errorf("ran = %t, want %t", ran, tt.wantRun)
			}
		})
	}
}
