package pipe

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsSkip(t *testing.T) {
	if !IsSkip(Skip("nothing to delete")) {
		t.Error("Skip() should be a skip")
	}
	if !IsSkip(fmt.Errorf("wrapped: %w", Skip("nothing to delete"))) {
		t.Error("wrapped Skip() should be a skip")
	}
	if IsSkip(errors.New("boom")) {
		t.Error("plain error should not be a skip")
	}
	if got := Skip("port already detached").Error(); got != "port already detached" {
		t.Errorf("Error() = %q", got)
	}
}
