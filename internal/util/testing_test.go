package util

import (
	"os"
	"testing"
)

// unsetenv removes name for the duration of the test. t.Setenv must have been
// called for name beforehand so the original value is restored on cleanup.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("failed to unset %s: %v", name, err)
	}
}
