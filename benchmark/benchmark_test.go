package benchmark

import (
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	called := false
	rep, err := Run("noop", func() error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("Run() err = %v, called = %v", err, called)
	}
	if rep.Label != "noop" || rep.CPUCores < 1 || rep.Elapsed < 0 {
		t.Errorf("unexpected report %+v", rep)
	}
}

func TestRun_propagatesError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := Run("fail", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Run() err = %v, want boom", err)
	}
}
