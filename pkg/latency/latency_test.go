package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew_ClampsNegative(t *testing.T) {
	if d := New(-time.Second).Delay(); d != 0 {
		t.Errorf("Delay() = %v, want 0", d)
	}
}

func TestWait_ZeroDelayImmediate(t *testing.T) {
	start := time.Now()
	if err := New(0).Wait(context.Background()); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("zero-delay Wait took %v", elapsed)
	}
}

func TestWait_Delays(t *testing.T) {
	const delay = 30 * time.Millisecond
	start := time.Now()
	if err := New(delay).Wait(context.Background()); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Wait returned after %v, want at least %v", elapsed, delay)
	}
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(time.Minute).Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait error = %v, want context.Canceled", err)
	}
}

func TestWait_NilSimulator(t *testing.T) {
	var s *Simulator
	if err := s.Wait(context.Background()); err != nil {
		t.Errorf("nil Simulator Wait returned %v", err)
	}
}
