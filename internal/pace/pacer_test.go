package pace

import (
	"context"
	"testing"
	"time"
)

func TestPacer_DisabledNeverWaits(t *testing.T) {
	p := Disabled()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Disabled pacer took %v for 100 stages", elapsed)
	}
}

func TestPacer_NonPositiveRateIsDisabled(t *testing.T) {
	p := NewPacer(0, 1)
	if p.limiter != nil {
		t.Error("Zero rate should produce a disabled pacer")
	}
}

func TestPacer_HonorsContextCancellation(t *testing.T) {
	p := NewPacer(0.001, 1) // Effectively never fires twice

	ctx, cancel := context.WithCancel(context.Background())
	// Consume the burst token, then cancel while the second Wait blocks
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("First wait failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- p.Wait(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Expected an error after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}
