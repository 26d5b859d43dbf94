package loop

import (
	"context"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(0, func(float64) {}); err == nil {
		t.Error("expected error for zero rate")
	}
	if _, err := New(-5, func(float64) {}); err == nil {
		t.Error("expected error for negative rate")
	}
	if _, err := New(60, nil); err == nil {
		t.Error("expected error for nil callback")
	}
}

func TestStep_Deltas(t *testing.T) {
	var deltas []float64
	l, err := New(60, func(dt float64) { deltas = append(deltas, dt) })
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	l.Step(base)
	l.Step(base.Add(16 * time.Millisecond))
	l.Step(base.Add(48 * time.Millisecond))

	if len(deltas) != 3 {
		t.Fatalf("got %d frames, want 3", len(deltas))
	}
	if deltas[0] != 0 {
		t.Errorf("first frame dt = %v, want 0", deltas[0])
	}
	if deltas[1] != 0.016 {
		t.Errorf("second frame dt = %v, want 0.016", deltas[1])
	}
	if deltas[2] != 0.032 {
		t.Errorf("third frame dt = %v, want 0.032", deltas[2])
	}
}

func TestClock_Reset(t *testing.T) {
	var c Clock
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if dt := c.Delta(base); dt != 0 {
		t.Errorf("first delta = %v, want 0", dt)
	}
	if dt := c.Delta(base.Add(time.Second)); dt != 1 {
		t.Errorf("delta = %v, want 1", dt)
	}

	c.Reset()
	if dt := c.Delta(base.Add(2 * time.Second)); dt != 0 {
		t.Errorf("delta after reset = %v, want 0", dt)
	}
}

func TestStep_BackwardsClock(t *testing.T) {
	var last float64 = -1
	l, _ := New(60, func(dt float64) { last = dt })

	base := time.Now()
	l.Step(base)
	l.Step(base.Add(-time.Second))

	if last != 0 {
		t.Errorf("backwards timestamp produced dt %v, want 0", last)
	}
}

func TestRun_ReportsElapsedDeltas(t *testing.T) {
	var deltas []float64
	l, _ := New(1000, func(dt float64) { deltas = append(deltas, dt) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	l.Run(ctx)

	if len(deltas) < 2 {
		t.Fatalf("got %d frames, want at least 2", len(deltas))
	}
	if deltas[0] != 0 {
		t.Errorf("first frame dt = %v, want 0", deltas[0])
	}
	advanced := false
	for _, dt := range deltas[1:] {
		if dt > 0 {
			advanced = true
		}
	}
	if !advanced {
		t.Error("ticker frames never reported elapsed time")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	frames := 0
	l, _ := New(1000, func(float64) { frames++ })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Run(ctx); err != context.DeadlineExceeded {
		t.Errorf("Run returned %v, want deadline exceeded", err)
	}
	if frames == 0 {
		t.Error("loop never ticked")
	}
}
