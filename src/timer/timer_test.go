package timer

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestReplayImmediate(t *testing.T) {
	var ticks []int
	offsets := []time.Duration{time.Hour, 2 * time.Hour, 3 * time.Hour}
	if err := Replay(context.Background(), offsets, 0, func(i int) { ticks = append(ticks, i) }); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(ticks, []int{0, 1, 2}) {
		t.Errorf("Expected ticks [0 1 2], got %v", ticks)
	}
}

func TestReplayScaled(t *testing.T) {
	offsets := []time.Duration{10 * time.Millisecond, 30 * time.Millisecond}
	start := time.Now()
	var ticks []int
	if err := Replay(context.Background(), offsets, 1, func(i int) { ticks = append(ticks, i) }); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Expected replay to take at least 30ms, took %v", elapsed)
	}
	if !slices.Equal(ticks, []int{0, 1}) {
		t.Errorf("Expected ticks [0 1], got %v", ticks)
	}
}

func TestReplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	offsets := []time.Duration{0, time.Hour}
	err := Replay(ctx, offsets, 1, func(i int) {
		if i == 0 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
