package timer

import (
	"context"
	"log/slog"
	"time"
)

// Replay calls tick(i) once the i-th offset has elapsed, with offsets scaled
// by scale. A scale of zero or less fires every tick immediately.
// Offsets are measured from the start of the replay and must not decrease.
func Replay(ctx context.Context, offsets []time.Duration, scale float64, tick func(i int)) error {
	if scale <= 0 {
		for i := range offsets {
			if err := ctx.Err(); err != nil {
				return err
			}
			tick(i)
		}
		return nil
	}

	t := time.NewTimer(0)
	defer t.Stop()
	<-t.C

	var elapsed time.Duration
	for i, offset := range offsets {
		wait := time.Duration(float64(offset-elapsed) * scale)
		elapsed = offset
		resetTimer(t, max(wait, 0))
		select {
		case <-ctx.Done():
			slog.Debug("Replay cancelled", "tick", i)
			return ctx.Err()
		case <-t.C:
			tick(i)
		}
	}
	return nil
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
