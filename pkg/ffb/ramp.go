package ffb

import (
	"context"
	"time"
)

// RampConfig controls the alternating constant force loop. Each cycle holds
// +Magnitude for Ticks writes and then -Magnitude for Ticks writes, one write
// per Interval.
type RampConfig struct {
	Magnitude int16
	Interval  time.Duration
	Ticks     int
	Cycles    int
}

// DefaultRampConfig reproduces the demo's loop: 1500 magnitude, 10ms tick,
// 100 ticks per direction, 10 cycles (about 20 seconds of wheel motion).
func DefaultRampConfig() RampConfig {
	return RampConfig{
		Magnitude: 1500,
		Interval:  10 * time.Millisecond,
		Ticks:     100,
		Cycles:    10,
	}
}

// Ramp drives the allocated effect back and forth by rewriting its constant
// force magnitude on a fixed interval. It returns early with ctx.Err() on
// cancellation.
func (w *Wheel) Ramp(ctx context.Context, cfg RampConfig) error {
	if err := w.checkIndex(); err != nil {
		return err
	}

	for cycle := 0; cycle < cfg.Cycles; cycle++ {
		for _, magnitude := range []int16{cfg.Magnitude, -cfg.Magnitude} {
			for tick := 0; tick < cfg.Ticks; tick++ {
				if err := w.SetConstantForce(magnitude); err != nil {
					return err
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(cfg.Interval):
				}
			}
		}
	}

	return nil
}
