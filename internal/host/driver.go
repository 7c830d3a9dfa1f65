package host

import (
	"context"
	"fmt"
	"time"
)

// DriverConfig controls Run.
type DriverConfig struct {
	Hz    int
	Ticks uint64 // stop after N ticks; 0 runs until ctx is done
}

// Run ticks win at cfg.Hz until ctx is done or cfg.Ticks ticks have run.
// after, when non-nil, is called once per tick after the frame callbacks; an
// error from it stops the loop.
func Run(ctx context.Context, win *Window, cfg DriverConfig, after func(tick uint64) error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid driver hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	start := time.Now()
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			win.Tick(now.Sub(start))
			tick++
			if after != nil {
				if err := after(tick); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
