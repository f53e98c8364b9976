package character

import (
	"context"

	"github.com/milk9111/propeller/schedule"
)

// Taunt rolls for a taunt. When the draw lands within TauntProbability it
// schedules a check after TauntDelay: if the source is idle then, a taunt
// other than the previous one is played. It returns the scheduled task, or
// nil when nothing was scheduled. Canceling ctx before the delay elapses
// drops the taunt.
//
// Overlapping calls are not coordinated; two tasks coming due on the same
// tick may both see an idle source.
func (c *Controller) Taunt(ctx context.Context, h *Host) *schedule.Task {
	if h == nil || h.Timer == nil || h.Source == nil {
		return nil
	}
	cfg := c.cfg
	if len(cfg.Taunts) == 0 {
		return nil
	}
	if chance := c.rng.Float64() * 100; chance > cfg.TauntProbability {
		return nil
	}
	return h.Timer.After(ctx, cfg.TauntDelay, func() {
		if h.Source.IsPlaying() {
			return
		}
		c.tauntIndex = PickTaunt(c.rng, len(cfg.Taunts), c.tauntIndex)
		h.Source.SetClip(cfg.Taunts[c.tauntIndex])
		h.Source.Play()
	})
}
