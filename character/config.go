package character

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidConfig = errors.New("character: invalid config")

// Clip names an audio clip. The host resolves names to playable audio.
type Clip string

// Jump-phase clip slots.
const (
	JumpClipStart = iota
	JumpClipLoop
	JumpClipEnd
	jumpClipCount
)

// Config holds the character tunables. A Config handed to New or
// Reconfigure is copied; later changes to the caller's value have no effect.
type Config struct {
	MoveForce        float64
	MaxSpeed         float64
	JumpForce        float64
	JumpClips        []Clip
	Taunts           []Clip
	TauntProbability float64 // percent, 0-100
	TauntDelay       time.Duration
}

func DefaultConfig() Config {
	return Config{
		MoveForce:        365,
		MaxSpeed:         5,
		JumpForce:        1000,
		JumpClips:        []Clip{"flight_start", "flight_loop", "flight_end"},
		TauntProbability: 50,
		TauntDelay:       time.Second,
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil", ErrInvalidConfig)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("%w: max speed %v must be positive", ErrInvalidConfig, c.MaxSpeed)
	}
	if c.MoveForce < 0 || c.JumpForce < 0 {
		return fmt.Errorf("%w: forces must not be negative (move %v, jump %v)", ErrInvalidConfig, c.MoveForce, c.JumpForce)
	}
	if len(c.JumpClips) < jumpClipCount {
		return fmt.Errorf("%w: need %d jump clips, got %d", ErrInvalidConfig, jumpClipCount, len(c.JumpClips))
	}
	if c.TauntProbability < 0 || c.TauntProbability > 100 {
		return fmt.Errorf("%w: taunt probability %v outside [0,100]", ErrInvalidConfig, c.TauntProbability)
	}
	if c.TauntDelay < 0 {
		return fmt.Errorf("%w: taunt delay %v is negative", ErrInvalidConfig, c.TauntDelay)
	}
	return nil
}

func (c *Config) clone() *Config {
	out := *c
	out.JumpClips = slices.Clone(c.JumpClips)
	out.Taunts = slices.Clone(c.Taunts)
	return &out
}
