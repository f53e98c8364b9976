// Package character implements the propeller character controller: input
// sampling on frame updates, force-based movement and flight on fixed ticks,
// and delayed taunts. Engine objects are reached only through the handles in
// Host, so every callback can be driven by test doubles.
package character

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/jakecoffman/cp"
)

// Rand is the random source used for taunts.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type Option func(*Controller)

// WithRand replaces the default random source.
func WithRand(r Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithTilter installs a direction-flip hook.
func WithTilter(t Tilter) Option {
	return func(c *Controller) {
		if t != nil {
			c.tilter = t
		}
	}
}

// Controller holds the per-character runtime state. It is driven from a
// single goroutine and is not safe for concurrent use.
type Controller struct {
	cfg    *Config
	rng    Rand
	tilter Tilter

	facingRight    bool
	jump           bool
	tauntIndex     int
	propellerValue string
}

func New(cfg *Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:         cfg.clone(),
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		tilter:      InertTilt{},
		facingRight: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Reconfigure swaps in new tunables. Runtime state is kept.
func (c *Controller) Reconfigure(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("character: reconfigure: %w", err)
	}
	c.cfg = cfg.clone()
	return nil
}

func (c *Controller) Config() *Config        { return c.cfg }
func (c *Controller) FacingRight() bool      { return c.facingRight }
func (c *Controller) JumpPending() bool      { return c.jump }
func (c *Controller) TauntIndex() int        { return c.tauntIndex }
func (c *Controller) PropellerValue() string { return c.propellerValue }
func (c *Controller) Tilter() Tilter         { return c.tilter }

// ToggleJump flips the pending-jump flag. On-screen buttons use it instead
// of the Jump action.
func (c *Controller) ToggleJump() {
	c.jump = !c.jump
}

// Update samples jump intent for this frame. The flag is consumed by the
// next FixedUpdate.
func (c *Controller) Update(h *Host) {
	if h == nil || h.Input == nil {
		return
	}
	if h.Input.ButtonDown(ButtonJump) {
		c.playJumpClip(h, JumpClipStart)
	}
	if h.Input.Button(ButtonJump) {
		c.jump = true
	}
	if h.Input.ButtonUp(ButtonJump) {
		c.playJumpClip(h, JumpClipEnd)
	}
}

// FixedUpdate applies movement and flight forces for one physics tick. The
// pending-jump flag is always false when it returns.
func (c *Controller) FixedUpdate(h *Host) {
	if h == nil || h.Input == nil || h.Body == nil {
		return
	}
	cfg := c.cfg
	move := h.Input.Axis(AxisHorizontal)

	if h.Animator != nil {
		h.Animator.SetFloat(ParamSpeed, math.Abs(move))
	}

	// Push while reversing or below top speed.
	if move*h.Body.Velocity().X < cfg.MaxSpeed {
		h.Body.AddForce(cp.Vector{X: move * cfg.MoveForce})
	}

	if v := h.Body.Velocity(); math.Abs(v.X) > cfg.MaxSpeed {
		h.Body.SetVelocity(cp.Vector{X: math.Copysign(cfg.MaxSpeed, v.X), Y: v.Y})
	}

	if (move > 0 && !c.facingRight) || (move < 0 && c.facingRight) {
		c.facingRight = c.tilter.Tilt(c.facingRight, move)
	}

	if h.Attachments != nil {
		h.Attachments.Attach(LeftPropeller)
		if pos, ok := h.Attachments.WorldPosition(LeftPropeller); ok {
			c.propellerValue = formatPosition(pos)
		}
	}

	if c.jump {
		c.playJumpClip(h, JumpClipLoop)
		h.Body.AddForce(cp.Vector{Y: cfg.JumpForce})
		c.jump = false
	}
}

func (c *Controller) playJumpClip(h *Host, slot int) {
	if h.Audio == nil || slot >= len(c.cfg.JumpClips) {
		return
	}
	var at cp.Vector
	if h.Body != nil {
		at = h.Body.Position()
	}
	h.Audio.PlayClipAtPoint(c.cfg.JumpClips[slot], at)
}

func formatPosition(v cp.Vector) string {
	return strconv.FormatFloat(v.X, 'f', -1, 32) + " " + strconv.FormatFloat(v.Y, 'f', -1, 32)
}
