package ebitenclock

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/phanxgames/clockface"
)

// LiveOptions configures a LiveClock.
type LiveOptions struct {
	clockface.FaceOptions `yaml:",inline"`

	// SmoothSweep moves the second hand continuously instead of ticking.
	SmoothSweep bool `yaml:"smoothSweep"`
	// Timezone is an IANA name; empty means local time.
	Timezone string `yaml:"timezone"`
	// HideDate hides the day-of-month window.
	HideDate bool `yaml:"hideDate"`
	// TickEasing names the tick curve; see clockface.EasingNames.
	TickEasing string `yaml:"tickEasing"`
}

// DefaultLiveOptions returns the default face in local time, ticking.
func DefaultLiveOptions() LiveOptions {
	return LiveOptions{FaceOptions: clockface.DefaultFaceOptions()}
}

// LiveClock is a BaseClock driven by a clockface.Engine. Call Update once per
// frame; it does nothing while the clock is stopped.
type LiveClock struct {
	base       *BaseClock
	engine     *clockface.Engine
	opts       LiveOptions
	engineOpts []clockface.EngineOption
	tween      *HandTween
	running    bool
	log        zerolog.Logger
}

// NewLiveClock builds a face in scene and starts it. Extra engine options
// (time source, logger, tick duration) are applied to every engine the clock
// creates, including after SetTimezone.
func NewLiveClock(scene *Scene, opts LiveOptions, engineOpts ...clockface.EngineOption) (*LiveClock, error) {
	easing, err := clockface.EasingByName(opts.TickEasing)
	if err != nil {
		return nil, fmt.Errorf("ebitenclock: %w", err)
	}
	base, err := NewBaseClock(scene, opts.FaceOptions)
	if err != nil {
		return nil, err
	}

	eo := make([]clockface.EngineOption, 0, len(engineOpts)+1)
	eo = append(eo, clockface.WithEasing(easing))
	eo = append(eo, engineOpts...)

	c := &LiveClock{
		base:       base,
		opts:       opts,
		engineOpts: eo,
		log:        zerolog.Nop(),
		running:    true,
	}
	c.engine = clockface.NewEngine(clockface.Options{Timezone: opts.Timezone}, c.engineOpts...)
	c.refresh(0)
	return c, nil
}

// SetLogger sets the clock logger. Engines keep the logger passed to
// NewLiveClock through clockface.WithLogger.
func (c *LiveClock) SetLogger(l zerolog.Logger) {
	c.log = l
}

// Base returns the underlying face.
func (c *LiveClock) Base() *BaseClock {
	return c.base
}

// Engine returns the current engine. It is replaced by SetTimezone.
func (c *LiveClock) Engine() *clockface.Engine {
	return c.engine
}

// Options returns the live options.
func (c *LiveClock) Options() LiveOptions {
	return c.opts
}

// Reading returns the engine's current reading.
func (c *LiveClock) Reading() clockface.TimeReading {
	return c.engine.State()
}

// Update advances the engine in the configured mode and redraws the hands.
// dt is the frame time in seconds and only drives timezone transitions.
func (c *LiveClock) Update(dt float32) {
	if !c.running || c.base.Destroyed() {
		return
	}
	if c.opts.SmoothSweep {
		c.engine.UpdateSweep()
	} else {
		c.engine.UpdateTick()
	}
	c.refresh(dt)
}

// refresh pushes the engine reading and date to the face.
func (c *LiveClock) refresh(dt float32) {
	c.base.Update(c.engine.State())
	if c.tween != nil {
		c.base.SetAngles(c.tween.Update(dt, c.base.Frame().Angles))
		if c.tween.Done {
			c.tween = nil
		}
	}
	if c.opts.HideDate {
		c.base.SetDate(0)
		return
	}
	if day := c.engine.CurrentDate(); day != c.base.Date() {
		c.base.SetDate(day)
	}
}

// Start resumes updates. Starting a running clock is a no-op.
func (c *LiveClock) Start() {
	if c.base.Destroyed() {
		return
	}
	c.running = true
}

// Stop freezes the hands where they are.
func (c *LiveClock) Stop() {
	c.running = false
}

// Running reports whether Update advances the clock.
func (c *LiveClock) Running() bool {
	return c.running
}

// SetTimezone switches to a new timezone. A fresh engine is created, which
// resets the tick animation, and the hands swing from their current position
// to the new time.
func (c *LiveClock) SetTimezone(tz string) {
	if c.base.Destroyed() {
		return
	}
	from := c.base.Angles()
	c.opts.Timezone = tz
	c.engine = clockface.NewEngine(clockface.Options{Timezone: tz}, c.engineOpts...)
	c.tween = NewHandTween(from, DefaultRetargetDuration, nil)
	c.log.Info().Str("timezone", tz).Msg("timezone changed")
	c.refresh(0)
}

// Transitioning reports whether the hands are swinging to a new timezone.
func (c *LiveClock) Transitioning() bool {
	return c.tween != nil
}

// SetSmoothSweep switches between sweep and tick mode from the next update.
func (c *LiveClock) SetSmoothSweep(on bool) {
	c.opts.SmoothSweep = on
}

// SetFaceOptions rebuilds the face markings.
func (c *LiveClock) SetFaceOptions(opts clockface.FaceOptions) {
	if c.base.Destroyed() {
		return
	}
	c.opts.FaceOptions = opts
	c.base.SetOptions(opts)
}

// SetHideDate shows or hides the date window.
func (c *LiveClock) SetHideDate(hide bool) {
	c.opts.HideDate = hide
	if !c.base.Destroyed() {
		c.refresh(0)
	}
}

// Layout fits the face into a screen of the given size.
func (c *LiveClock) Layout(screenW, screenH int) {
	if c.base.Destroyed() {
		return
	}
	c.base.Layout(screenW, screenH)
}

// Destroy stops the clock and removes its face. Further calls are no-ops.
func (c *LiveClock) Destroy() {
	c.Stop()
	c.base.Destroy()
	c.tween = nil
}
