package clockface

import (
	"time"

	"github.com/rs/zerolog"
)

// sweepBias centers sweep-mode sub-second motion on the sampling instant.
const sweepBias = 500

// Options configures an Engine.
type Options struct {
	// Timezone is an IANA name such as "Europe/Paris". Empty means local time.
	Timezone string `yaml:"timezone"`
}

// OptionsPatch is a partial Options update; nil fields are left unchanged.
type OptionsPatch struct {
	Timezone *string
}

// EngineOption customizes an Engine at construction.
type EngineOption func(*Engine)

// WithTimeSource replaces the wall-clock source. It takes precedence over
// WithClock.
func WithTimeSource(src TimeSource) EngineOption {
	return func(e *Engine) { e.source = src }
}

// WithClock sets the instant source used by the default ZoneSource.
func WithClock(c Clock) EngineOption {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// WithTickDuration sets the tick-mode animation length.
func WithTickDuration(d time.Duration) EngineOption {
	return func(e *Engine) { e.animator.Duration = d }
}

// WithEasing sets the tick-mode easing curve.
func WithEasing(fn EasingFunc) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.animator.Easing = fn
		}
	}
}

// Engine holds one clock's time-of-day and tick animation state.
//
// An Engine has a single writer: exactly one caller, typically a frame
// callback, invokes UpdateTick or UpdateSweep. It holds no locks and no
// external resources; dropping the reference is enough to dispose of it.
// Constructing a new Engine is the way to reset its animation.
type Engine struct {
	options  Options
	reading  TimeReading
	animator *TickAnimator
	source   TimeSource
	clock    Clock
	log      zerolog.Logger
}

// NewEngine creates an engine and reads the initial time from its source.
func NewEngine(opts Options, engineOpts ...EngineOption) *Engine {
	e := &Engine{
		options:  opts,
		animator: NewTickAnimator(),
		log:      zerolog.Nop(),
	}
	for _, o := range engineOpts {
		o(e)
	}
	if e.source == nil {
		e.source = NewZoneSource(e.clock, e.log)
	}

	now := e.source.Now(e.options.Timezone)
	e.reading = TimeReading{
		Hours:        now.Hour(),
		Minutes:      now.Minute(),
		Seconds:      float64(now.Second()),
		Milliseconds: now.Nanosecond() / int(time.Millisecond),
	}
	e.log.Debug().
		Str("timezone", e.options.Timezone).
		Time("now", now).
		Msg("clock engine created")
	return e
}

// UpdateSweep re-reads the time for continuous second-hand motion.
//
// Milliseconds is set to the wall-clock millisecond minus 500, so it lies in
// [-500, 500). Tick animation state is left untouched.
func (e *Engine) UpdateSweep() {
	now := e.source.Now(e.options.Timezone)
	e.reading.Hours = now.Hour()
	e.reading.Minutes = now.Minute()
	e.reading.Seconds = float64(now.Second())
	e.reading.Milliseconds = now.Nanosecond()/int(time.Millisecond) - sweepBias
}

// UpdateTick re-reads the time and eases the second hand toward the newly
// observed second.
//
// Hours and minutes are refreshed only while the eased second is at or below
// 1, i.e. just after a minute boundary. Milliseconds is always zeroed: the
// eased Seconds value is the only sub-second signal in tick mode.
func (e *Engine) UpdateTick() {
	now := e.source.Now(e.options.Timezone)

	e.reading.Seconds = e.animator.Update(e.reading.Seconds, now.Second(), now)
	if e.reading.Seconds <= 1 {
		e.reading.Hours = now.Hour()
		e.reading.Minutes = now.Minute()
	}
	e.reading.Milliseconds = 0
}

// State returns a copy of the current reading.
func (e *Engine) State() TimeReading {
	return e.reading
}

// CurrentDate returns today's day of the month in the configured timezone.
// It is read fresh on every call.
func (e *Engine) CurrentDate() int {
	return e.source.Now(e.options.Timezone).Day()
}

// SetOptions merges patch into the current options. The change applies from
// the next update; the current reading is not re-derived.
func (e *Engine) SetOptions(patch OptionsPatch) {
	if patch.Timezone != nil {
		e.options.Timezone = *patch.Timezone
	}
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.options
}

// TickStatus reports the tick animator phase at the source's current time.
func (e *Engine) TickStatus() TickStatus {
	return e.animator.Status(e.source.Now(e.options.Timezone))
}

// Frame returns a render snapshot of the current reading for a face width
// pixels wide.
func (e *Engine) Frame(width float64) Frame {
	return NewFrame(e.reading, width)
}
