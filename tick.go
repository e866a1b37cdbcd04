package clockface

import (
	"fmt"
	"sort"
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultTickDuration is how long the second hand takes to settle on a new
// second in tick mode.
const DefaultTickDuration = 600 * time.Millisecond

// EasingFunc maps linear progress in [0, 1] to eased progress. It must return
// 0 at 0 and 1 at 1; values outside [0, 1] in between are allowed.
type EasingFunc func(p float64) float64

var easeOutBack = FromTween(ease.OutBack)

// EaseOutBack is a back-ease-out curve: it passes 1 around p≈0.37, overshoots
// by roughly 10%, and settles on exactly 1 at p=1, like a mechanical tick.
// Progress is clamped to [0, 1].
func EaseOutBack(p float64) float64 {
	return easeOutBack(p)
}

// FromTween adapts a gween easing function to an EasingFunc.
func FromTween(fn ease.TweenFunc) EasingFunc {
	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return float64(fn(float32(p), 0, 1, 1))
	}
}

var easings = map[string]EasingFunc{
	"back":    EaseOutBack,
	"linear":  FromTween(ease.Linear),
	"quad":    FromTween(ease.OutQuad),
	"cubic":   FromTween(ease.OutCubic),
	"elastic": FromTween(ease.OutElastic),
	"bounce":  FromTween(ease.OutBounce),
}

// EasingByName looks up a tick easing by name. The empty name selects "back".
func EasingByName(name string) (EasingFunc, error) {
	if name == "" {
		return EaseOutBack, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (want one of %v)", name, EasingNames())
	}
	return fn, nil
}

// EasingNames lists the names accepted by EasingByName, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TickAnimationState carries an in-flight second-hand tick between frames.
// Angles are in degrees. LastSecond is -1 until the first second is observed.
type TickAnimationState struct {
	LastSecond     int
	StartAngle     float64
	TargetAngle    float64
	AnimationStart time.Time
}

// NewTickAnimationState returns an uninitialized state.
func NewTickAnimationState() TickAnimationState {
	return TickAnimationState{LastSecond: -1}
}

// UpdateTickAnimation advances the tick animation and returns the eased
// second-hand position, in seconds.
//
// current is the position the hand is drawn at now (in seconds) and observed
// is the whole second just read from the clock. When observed differs from
// state.LastSecond a new animation starts at now from current to observed.
// A nil easing selects EaseOutBack.
func UpdateTickAnimation(current float64, observed int, state *TickAnimationState, now time.Time, duration time.Duration, easing EasingFunc) float64 {
	if easing == nil {
		easing = EaseOutBack
	}

	if state.LastSecond != observed {
		start := current * degreesPerSecond
		target := float64(observed) * degreesPerSecond
		// Crossing 59 -> 0: keep turning clockwise rather than sweeping
		// back across the whole dial.
		if start-target > 180 {
			start -= 360
		}
		state.StartAngle = start
		state.TargetAngle = target
		state.LastSecond = observed
		state.AnimationStart = now
	}

	progress := tickProgress(state.AnimationStart, now, duration)
	angle := state.StartAngle + (state.TargetAngle-state.StartAngle)*easing(progress)
	return angle / degreesPerSecond
}

func tickProgress(start, now time.Time, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(now.Sub(start)) / float64(duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// TickStatus is the phase of a TickAnimator.
//
//	            new second              duration elapsed
//	Uninitialized ────────► Animating ─────────────────► Settled
//	                            ▲                           │
//	                            └──────── new second ───────┘
type TickStatus int

const (
	// TickUninitialized means no second has been observed yet.
	TickUninitialized TickStatus = iota
	// TickAnimating means the hand is easing toward the target second.
	TickAnimating
	// TickSettled means the hand rests on the target second.
	TickSettled
)

// String returns a human-readable representation of the tick status.
func (s TickStatus) String() string {
	switch s {
	case TickUninitialized:
		return "uninitialized"
	case TickAnimating:
		return "animating"
	case TickSettled:
		return "settled"
	default:
		return fmt.Sprintf("TickStatus(%d)", int(s))
	}
}

// TickAnimator eases discrete second changes into continuous motion.
// It is not safe for concurrent use.
type TickAnimator struct {
	// Duration of one tick. Zero or negative snaps immediately.
	Duration time.Duration
	// Easing applied to tick progress. Nil selects EaseOutBack.
	Easing EasingFunc
	// State persists between frames.
	State TickAnimationState
}

// NewTickAnimator creates an uninitialized animator with the default
// duration and easing.
func NewTickAnimator() *TickAnimator {
	return &TickAnimator{
		Duration: DefaultTickDuration,
		Easing:   EaseOutBack,
		State:    NewTickAnimationState(),
	}
}

// Update advances the animation; see UpdateTickAnimation.
func (a *TickAnimator) Update(current float64, observed int, now time.Time) float64 {
	return UpdateTickAnimation(current, observed, &a.State, now, a.Duration, a.Easing)
}

// Status reports the animator phase at now.
func (a *TickAnimator) Status(now time.Time) TickStatus {
	if a.State.LastSecond < 0 {
		return TickUninitialized
	}
	if tickProgress(a.State.AnimationStart, now, a.Duration) < 1 {
		return TickAnimating
	}
	return TickSettled
}

// Reset discards any in-flight animation.
func (a *TickAnimator) Reset() {
	a.State = NewTickAnimationState()
}
