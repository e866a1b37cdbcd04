package ebitenclock

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/clockface"
)

func TestShortestDelta(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{45, 45, 0},
	}
	for _, tc := range cases {
		if got := shortestDelta(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("shortestDelta(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestHandTweenTakesShortestPath(t *testing.T) {
	from := clockface.ClockAngles{Hour: 350, Minute: 0, Second: 100}
	to := clockface.ClockAngles{Hour: 20, Minute: 90, Second: 80}

	tw := NewHandTween(from, 1.0, ease.Linear)
	got := tw.Update(0.5, to)

	if tw.Done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(got.Hour-5) > 0.01 {
		t.Errorf("Hour = %f, want ~5 (across 12 o'clock)", got.Hour)
	}
	if math.Abs(got.Minute-45) > 0.01 {
		t.Errorf("Minute = %f, want ~45", got.Minute)
	}
	if math.Abs(got.Second-90) > 0.01 {
		t.Errorf("Second = %f, want ~90", got.Second)
	}
}

func TestHandTweenFinishesOnTarget(t *testing.T) {
	from := clockface.ClockAngles{}
	to := clockface.ClockAngles{Hour: 30, Minute: 60, Second: 120}

	tw := NewHandTween(from, 1.0, ease.Linear)
	tw.Update(0.5, to)
	got := tw.Update(0.5, to)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if got != to {
		t.Errorf("final = %+v, want %+v", got, to)
	}
	// Once done the target passes through.
	moved := clockface.ClockAngles{Hour: 31}
	if got := tw.Update(0.1, moved); got != moved {
		t.Errorf("after done = %+v, want %+v", got, moved)
	}
}

func TestHandTweenFollowsMovingTarget(t *testing.T) {
	tw := NewHandTween(clockface.ClockAngles{}, 1.0, ease.Linear)

	a := tw.Update(0.5, clockface.ClockAngles{Second: 100})
	b := tw.Update(0.25, clockface.ClockAngles{Second: 120})

	if math.Abs(a.Second-50) > 0.01 {
		t.Errorf("first = %f, want ~50", a.Second)
	}
	if math.Abs(b.Second-90) > 0.01 {
		t.Errorf("second = %f, want ~90", b.Second)
	}
}

func TestHandTweenDefaultEasing(t *testing.T) {
	tw := NewHandTween(clockface.ClockAngles{}, DefaultRetargetDuration, nil)
	got := tw.Update(DefaultRetargetDuration/2, clockface.ClockAngles{Minute: 100})
	// OutCubic is past the linear midpoint at half time.
	if got.Minute <= 50 || got.Minute >= 100 {
		t.Errorf("Minute = %f, want in (50, 100)", got.Minute)
	}
}
