package ebitenclock

import (
	"errors"
	"math"
	"testing"

	"github.com/phanxgames/clockface"
)

func newTestBaseClock(t *testing.T, opts clockface.FaceOptions) (*Scene, *BaseClock) {
	t.Helper()
	scene := NewScene()
	c, err := NewBaseClock(scene, opts)
	if err != nil {
		t.Fatalf("NewBaseClock: %v", err)
	}
	return scene, c
}

func TestNewBaseClockWithoutSceneFails(t *testing.T) {
	c, err := NewBaseClock(nil, clockface.DefaultFaceOptions())
	if !errors.Is(err, ErrNoTarget) {
		t.Errorf("err = %v, want ErrNoTarget", err)
	}
	if c != nil {
		t.Error("clock should be nil on error")
	}
}

func TestBaseClockBuildsDefaultFace(t *testing.T) {
	scene, c := newTestBaseClock(t, clockface.DefaultFaceOptions())

	if scene.Root().FindChild("clock") != c.Root() {
		t.Fatal("clock root should be attached to the scene")
	}
	if got := c.ticks.NumChildren(); got != 60 {
		t.Errorf("ticks = %d, want 60", got)
	}
	if got := c.numbers.NumChildren(); got != 12 {
		t.Errorf("numbers = %d, want 12", got)
	}
	if c.Width() != DefaultWidth {
		t.Errorf("Width = %v, want %v", c.Width(), DefaultWidth)
	}
	for _, name := range []string{nameFace, nameTicks, nameNumbers, nameHourHand, nameMinuteHand, nameSecondHand, nameCenter, nameDate} {
		if c.Root().FindChild(name) == nil {
			t.Errorf("missing child %q", name)
		}
	}
	if c.theme != DualToneTheme {
		t.Error("default face should use the dual-tone theme")
	}
}

func TestBaseClockFaceOptions(t *testing.T) {
	opts := clockface.FaceOptions{
		HideSeconds:    true,
		CardinalOnly:   true,
		UseRoman:       true,
		HideMinorTicks: true,
	}
	_, c := newTestBaseClock(t, opts)

	if c.secondHand.Visible {
		t.Error("second hand should be hidden")
	}
	if got := c.ticks.NumChildren(); got != 12 {
		t.Errorf("ticks = %d, want 12 major ticks", got)
	}
	if got := c.numbers.NumChildren(); got != 4 {
		t.Fatalf("numbers = %d, want 4", got)
	}
	if got := c.numbers.Children()[0].Label.Content; got != "XII" {
		t.Errorf("first label = %q, want XII", got)
	}
	if c.theme != MonoTheme {
		t.Error("dualTone=false should use the mono theme")
	}
}

func TestBaseClockHiddenMarkings(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.FaceOptions{HideTicks: true, HideNumbers: true})
	if c.ticks.NumChildren() != 0 || c.numbers.NumChildren() != 0 {
		t.Errorf("ticks=%d numbers=%d, want none", c.ticks.NumChildren(), c.numbers.NumChildren())
	}
}

func TestBaseClockUpdateRotatesHands(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.DefaultFaceOptions())

	c.Update(clockface.TimeReading{Hours: 3, Minutes: 30, Seconds: 15})

	want := clockface.ClockAngles{Hour: 105.125, Minute: 181.5, Second: 90}
	got := c.Angles()
	if math.Abs(got.Hour-want.Hour) > 1e-6 || math.Abs(got.Minute-want.Minute) > 1e-6 || math.Abs(got.Second-want.Second) > 1e-6 {
		t.Errorf("Angles = %+v, want %+v", got, want)
	}
	if math.Abs(c.hourHand.RotationDegrees()-105.125) > 1e-6 {
		t.Errorf("hour rotation = %v, want 105.125", c.hourHand.RotationDegrees())
	}
	if math.Abs(c.secondHand.RotationDegrees()-90) > 1e-6 {
		t.Errorf("second rotation = %v, want 90", c.secondHand.RotationDegrees())
	}
	if c.Frame().Reading.Hours != 3 {
		t.Errorf("Frame reading = %+v", c.Frame().Reading)
	}
}

func TestBaseClockHandShadows(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.DefaultFaceOptions())
	c.Update(clockface.TimeReading{Hours: 6})

	want := clockface.CalculateShadow(180, DefaultWidth, clockface.DefaultHandDistance)
	if c.hourHand.Shadow == nil || *c.hourHand.Shadow != want {
		t.Errorf("hour shadow = %+v, want %+v", c.hourHand.Shadow, want)
	}
	wantSecond := clockface.CalculateShadow(0, DefaultWidth, clockface.SecondHandDistance)
	if c.secondHand.Shadow == nil || *c.secondHand.Shadow != wantSecond {
		t.Errorf("second shadow = %+v, want %+v", c.secondHand.Shadow, wantSecond)
	}
	if c.face.Shadow != nil {
		t.Error("the dial should not cast a shadow")
	}
}

func TestBaseClockHandPointsFromCenter(t *testing.T) {
	scene, c := newTestBaseClock(t, clockface.DefaultFaceOptions())
	c.SetCenter(200, 200)
	c.Update(clockface.TimeReading{Hours: 3})
	scene.Update()

	// Unscaled (0.5, pivot) is the dial center; (0.5, 0) is the tip.
	px, py := c.hourHand.LocalToWorld(0.5, c.hourHand.PivotY)
	assertPoint(t, "pivot", px, py, 200, 200)
	tx, ty := c.hourHand.LocalToWorld(0.5, 0)
	assertPoint(t, "tip", tx, ty, 200+hourHandLen*DefaultWidth, 200)
}

func TestBaseClockTickPlacement(t *testing.T) {
	scene, c := newTestBaseClock(t, clockface.DefaultFaceOptions())
	scene.Update()

	// Tick 15 sits at 3 o'clock, outer end on the tick circle.
	tick := c.ticks.FindChild("tick-15")
	if tick == nil {
		t.Fatal("tick-15 missing")
	}
	x, y := tick.LocalToWorld(0.5, 0)
	assertPoint(t, "tick-15 outer", x, y, tickOuterRatio*DefaultWidth, 0)
	if !approxEqual(tick.ScaleY, majorTickLen*DefaultWidth, 1e-9) {
		t.Errorf("tick-15 length = %v, want major", tick.ScaleY)
	}
}

func TestBaseClockResize(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.DefaultFaceOptions())
	c.Update(clockface.TimeReading{Hours: 9})

	c.Resize(500)

	if c.Width() != 500 {
		t.Fatalf("Width = %v, want 500", c.Width())
	}
	if c.Frame().Width != 500 {
		t.Errorf("Frame().Width = %v, want 500", c.Frame().Width)
	}
	want := clockface.CalculateShadow(270, 500, clockface.DefaultHandDistance)
	if *c.hourHand.Shadow != want {
		t.Errorf("hour shadow = %+v, want %+v", *c.hourHand.Shadow, want)
	}
	if math.Abs(c.hourHand.RotationDegrees()-270) > 1e-6 {
		t.Errorf("rotation lost on resize: %v", c.hourHand.RotationDegrees())
	}

	c.Resize(0)
	if c.Width() != 500 {
		t.Error("non-positive width should be ignored")
	}
}

func TestBaseClockLayoutCentersFace(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.DefaultFaceOptions())
	c.Layout(800, 400)

	if !approxEqual(c.Width(), 360, 1e-9) {
		t.Errorf("Width = %v, want 360", c.Width())
	}
	if c.Root().X != 400 || c.Root().Y != 200 {
		t.Errorf("center = (%v, %v), want (400, 200)", c.Root().X, c.Root().Y)
	}
}

func TestBaseClockDate(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.DefaultFaceOptions())

	if c.date.Visible {
		t.Error("date should start hidden")
	}
	c.SetDate(17)
	if !c.date.Visible || c.date.Label.Content != "17" {
		t.Errorf("date = %v %q, want visible 17", c.date.Visible, c.date.Label.Content)
	}
	c.Resize(400)
	if c.date.Label.Content != "17" || c.Date() != 17 {
		t.Error("date should survive a rebuild")
	}
	c.SetDate(0)
	if c.date.Visible {
		t.Error("SetDate(0) should hide the date")
	}
}

func TestBaseClockSetOptionsRebuilds(t *testing.T) {
	_, c := newTestBaseClock(t, clockface.DefaultFaceOptions())
	c.Update(clockface.TimeReading{Minutes: 15})

	c.SetOptions(clockface.FaceOptions{HideNumbers: true})

	if c.numbers.NumChildren() != 0 {
		t.Errorf("numbers = %d, want 0", c.numbers.NumChildren())
	}
	if math.Abs(c.minuteHand.RotationDegrees()-90) > 1e-6 {
		t.Errorf("minute rotation = %v, want 90", c.minuteHand.RotationDegrees())
	}
	if c.Options() != (clockface.FaceOptions{HideNumbers: true}) {
		t.Errorf("Options = %+v", c.Options())
	}
}

func TestBaseClockDestroy(t *testing.T) {
	scene, c := newTestBaseClock(t, clockface.DefaultFaceOptions())

	c.Destroy()

	if !c.Destroyed() {
		t.Error("Destroyed should be true")
	}
	if scene.Root().NumChildren() != 0 {
		t.Error("clock should be removed from the scene")
	}
	if !c.Root().IsDisposed() {
		t.Error("clock root should be disposed")
	}
	c.Destroy()
}

func TestIndependentClocks(t *testing.T) {
	scene := NewScene()
	a, err := NewBaseClock(scene, clockface.DefaultFaceOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBaseClock(scene, clockface.DefaultFaceOptions())
	if err != nil {
		t.Fatal(err)
	}

	a.Update(clockface.TimeReading{Hours: 3})
	b.Update(clockface.TimeReading{Hours: 9})

	if a.Angles().Hour != 90 || b.Angles().Hour != 270 {
		t.Errorf("hours = %v, %v, want 90, 270", a.Angles().Hour, b.Angles().Hour)
	}
	a.Destroy()
	if scene.Root().NumChildren() != 1 {
		t.Errorf("scene children = %d, want 1", scene.Root().NumChildren())
	}
}
