package ebitenclock

import (
	"errors"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/clockface"
)

// ErrNoTarget is returned when a clock is created without a scene to draw
// into.
var ErrNoTarget = errors.New("ebitenclock: no target scene")

// DefaultWidth is the face diameter used until the clock is resized.
const DefaultWidth = 300

// Proportions of the face, relative to its width.
const (
	borderRatio     = 0.02
	tickOuterRatio  = 0.46
	majorTickLen    = 0.06
	majorTickThick  = 0.012
	minorTickLen    = 0.03
	minorTickThick  = 0.005
	numberRadius    = 0.36
	numberSize      = 0.09
	cardinalSize    = 0.11
	hourHandLen     = 0.25
	hourHandThick   = 0.035
	minuteHandLen   = 0.37
	minuteHandThick = 0.025
	secondHandLen   = 0.42
	secondHandThick = 0.008
	handTail        = 0.15
	centerCapRatio  = 0.025
	dateOffsetRatio = 0.24
	dateSize        = 0.06
)

// Node names under the clock root.
const (
	nameFace       = "face"
	nameTicks      = "ticks"
	nameNumbers    = "numbers"
	nameHourHand   = "hour"
	nameMinuteHand = "minute"
	nameSecondHand = "second"
	nameCenter     = "center"
	nameDate       = "date"
)

// BaseClock draws a static analog face: dial, markings and hands. It shows
// whatever reading it is given and never reads the time itself; LiveClock
// drives it from an Engine.
type BaseClock struct {
	scene  *Scene
	opts   clockface.FaceOptions
	layout clockface.FaceLayout
	theme  Theme
	font   *Font
	width  float64

	root       *Node
	face       *Node
	ticks      *Node
	numbers    *Node
	hourHand   *Node
	minuteHand *Node
	secondHand *Node
	center     *Node
	date       *Node

	faceImage   *ebiten.Image
	centerImage *ebiten.Image

	frame     clockface.Frame
	angles    clockface.ClockAngles
	shadows   clockface.HandShadows
	dateValue int
	destroyed bool
}

// NewBaseClock builds a face in scene and returns it. The face is centered
// on the origin of its root node; position it with SetCenter or Layout.
func NewBaseClock(scene *Scene, opts clockface.FaceOptions) (*BaseClock, error) {
	if scene == nil {
		return nil, ErrNoTarget
	}
	c := &BaseClock{
		scene: scene,
		opts:  opts,
		font:  DefaultFont(numberSize * DefaultWidth),
		width: DefaultWidth,
		root:  NewContainer("clock"),
	}
	scene.Root().AddChild(c.root)
	c.build()
	c.Update(clockface.TimeReading{})
	return c, nil
}

// SetFont replaces the number font. Its size is managed by the clock.
func (c *BaseClock) SetFont(f *Font) {
	if f == nil {
		return
	}
	c.font = f
	c.build()
}

// Root returns the clock's root node.
func (c *BaseClock) Root() *Node {
	return c.root
}

// Width returns the face diameter in pixels.
func (c *BaseClock) Width() float64 {
	return c.width
}

// Options returns the face options.
func (c *BaseClock) Options() clockface.FaceOptions {
	return c.opts
}

// SetOptions rebuilds the face with new options. The displayed hands are
// kept.
func (c *BaseClock) SetOptions(opts clockface.FaceOptions) {
	c.opts = opts
	c.build()
}

// SetCenter positions the center of the face in screen coordinates.
func (c *BaseClock) SetCenter(x, y float64) {
	c.root.SetPosition(x, y)
}

// Resize rebuilds the face at a new diameter. Non-positive widths are
// ignored.
func (c *BaseClock) Resize(width float64) {
	if width <= 0 || width == c.width {
		return
	}
	c.width = width
	c.build()
}

// Layout fits the face into a screen of the given size, centered, with a
// small margin.
func (c *BaseClock) Layout(screenW, screenH int) {
	side := float64(min(screenW, screenH))
	c.Resize(side * 0.9)
	c.SetCenter(float64(screenW)/2, float64(screenH)/2)
}

// Update shows a reading: hands are rotated to its angles and shadows are
// recomputed for the current width.
func (c *BaseClock) Update(r clockface.TimeReading) {
	c.frame = clockface.NewFrame(r, c.width)
	c.SetAngles(c.frame.Angles)
}

// Frame returns the frame derived from the last Update.
func (c *BaseClock) Frame() clockface.Frame {
	return c.frame
}

// Angles returns the displayed hand angles. They differ from Frame().Angles
// while a LiveClock is swinging the hands to a new timezone.
func (c *BaseClock) Angles() clockface.ClockAngles {
	return c.angles
}

// Shadows returns the displayed hand shadows.
func (c *BaseClock) Shadows() clockface.HandShadows {
	return c.shadows
}

// SetAngles rotates the hands directly, bypassing any reading.
func (c *BaseClock) SetAngles(a clockface.ClockAngles) {
	c.angles = a
	c.shadows = clockface.CalculateHandShadows(a, c.width)

	c.hourHand.SetRotationDegrees(a.Hour)
	c.minuteHand.SetRotationDegrees(a.Minute)
	c.secondHand.SetRotationDegrees(a.Second)

	hs, ms, ss := c.shadows.Hour, c.shadows.Minute, c.shadows.Second
	c.hourHand.Shadow = &hs
	c.minuteHand.Shadow = &ms
	c.secondHand.Shadow = &ss
}

// SetDate shows a day of the month in the date window. Zero hides it.
func (c *BaseClock) SetDate(day int) {
	c.dateValue = day
	if day <= 0 {
		c.date.Visible = false
		return
	}
	c.date.Visible = true
	c.date.Label.Content = strconv.Itoa(day)
}

// Date returns the day shown in the date window, or zero.
func (c *BaseClock) Date() int {
	return c.dateValue
}

// Destroy removes the face from its scene and frees its images. Further
// calls are no-ops.
func (c *BaseClock) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.root.Dispose()
	c.releaseImages()
}

// Destroyed reports whether Destroy has been called.
func (c *BaseClock) Destroyed() bool {
	return c.destroyed
}

func (c *BaseClock) releaseImages() {
	if c.faceImage != nil {
		c.faceImage.Deallocate()
		c.faceImage = nil
	}
	if c.centerImage != nil {
		c.centerImage.Deallocate()
		c.centerImage = nil
	}
}

// build recreates every child of the root for the current options and width.
func (c *BaseClock) build() {
	for len(c.root.Children()) > 0 {
		c.root.Children()[0].Dispose()
	}
	c.releaseImages()

	c.layout = c.opts.Layout()
	c.theme = ThemeFor(c.layout.DualTone)
	w := c.width
	r := w / 2

	c.faceImage = ebiten.NewImage(int(w)+1, int(w)+1)
	drawDial(c.faceImage, w, c.theme, c.layout.Bordered)
	c.face = NewSprite(nameFace, c.faceImage)
	c.face.SetPosition(-r, -r)
	c.root.AddChild(c.face)

	c.ticks = NewContainer(nameTicks)
	for _, t := range c.layout.Ticks {
		c.ticks.AddChild(c.newTick(t))
	}
	c.root.AddChild(c.ticks)

	c.numbers = NewContainer(nameNumbers)
	for _, h := range c.layout.Hours {
		c.numbers.AddChild(c.newNumber(h))
	}
	c.root.AddChild(c.numbers)

	c.date = NewText(nameDate, "", c.font.WithSize(dateSize*w))
	c.date.Color = c.theme.Date
	c.date.SetPosition(dateOffsetRatio*w, 0)
	c.root.AddChild(c.date)
	c.SetDate(c.dateValue)

	c.hourHand = c.newHand(nameHourHand, hourHandLen*w, hourHandThick*w, c.theme.Hand)
	c.minuteHand = c.newHand(nameMinuteHand, minuteHandLen*w, minuteHandThick*w, c.theme.Hand)
	c.secondHand = c.newHand(nameSecondHand, secondHandLen*w, secondHandThick*w, c.theme.SecondHand)
	c.secondHand.Visible = c.layout.ShowSeconds
	c.root.AddChild(c.hourHand)
	c.root.AddChild(c.minuteHand)
	c.root.AddChild(c.secondHand)

	capR := centerCapRatio * w
	c.centerImage = ebiten.NewImage(int(2*capR)+1, int(2*capR)+1)
	vector.DrawFilledCircle(c.centerImage, float32(capR), float32(capR), float32(capR), c.theme.Center.RGBA(), true)
	c.center = NewSprite(nameCenter, c.centerImage)
	c.center.SetPosition(-capR, -capR)
	c.root.AddChild(c.center)

	c.frame = clockface.NewFrame(c.frame.Reading, w)
	c.SetAngles(c.angles)
}

// drawDial paints the face disc and, optionally, its border.
func drawDial(img *ebiten.Image, w float64, theme Theme, bordered bool) {
	r := float32(w / 2)
	vector.DrawFilledCircle(img, r, r, r, theme.Face.RGBA(), true)
	if bordered {
		stroke := float32(borderRatio * w)
		vector.StrokeCircle(img, r, r, r-stroke/2, stroke, theme.Border.RGBA(), true)
	}
}

// newTick creates a tick whose outer end sits on the tick circle and which
// extends toward the center.
func (c *BaseClock) newTick(t clockface.TickMark) *Node {
	length, thick, col := minorTickLen, minorTickThick, c.theme.MinorTick
	if t.Major {
		length, thick, col = majorTickLen, majorTickThick, c.theme.MajorTick
	}
	n := NewSprite("tick-"+strconv.Itoa(t.Index), nil)
	n.Color = col
	n.SetScale(thick*c.width, length*c.width)
	n.SetPivot(0.5, 0)
	n.SetPosition(polar(t.Angle, tickOuterRatio*c.width))
	n.SetRotationDegrees(t.Angle)
	return n
}

func (c *BaseClock) newNumber(h clockface.HourMark) *Node {
	size, col := numberSize, c.theme.Number
	if h.Cardinal && c.layout.DualTone {
		size, col = cardinalSize, c.theme.CardinalNumber
	}
	n := NewText("hour-"+strconv.Itoa(h.Hour), h.Text, c.font.WithSize(size*c.width))
	n.Color = col
	n.SetPosition(polar(h.Angle, numberRadius*c.width))
	return n
}

// newHand creates a hand pointing at 12 o'clock that rotates about the dial
// center, with a short tail past it.
func (c *BaseClock) newHand(name string, length, thick float64, col Color) *Node {
	n := NewSprite(name, nil)
	n.Color = col
	n.SetScale(thick, length*(1+handTail))
	n.SetPivot(0.5, 1/(1+handTail))
	return n
}
