package ebitenclock

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertPoint(t *testing.T, label string, gx, gy, wx, wy float64) {
	t.Helper()
	if !approxEqual(gx, wx, 1e-6) || !approxEqual(gy, wy, 1e-6) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", label, gx, gy, wx, wy)
	}
}

func TestIdentityTransform(t *testing.T) {
	n := NewContainer("n")
	m := computeLocalTransform(n)
	for i, v := range identityTransform {
		if !approxEqual(m[i], v, epsilon) {
			t.Fatalf("m[%d] = %v, want %v", i, m[i], v)
		}
	}
}

func TestRotationIsClockwiseOnScreen(t *testing.T) {
	n := NewContainer("n")
	n.SetRotationDegrees(90)
	m := computeLocalTransform(n)

	// 12 o'clock direction turns to 3 o'clock.
	x, y := transformPoint(m, 0, -1)
	assertPoint(t, "rotated up", x, y, 1, 0)
}

func TestRotationDegreesRoundTrip(t *testing.T) {
	n := NewContainer("n")
	n.SetRotationDegrees(135)
	if !approxEqual(n.RotationDegrees(), 135, 1e-9) {
		t.Errorf("RotationDegrees = %v, want 135", n.RotationDegrees())
	}
	if !n.transformDirty {
		t.Error("rotation should mark the node dirty")
	}
}

func TestPivotScaledRotated(t *testing.T) {
	// A 1x1 pixel scaled to a 4x100 hand, pivoted at its bottom center.
	n := NewSprite("hand", nil)
	n.SetScale(4, 100)
	n.SetPivot(0.5, 1)
	n.SetRotationDegrees(90)
	m := computeLocalTransform(n)

	// The pivot stays at the origin.
	x, y := transformPoint(m, 0.5, 1)
	assertPoint(t, "pivot", x, y, 0, 0)
	// The tip points at 3 o'clock.
	x, y = transformPoint(m, 0.5, 0)
	assertPoint(t, "tip", x, y, 100, 0)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	p := [6]float64{1, 0, 0, 1, 10, 20}
	c := [6]float64{1, 0, 0, 1, 5, 7}
	m := multiplyAffine(p, c)
	if m[4] != 15 || m[5] != 27 {
		t.Errorf("translation = (%v, %v), want (15, 27)", m[4], m[5])
	}
}

func TestUpdateWorldTransformPropagates(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	root.SetPosition(100, 50)
	child.SetPosition(10, 0)
	root.SetAlpha(0.5)

	updateWorldTransform(root, identityTransform, 1, false)

	x, y := child.LocalToWorld(0, 0)
	assertPoint(t, "child origin", x, y, 110, 50)
	if !approxEqual(child.worldAlpha, 0.5, epsilon) {
		t.Errorf("worldAlpha = %v, want 0.5", child.worldAlpha)
	}

	// Moving the parent alone still refreshes the child.
	root.SetPosition(0, 0)
	updateWorldTransform(root, identityTransform, 1, false)
	x, y = child.LocalToWorld(0, 0)
	assertPoint(t, "child after move", x, y, 10, 0)
}

func TestPolar(t *testing.T) {
	cases := []struct {
		deg    float64
		wx, wy float64
	}{
		{0, 0, -10},
		{90, 10, 0},
		{180, 0, 10},
		{270, -10, 0},
	}
	for _, tc := range cases {
		x, y := polar(tc.deg, 10)
		assertPoint(t, "polar", x, y, tc.wx, tc.wy)
	}
}
