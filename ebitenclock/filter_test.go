package ebitenclock

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBlurFilterNegativeRadius(t *testing.T) {
	f := NewBlurFilter(-5)
	if f.Radius != 0 {
		t.Errorf("negative radius should clamp to 0, got %d", f.Radius)
	}
}

func TestBlurFilterPasses(t *testing.T) {
	cases := []struct {
		radius, want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{8, 3},
		{9, 4},
	}
	for _, tc := range cases {
		f := NewBlurFilter(tc.radius)
		if got := f.Passes(); got != tc.want {
			t.Errorf("Passes(radius=%d) = %d, want %d", tc.radius, got, tc.want)
		}
	}
}

func TestBlurFilterTempChainHalves(t *testing.T) {
	f := NewBlurFilter(8)
	src := newTestImage(64, 32)
	f.ensureTemps(src, f.Passes())

	want := [][2]int{{32, 16}, {16, 8}, {8, 4}}
	if len(f.temps) != len(want) {
		t.Fatalf("temps = %d, want %d", len(f.temps), len(want))
	}
	for i, w := range want {
		b := f.temps[i].Bounds()
		if b.Dx() != w[0] || b.Dy() != w[1] {
			t.Errorf("temp[%d] = %dx%d, want %dx%d", i, b.Dx(), b.Dy(), w[0], w[1])
		}
	}

	f.Radius = 2
	f.ensureTemps(src, f.Passes())
	if len(f.temps) != 1 {
		t.Errorf("temps after shrinking = %d, want 1", len(f.temps))
	}
	f.Dispose()
	if f.temps != nil {
		t.Error("Dispose should drop temps")
	}
}

func newTestImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(w, h)
}
