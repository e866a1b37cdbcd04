package ebitenclock

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame render stats at debug level.
	Debug  bool
	Logger zerolog.Logger
}

// DefaultRunConfig returns a 480x480 window titled "clockface".
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "clockface",
		Width:      480,
		Height:     480,
		ClearColor: Color{0.12, 0.13, 0.15, 1},
		Logger:     zerolog.Nop(),
	}
}

// game adapts a LiveClock to ebiten.Game.
type game struct {
	clock *LiveClock
	scene *Scene
	cfg   RunConfig
	w, h  int
}

func newGame(clock *LiveClock, cfg RunConfig) *game {
	scene := clock.Base().scene
	scene.ClearColor = cfg.ClearColor
	scene.SetLogger(cfg.Logger)
	scene.SetDebugMode(cfg.Debug)
	return &game{clock: clock, scene: scene, cfg: cfg}
}

// Run opens a resizable window showing clock and blocks until it is closed.
func Run(clock *LiveClock, cfg RunConfig) error {
	if clock == nil {
		return ErrNoTarget
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultRunConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	cfg.Logger.Info().
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("opening clock window")
	if err := ebiten.RunGame(newGame(clock, cfg)); err != nil {
		return fmt.Errorf("ebitenclock: run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.clock.Update(dt)
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.clock.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
