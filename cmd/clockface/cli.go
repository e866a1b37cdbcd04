package main

import (
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/clockface"
	"github.com/phanxgames/clockface/ebitenclock"
	"github.com/phanxgames/clockface/internal/config"
	clocklog "github.com/phanxgames/clockface/internal/log"
)

// CLI is the kong command tree.
type CLI struct {
	Config   string `help:"Path to the YAML config file." default:"clockface.yaml" type:"path" short:"c"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error). Overrides the config file." placeholder:"LEVEL"`

	Run   RunCmd   `cmd:"" default:"withargs" help:"Open a window with a live clock."`
	Frame FrameCmd `cmd:"" help:"Print one frame of clock geometry as YAML."`
}

// app carries what every command needs.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	out io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("clockface"),
		kong.Description("Analog clock geometry and a live desktop clock."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadOptional(cli.Config)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if cli.LogLevel != "" {
		level = cli.LogLevel
	}
	clocklog.Configure(clocklog.Config{Level: level, Output: stderr, Pretty: cfg.Log.Pretty})

	a := &app{cfg: cfg, log: clocklog.WithComponent("cli"), out: stdout}
	a.log.Debug().Str("config", cli.Config).Str("command", ctx.Command()).Msg("starting")
	return ctx.Run(a)
}

// RunCmd opens the clock window.
type RunCmd struct {
	Timezone string `help:"IANA timezone, e.g. Europe/Paris. Overrides the config file." short:"z"`
	Sweep    bool   `help:"Move the second hand continuously."`
	FPS      bool   `help:"Show an FPS counter."`
}

func (c *RunCmd) Run(a *app) error {
	opts := a.cfg.Clock
	if c.Timezone != "" {
		opts.Timezone = c.Timezone
	}
	if c.Sweep {
		opts.SmoothSweep = true
	}

	scene := ebitenclock.NewScene()
	clock, err := ebitenclock.NewLiveClock(scene, opts,
		clockface.WithLogger(clocklog.WithComponent("engine")))
	if err != nil {
		return err
	}
	clock.SetLogger(a.log)
	defer clock.Destroy()

	rc := a.cfg.RunConfig()
	rc.Logger = clocklog.WithComponent("render")
	if c.FPS {
		rc.ShowFPS = true
	}
	return ebitenclock.Run(clock, rc)
}

// FrameCmd prints a single frame.
type FrameCmd struct {
	At       string  `help:"Instant to render in RFC 3339. Defaults to now." placeholder:"TIME"`
	Width    float64 `help:"Face width in pixels, used for shadow sizes." default:"300"`
	Sweep    bool    `help:"Use sweep mode, keeping sub-second motion."`
	Timezone string  `help:"IANA timezone. Overrides the config file." short:"z"`
}

// frameOutput is the YAML document printed by FrameCmd.
type frameOutput struct {
	Timezone string            `yaml:"timezone"`
	Mode     string            `yaml:"mode"`
	Date     int               `yaml:"date"`
	Frame    clockface.Frame   `yaml:"frame"`
	CSS      map[string]string `yaml:"css"`
}

// fixedClock always reports the same instant.
type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func (c *FrameCmd) Run(a *app) error {
	if c.Width <= 0 {
		return fmt.Errorf("--width must be positive, got %v", c.Width)
	}
	tz := a.cfg.Clock.Timezone
	if c.Timezone != "" {
		tz = c.Timezone
	}

	opts := []clockface.EngineOption{clockface.WithLogger(clocklog.WithComponent("engine"))}
	if c.At != "" {
		at, err := time.Parse(time.RFC3339Nano, c.At)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		opts = append(opts, clockface.WithClock(fixedClock(at)))
	}

	e := clockface.NewEngine(clockface.Options{Timezone: tz}, opts...)
	mode := "tick"
	if c.Sweep || a.cfg.Clock.SmoothSweep {
		mode = "sweep"
		e.UpdateSweep()
	} else {
		e.UpdateTick()
	}

	frame := e.Frame(c.Width)
	out := frameOutput{
		Timezone: tz,
		Mode:     mode,
		Date:     e.CurrentDate(),
		Frame:    frame,
		CSS: map[string]string{
			"hour":   frame.Shadows.Hour.CSSFilter(),
			"minute": frame.Shadows.Minute.CSSFilter(),
			"second": frame.Shadows.Second.CSSFilter(),
		},
	}

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return enc.Close()
}
