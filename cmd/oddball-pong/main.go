package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/oddball-pong/audio"
	"github.com/lixenwraith/oddball-pong/config"
	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/engine"
	"github.com/lixenwraith/oddball-pong/game"
	"github.com/lixenwraith/oddball-pong/input"
	"github.com/lixenwraith/oddball-pong/render"
	"github.com/lixenwraith/oddball-pong/status"
	"github.com/lixenwraith/oddball-pong/trial"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	colorModeFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	debugFlag       = flag.Bool("debug", false, "Log to logs/ and show metrics in the title strip")
	trialsFlag      = flag.String("trials", "", "Append stimulus trials to this msgpack file")
	muteFlag        = flag.Bool("mute", false, "Disable sound cues")
	writeConfigFlag = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.RestoreTerminal()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mODDBALL-PONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	if *writeConfigFlag != "" {
		if err := cfg.Save(*writeConfigFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "oddball-pong: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the loaded config
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.Display.ColorMode = *colorModeFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "trials":
			cfg.TrialLog = *trialsFlag
		case "mute":
			cfg.Audio.Enabled = cfg.Audio.Enabled && !*muteFlag
		}
	})
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		if os.Getenv("COLORTERM") == "" {
			os.Setenv("COLORTERM", "truecolor")
		}
	}
}

func run(cfg *config.Config) error {
	applyColorMode(cfg.Display.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer core.RestoreTerminal()

	screen.EnableMouse()
	screen.HideCursor()

	background, err := cfg.BackgroundRGB()
	if err != nil {
		return err
	}
	reg := status.NewRegistry()

	sound := audio.NewSoundManager(audio.LoadAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	var trials trial.Sink
	if cfg.TrialLog != "" {
		recorder, err := trial.Create(cfg.TrialLog)
		if err != nil {
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				log.Printf("trial log: %v", err)
			}
			log.Printf("trial log: %d records written to %s", recorder.Count(), cfg.TrialLog)
		}()
		trials = recorder
	}

	var statusLine *status.Registry
	if cfg.Debug {
		statusLine = reg
	}
	keys := input.NewState(cfg.Input.RepeatDelay.Duration, cfg.Input.KeyHold.Duration)
	bar := input.NewButtonBar()
	renderer := render.NewTerminalRenderer(screen, background, bar, statusLine)
	layout := resize(renderer, screen)

	clock := engine.NewTimeProvider()
	g := game.New(keys, layout.Canvas.Width, layout.Canvas.Height, clock.Now(), game.Options{
		SetSize:    cfg.Stimulus.SetSize,
		Stimulus:   cfg.Stimulus.Enabled,
		Background: background,
		Cues:       sound,
		Trials:     trials,
		Status:     reg,
	})
	translator := input.NewTranslator(keys, bar)

	// Input polling runs on its own goroutine, the rest of the game on the loop goroutine
	events := make(chan tcell.Event, constants.EventQueueSize)
	engine.Pump(screen, events)

	loop, err := engine.NewLoop(engine.LoopConfig{
		UpdateInterval: cfg.Timing.UpdateInterval.Duration,
		DrawInterval:   cfg.Timing.DrawInterval.Duration,
		Clock:          clock,
		Events:         events,
		OnUpdate:       g.Update,
		OnDraw: func(time.Time) {
			renderer.RenderFrame(g)
		},
		OnEvent: func(ev tcell.Event, now time.Time) bool {
			switch translator.HandleEvent(ev, now) {
			case input.ActionQuit:
				return false
			case input.ActionResize:
				screen.Sync()
				l := resize(renderer, screen)
				g.Resize(l.Canvas.Width, l.Canvas.Height)
			}
			return true
		},
		Status: reg,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	scores := g.Scores()
	played, dropped := sound.Stats()
	log.Printf("session end: score %d:%d, cues played %d dropped %d, metrics %v",
		scores[0], scores[1], played, dropped, reg.Snapshot())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// resize lays the screen out again; a too-small terminal is logged and play continues
func resize(renderer *render.TerminalRenderer, screen tcell.Screen) render.Layout {
	w, h := screen.Size()
	l, err := renderer.Resize(w, h)
	if err != nil {
		log.Printf("layout: %v", err)
	}
	return l
}
