package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-shooter/asset"
	"github.com/lixenwraith/vi-shooter/audio"
	"github.com/lixenwraith/vi-shooter/audio/cue"
	"github.com/lixenwraith/vi-shooter/config"
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/game"
	"github.com/lixenwraith/vi-shooter/input"
	"github.com/lixenwraith/vi-shooter/parameter"
	"github.com/lixenwraith/vi-shooter/render"
)

type options struct {
	configPath string
	spritePath string
	logDir     string
	debug      bool
	profile    string

	headless bool
	ticks    int
	dt       float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-shooter: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "vi-shooter",
		Short:         "Terminal space shooter on a small entity-component-system engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&opts.spritePath, "sprites", "", "YAML sprite sheet overriding the built-in sprites")
	flags.StringVar(&opts.logDir, "log-dir", logDir, "debug log directory")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "write a debug log")
	flags.StringVar(&opts.profile, "profile", "", "profile the run: cpu or mem")
	flags.BoolVar(&opts.headless, "headless", false, "run a scripted session without a terminal")
	flags.IntVar(&opts.ticks, "ticks", parameter.HeadlessTicks, "headless tick count")
	flags.Float64Var(&opts.dt, "dt", parameter.HeadlessDelta, "headless seconds per tick")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	log, logFile, err := setupLogging(opts.logDir, opts.debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log = log.With().Str("session", uuid.NewString()).Logger()

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return eris.Errorf("unknown profile mode %q", opts.profile)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	assets, err := loadAssets(opts.spritePath, log)
	if err != nil {
		return err
	}

	if opts.headless {
		return runHeadless(cmd, cfg, assets, opts, log)
	}
	return runInteractive(cmd.Context(), cfg, assets, log)
}

func loadAssets(path string, log zerolog.Logger) (*asset.Server, error) {
	assets, err := asset.NewDefaultServer(log)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return assets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read sprite sheet %s", path)
	}
	if err := assets.LoadSheet(data); err != nil {
		return nil, eris.Wrapf(err, "failed to load sprite sheet %s", path)
	}
	return assets, nil
}

// runHeadless plays a scripted session at a fixed delta and prints the final state
func runHeadless(cmd *cobra.Command, cfg config.World, assets *asset.Server, opts *options, log zerolog.Logger) error {
	if opts.ticks < 0 || opts.dt <= 0 {
		return eris.Errorf("headless run needs ticks >= 0 and dt > 0, got %d and %g", opts.ticks, opts.dt)
	}

	script := &input.Script{FireEvery: parameter.HeadlessFireEvery, SweepTicks: parameter.HeadlessSweepTicks}
	cues := &cue.Counter{}
	g, err := game.New(cfg, assets, script, cues, log)
	if err != nil {
		return err
	}

	for range opts.ticks {
		g.Tick(opts.dt)
	}

	stats := g.Stats()
	log.Info().Object("stats", stats).Msg("headless run complete")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks=%d entities=%d waves=%d killed=%d out_of_range=%d hits=%d\n",
		stats.Ticks, stats.Entities, stats.Waves, stats.Killed, stats.OutOfRange, stats.Hits)
	fmt.Fprintf(out, "cues fire=%d hit=%d death=%d\n",
		cues.Count(cue.Fire), cues.Count(cue.Hit), cues.Count(cue.Death))
	fmt.Fprintf(out, "checksum=%016x\n", g.Checksum())
	return nil
}

// runInteractive plays in the terminal until quit or a signal
// The clock goroutine owns the world; the input goroutine only feeds the keyboard provider
func runInteractive(parent context.Context, cfg config.World, assets *asset.Server, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "failed to initialize screen")
	}
	defer screen.Fini()
	core.OnCrash(screen.Fini)
	screen.HideCursor()

	keyboard := input.NewKeyboard(nil, parameter.KeyHoldWindow)

	var player cue.Player
	if cfg.Audio {
		acfg := audio.DefaultConfig()
		acfg.MasterVolume = cfg.AudioVolume
		sm := audio.NewSoundManager(acfg, log)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	g, err := game.New(cfg, assets, keyboard, player, log)
	if err != nil {
		return err
	}

	term := render.NewTerminal(screen, assets)
	term.Title = cfg.Title
	term.Metrics = g.Metrics
	clock := g.Clock(nil)
	clock.OnFrame(func(uint64, float64) { term.Draw(g.World) })

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer core.Recover()
		if err := clock.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		defer core.Recover()
		pumpInput(screen, keyboard, input.DefaultKeyTable(), cancel)
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		// Unblocks PollEvent in the input pump
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	err = eg.Wait()
	ev := log.Info()
	for _, m := range g.Metrics.Snapshot() {
		ev = ev.Float64(m.Key, m.Value)
	}
	ev.Msg("session ended")
	return err
}

// pumpInput forwards terminal key events to the keyboard until quit or interrupt
func pumpInput(screen tcell.Screen, keyboard *input.Keyboard, table *input.KeyTable, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			key, ok := table.FromTcell(ev)
			if !ok {
				continue
			}
			if key == input.KeyQuit {
				quit()
				return
			}
			keyboard.Press(key)
		}
	}
}
