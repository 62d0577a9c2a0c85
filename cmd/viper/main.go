package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/viper/asset"
	"github.com/lixenwraith/viper/audio"
	"github.com/lixenwraith/viper/config"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/core"
	"github.com/lixenwraith/viper/engine"
	"github.com/lixenwraith/viper/input"
	"github.com/lixenwraith/viper/render"
	"github.com/lixenwraith/viper/spectator"
	"github.com/lixenwraith/viper/status"
)

var (
	configFlag = flag.String("config", "", "Path to TOML configuration")
	envFlag    = flag.String("env", ".env", "Path to .env file with VIPER_* overrides")
	phasesFlag = flag.String("phases", "", "Phase schedule TOML, overrides [phases] file")
	seedFlag   = flag.Int64("seed", 0, "Random seed, overrides [game] seed")
)

// assetTimeout bounds the readiness gate before the first tick
const assetTimeout = 10 * time.Second

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "viper: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		return err
	}
	if *phasesFlag != "" {
		cfg.Phases.File = *phasesFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger.Info("starting", zap.Int64("seed", cfg.Game.Seed), zap.Duration("tick", cfg.Game.TickInterval))

	schedule, err := loadSchedule(cfg.Phases.File)
	if err != nil {
		return err
	}

	// Audio is optional: the manager stays silent when the device is unavailable
	sound := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.MasterVolume,
		SampleRate:   cfg.Audio.SampleRate,
		HitVolume:    1.0,
	}, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without audio", zap.Error(err))
	}
	defer sound.Cleanup()

	reg := status.NewRegistry()
	world, err := engine.NewWorld(engine.Options{
		Width:    cfg.Game.Width,
		Height:   cfg.Game.Height,
		Seed:     cfg.Game.Seed,
		Schedule: schedule,
		Sound:    sound,
		Clock:    engine.NewPausableClock(nil),
		Logger:   logger,
		Status:   reg,
	})
	if err != nil {
		return err
	}

	tracker := input.NewTracker(cfg.Input.Hold, nil)
	if cfg.Input.Keymap != "" {
		keys, err := loadKeymap(cfg.Input.Keymap)
		if err != nil {
			return err
		}
		tracker.SetKeyTable(keys)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	term := render.NewTerminal(screen)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	core.Go(func() { pollEvents(screen, tracker, cancel) })

	// Assets load in the background; the loop starts once every entity is drawable
	loader := asset.NewLoader(cfg.Assets.SpriteSheet, logger)
	loader.Start(term.SetGlyph, world.Entities())

	gateCtx, gateCancel := context.WithTimeout(ctx, assetTimeout)
	err = asset.WaitReady(gateCtx, constants.ReadyPollInterval, append(asset.Readiers(world.Entities()), loader)...)
	gateCancel()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("assets: %w", err)
	}

	var hub *spectator.Hub
	if cfg.Spectator.Enabled {
		hub = spectator.NewHub(logger)
		defer hub.Close()

		srv := spectator.NewServer(cfg.Spectator.Addr, hub, reg)
		core.Go(func() {
			logger.Info("spectator listening", zap.String("addr", srv.Addr), zap.String("path", spectator.FramesPath))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("spectator server", zap.Error(err))
			}
		})
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	scheduler := engine.NewScheduler(world, tracker, cfg.Game.TickInterval, logger)
	scheduler.OnFrame(func(f *render.Frame) {
		term.Render(f)
		if hub != nil {
			hub.Broadcast(f)
		}
	})

	if err := scheduler.Run(ctx); err != nil {
		logger.Error("game loop stopped", zap.Error(err))
		return err
	}
	logger.Info("exit", zap.Uint64("ticks", scheduler.Ticks()), zap.Any("status", reg.Snapshot()))
	return nil
}

// pollEvents feeds key events to the tracker until the screen closes or quit is pressed
func pollEvents(screen tcell.Screen, tracker *input.Tracker, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventFocus:
			if !ev.Focused {
				tracker.Release()
			}
		case *tcell.EventKey:
			if tracker.HandleEvent(ev) == input.ActionQuit {
				quit()
				return
			}
		}
	}
}

func loadSchedule(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read phase schedule: %w", err)
	}
	return string(data), nil
}

func loadKeymap(path string) (*input.KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
