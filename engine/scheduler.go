package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/viper/input"
	"github.com/lixenwraith/viper/render"
	"github.com/lixenwraith/viper/status"
)

// Command is a control message for the tick goroutine
type Command uint8

const (
	CommandTogglePause Command = iota + 1
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandTogglePause:
		return "toggle_pause"
	case CommandRestart:
		return "restart"
	}
	return "unknown"
}

var (
	ErrAlreadyRunning = errors.New("scheduler already running")
	ErrCrashed        = errors.New("tick loop crashed")
)

// commandBuffer bounds queued control messages; extra sends are dropped
const commandBuffer = 8

// FrameFunc receives the frame of every tick on the tick goroutine
// The frame is reused: retain only a Clone
type FrameFunc func(f *render.Frame)

// Scheduler drives the World on a fixed tick and is its only writer
// Other goroutines talk to it through TogglePause and Restart
type Scheduler struct {
	world    *World
	input    input.Source
	interval time.Duration
	logger   *zap.Logger

	commands chan Command
	frame    *render.Frame
	onFrame  FrameFunc

	ticks   atomic.Uint64
	running atomic.Bool

	tickMetric   *atomic.Int64
	phaseMetric  *status.AtomicString
	pausedMetric *atomic.Bool
	stepMillis   *status.AtomicFloat
}

// NewScheduler creates a scheduler for world reading input from src every interval
func NewScheduler(world *World, src input.Source, interval time.Duration, logger *zap.Logger) *Scheduler {
	if src == nil {
		src = input.Idle
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := world.Status
	return &Scheduler{
		world:    world,
		input:    src,
		interval: interval,
		logger:   logger.Named("scheduler"),
		commands: make(chan Command, commandBuffer),
		frame:    render.NewFrame(world.Field.Width, world.Field.Height),

		tickMetric:   reg.Ints.Get(MetricTick),
		phaseMetric:  reg.Strings.Get(MetricPhase),
		pausedMetric: reg.Bools.Get(MetricPaused),
		stepMillis:   reg.Floats.Get(MetricStepMillis),
	}
}

// OnFrame sets the per-tick frame consumer; must be called before Run
func (s *Scheduler) OnFrame(fn FrameFunc) {
	s.onFrame = fn
}

// TogglePause requests a pause flip on the next loop iteration
func (s *Scheduler) TogglePause() {
	s.send(CommandTogglePause)
}

// Restart requests a restart on the next loop iteration
func (s *Scheduler) Restart() {
	s.send(CommandRestart)
}

func (s *Scheduler) send(c Command) {
	select {
	case s.commands <- c:
	default:
		s.logger.Warn("command dropped, queue full", zap.Stringer("command", c))
	}
}

// Paused reports whether game time is frozen
func (s *Scheduler) Paused() bool {
	return s.world.Clock.IsPaused()
}

// Ticks returns the number of loop ticks fired, paused ones included
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// Run ticks until ctx is cancelled or a tick fails
// A panic on the tick goroutine is recovered and returned as ErrCrashed
func (s *Scheduler) Run(ctx context.Context) (err error) {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tick loop panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrCrashed, r)
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("started", zap.Duration("interval", s.interval), zap.String("phase", s.world.PhaseName()))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopped", zap.Uint64("ticks", s.ticks.Load()))
			return nil

		case c := <-s.commands:
			s.apply(c)

		case <-ticker.C:
			if err := s.Tick(); err != nil {
				s.logger.Error("tick failed", zap.Error(err))
				return err
			}
		}
	}
}

// Tick runs one cycle: read input, apply its edges, then step and draw unless paused
// A paused tick re-emits the last frame marked paused and mutates nothing
func (s *Scheduler) Tick() error {
	in := s.input.Snapshot()
	if in.Pause {
		s.apply(CommandTogglePause)
	}
	if in.Restart {
		s.apply(CommandRestart)
	}

	if s.world.Clock.IsPaused() {
		s.frame.Paused = true
	} else {
		start := time.Now()
		if err := s.world.Step(in); err != nil {
			return fmt.Errorf("tick %d: %w", s.world.Tick(), err)
		}
		s.frame.Begin(s.world.Tick(), s.world.PhaseName(), false)
		s.world.Draw(s.frame)
		s.stepMillis.Set(float64(time.Since(start).Microseconds()) / 1000)
	}
	s.publish()

	s.ticks.Add(1)
	if s.onFrame != nil {
		s.onFrame(s.frame)
	}
	return nil
}

func (s *Scheduler) publish() {
	s.tickMetric.Store(int64(s.world.Tick()))
	s.phaseMetric.Store(s.world.PhaseName())
	s.pausedMetric.Store(s.world.Clock.IsPaused())
}

func (s *Scheduler) apply(c Command) {
	switch c {
	case CommandTogglePause:
		paused := s.world.Clock.Toggle()
		s.logger.Info("pause", zap.Bool("paused", paused))
	case CommandRestart:
		s.world.Restart()
		s.world.Clock.Resume()
	}
}
