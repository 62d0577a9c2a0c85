package engine

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/viper/asset"
	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/effect"
	"github.com/lixenwraith/viper/engine/fsm"
	"github.com/lixenwraith/viper/physics"
	"github.com/lixenwraith/viper/pool"
	"github.com/lixenwraith/viper/status"
	"github.com/lixenwraith/viper/vmath"
)

// Sound is the fire-and-forget hit effect played on every defeat
type Sound interface {
	PlayHit()
}

type silentSound struct{}

func (silentSound) PlayHit() {}

// EntityPool is the pool type shared by every actor kind
type EntityPool = pool.Pool[*component.Entity]

// Banner is the game over text overlay
type Banner struct {
	Visible bool
	Text    string
	Y       float64
}

// Options configures a World; zero values select the defaults
type Options struct {
	Width, Height float64
	Seed          int64

	// Schedule is the phase schedule TOML, asset.DefaultSchedule when empty
	Schedule string

	Sound  Sound
	Clock  *PausableClock
	Logger *zap.Logger

	// Status receives world and scheduler counters; a private registry when nil
	Status *status.Registry
}

// Metric names published to the status registry
const (
	MetricDefeats           = "world.defeats"
	MetricSpawnsDropped     = "world.spawns_dropped"
	MetricExplosionsDropped = "world.explosions_dropped"
	MetricRestarts          = "world.restarts"
	MetricTick              = "engine.tick"
	MetricPhase             = "engine.phase"
	MetricPaused            = "engine.paused"
	MetricStepMillis        = "engine.step_ms"
)

// worldMetrics caches registry cells so the step path never takes the registry lock
type worldMetrics struct {
	defeats           *atomic.Int64
	spawnsDropped     *atomic.Int64
	explosionsDropped *atomic.Int64
	restarts          *atomic.Int64
}

func newWorldMetrics(reg *status.Registry) worldMetrics {
	return worldMetrics{
		defeats:           reg.Ints.Get(MetricDefeats),
		spawnsDropped:     reg.Ints.Get(MetricSpawnsDropped),
		explosionsDropped: reg.Ints.Get(MetricExplosionsDropped),
		restarts:          reg.Ints.Get(MetricRestarts),
	}
}

// World is the whole simulation state, owned by a single goroutine
// Every mutable field is touched only from Step, Restart and the phase actions
type World struct {
	Field  physics.Field
	Player *component.Entity

	PlayerShots *EntityPool
	Enemies     *EntityPool
	Large       *EntityPool
	Bosses      *EntityPool
	EnemyShots  *EntityPool
	Homing      *EntityPool

	Explosions *pool.Pool[*effect.Explosion]
	Stars      *effect.StarField
	Banner     Banner

	Phases   *fsm.Machine[*World]
	Resolver physics.Resolver

	Sound  Sound
	Clock  *PausableClock
	Rand   *rand.Rand
	Logger *zap.Logger
	Status *status.Registry

	metrics worldMetrics

	// spawnPools resolves schedule pool names
	spawnPools map[string]*EntityPool

	tick uint64
}

// NewWorld constructs every pool, wires targets and loads the phase schedule
// The player starts its entry and the initial phase is active
func NewWorld(opts Options) (*World, error) {
	if opts.Width <= 0 {
		opts.Width = constants.FieldWidth
	}
	if opts.Height <= 0 {
		opts.Height = constants.FieldHeight
	}
	if opts.Schedule == "" {
		opts.Schedule = asset.DefaultSchedule
	}
	if opts.Sound == nil {
		opts.Sound = silentSound{}
	}
	if opts.Clock == nil {
		opts.Clock = NewPausableClock(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	w := &World{
		Field:  physics.Field{Width: opts.Width, Height: opts.Height},
		Player: component.NewEntity(component.KindPlayer, constants.PlayerSize),
		Sound:  opts.Sound,
		Clock:  opts.Clock,
		Rand:   rng,
		Logger: opts.Logger.Named("world"),
		Status: opts.Status,
	}
	w.metrics = newWorldMetrics(opts.Status)

	w.PlayerShots = newEntityPool("player_shot", constants.PlayerShotCapacity, component.KindPlayerShot, constants.ShotSize)
	w.Enemies = newEntityPool("enemy", constants.EnemyCapacity, component.KindEnemy, constants.EnemySize)
	w.Large = newEntityPool("large", constants.LargeCapacity, component.KindLarge, constants.LargeSize)
	w.Bosses = newEntityPool("boss", constants.BossCapacity, component.KindBoss, constants.BossSize)
	w.EnemyShots = newEntityPool("enemy_shot", constants.EnemyShotCapacity, component.KindEnemyShot, constants.ShotSize)
	w.Homing = newEntityPool("homing", constants.HomingCapacity, component.KindHoming, constants.HomingSize)
	w.Explosions = pool.New("explosion", constants.ExplosionCapacity, func(int) *effect.Explosion {
		return effect.NewExplosion(rng)
	})
	w.Stars = effect.NewStarField(constants.StarCount, opts.Width, opts.Height, rng)

	w.spawnPools = map[string]*EntityPool{
		"enemy": w.Enemies,
		"large": w.Large,
	}

	w.wireTargets()
	w.Resolver.OnDefeat = w.onDefeat

	phases, err := newPhaseMachine(opts.Schedule)
	if err != nil {
		return nil, fmt.Errorf("phase schedule: %w", err)
	}
	w.Phases = phases

	w.startPlayer()
	w.Phases.Reset()

	return w, nil
}

func newEntityPool(name string, capacity int, kind component.Kind, size float64) *EntityPool {
	return pool.New(name, capacity, func(int) *component.Entity {
		return component.NewEntity(kind, size)
	})
}

// wireTargets builds the fixed target lists
// Player and player shots target every hostile in pool order: enemies, large, boss
// Everything hostile targets the player
func (w *World) wireTargets() {
	hostiles := make([]*component.Entity, 0, w.Enemies.Cap()+w.Large.Cap()+w.Bosses.Cap())
	hostiles = append(hostiles, w.Enemies.Items()...)
	hostiles = append(hostiles, w.Large.Items()...)
	hostiles = append(hostiles, w.Bosses.Items()...)

	player := []*component.Entity{w.Player}

	w.Player.SetTargets(hostiles)
	w.PlayerShots.Each(func(e *component.Entity) { e.SetTargets(hostiles) })
	for _, p := range []*EntityPool{w.Enemies, w.Large, w.Bosses, w.EnemyShots, w.Homing} {
		p.Each(func(e *component.Entity) { e.SetTargets(player) })
	}
}

// Entities returns every pooled entity plus the player, for readiness gating
func (w *World) Entities() []*component.Entity {
	all := []*component.Entity{w.Player}
	for _, p := range w.entityPools() {
		all = append(all, p.Items()...)
	}
	return all
}

func (w *World) entityPools() []*EntityPool {
	return []*EntityPool{w.PlayerShots, w.Enemies, w.Large, w.Bosses, w.EnemyShots, w.Homing}
}

// Tick returns the number of completed steps since construction
func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) startPlayer() {
	w.Player.StartComing(vmath.V2(w.Field.Width/2, w.Field.Height), constants.PlayerLife)
}

// onDefeat triggers an explosion at the defeated entity and the hit sound
// Explosions beyond pool capacity are dropped; the sound always plays
func (w *World) onDefeat(e *component.Entity) {
	w.metrics.defeats.Add(1)
	if x, ok := w.Explosions.Claim(); ok {
		x.Trigger(e.Pos, w.Clock.Now())
	} else {
		w.metrics.explosionsDropped.Add(1)
		w.Logger.Debug("explosion dropped, pool exhausted", zap.Stringer("kind", e.Kind))
	}
	w.Sound.PlayHit()
}

// Restart clears every actor pool, re-enters the player and re-activates the initial phase
func (w *World) Restart() {
	for _, p := range w.entityPools() {
		p.Reset()
	}
	w.Banner = Banner{}
	w.startPlayer()
	w.Phases.Reset()
	w.metrics.restarts.Add(1)
	w.Logger.Info("restart", zap.String("phase", w.Phases.StateName(w.Phases.Active())))
}
