package engine

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/constants"
	"github.com/lixenwraith/viper/engine/fsm"
	"github.com/lixenwraith/viper/vmath"
)

// Phase IDs; schedule files may only name these
const (
	PhaseComing fsm.StateID = iota + 1
	PhaseInvade
	PhaseWave
	PhaseInvadeLarge
	PhaseBoss
	PhaseGameOver
)

var phaseNames = map[fsm.StateID]string{
	PhaseComing:      "coming",
	PhaseInvade:      "invade",
	PhaseWave:        "wave",
	PhaseInvadeLarge: "invade_large",
	PhaseBoss:        "boss",
	PhaseGameOver:    "gameover",
}

// SpawnRule is the compiled argument of the "spawn" action
type SpawnRule struct {
	Pool    string  `toml:"pool"`
	Variant string  `toml:"variant"`
	Life    int     `toml:"life"`
	Speed   float64 `toml:"speed"`

	// Cadence: every N frames within [From, Until], and/or once at frame At
	Every int  `toml:"every"`
	At    *int `toml:"at"`
	From  int  `toml:"from"`
	Until int  `toml:"until"` // 0 = unbounded

	// Center places the spawn at the field's horizontal centre instead of a random x
	Center bool `toml:"center"`

	variant component.Variant
}

// Due reports whether the rule fires on frame
func (r *SpawnRule) Due(frame int) bool {
	if frame < r.From || (r.Until > 0 && frame > r.Until) {
		return false
	}
	if r.At != nil && frame == *r.At {
		return true
	}
	return r.Every > 0 && frame%r.Every == 0
}

// BossRule is the compiled argument of the "boss" action
type BossRule struct {
	Life  int     `toml:"life"`
	Speed float64 `toml:"speed"`
}

// BannerRule is the compiled argument of the "banner" action
type BannerRule struct {
	Text string `toml:"text"`
}

var errNoCadence = errors.New("spawn needs 'every' or 'at'")

// newPhaseMachine declares the phase enum, registers the schedule actions and loads data
func newPhaseMachine(schedule string) (*fsm.Machine[*World], error) {
	m := fsm.NewMachine[*World]()
	for id, name := range phaseNames {
		m.DeclareState(id, name)
	}
	m.MarkTerminal(PhaseGameOver)

	m.RegisterAction("spawn", actionSpawn, compileSpawn)
	m.RegisterAction("boss", actionBoss, compileBoss)
	m.RegisterAction("banner", actionBanner, compileBanner)

	if err := m.LoadConfig([]byte(schedule)); err != nil {
		return nil, err
	}
	if !m.HasState(PhaseGameOver) {
		return nil, fmt.Errorf("schedule must define phase '%s'", phaseNames[PhaseGameOver])
	}
	return m, nil
}

func compileSpawn(decode fsm.DecodeFunc) (any, error) {
	r := &SpawnRule{Speed: constants.EnemyDefaultSpeed}
	if err := decode(r); err != nil {
		return nil, err
	}
	switch r.Pool {
	case "enemy", "large":
	default:
		return nil, fmt.Errorf("unknown pool '%s'", r.Pool)
	}
	v, ok := component.ParseVariant(r.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant '%s'", r.Variant)
	}
	r.variant = v
	if r.Life <= 0 {
		return nil, fmt.Errorf("spawn life must be positive, got %d", r.Life)
	}
	if r.Every < 0 || (r.Every == 0 && r.At == nil) {
		return nil, errNoCadence
	}
	return r, nil
}

func compileBoss(decode fsm.DecodeFunc) (any, error) {
	r := &BossRule{Life: constants.BossLife, Speed: constants.BossSpeed}
	if err := decode(r); err != nil {
		return nil, err
	}
	if r.Life <= 0 {
		return nil, fmt.Errorf("boss life must be positive, got %d", r.Life)
	}
	return r, nil
}

func compileBanner(decode fsm.DecodeFunc) (any, error) {
	r := &BannerRule{Text: constants.GameOverText}
	if err := decode(r); err != nil {
		return nil, err
	}
	return r, nil
}

// actionSpawn claims one slot from the rule's pool; a full pool drops the spawn
func actionSpawn(w *World, frame int, args any) {
	r := args.(*SpawnRule)
	if !r.Due(frame) {
		return
	}
	p := w.spawnPools[r.Pool]
	e, ok := p.Claim()
	if !ok {
		w.metrics.spawnsDropped.Add(1)
		w.Logger.Debug("spawn dropped, pool exhausted", zap.String("pool", r.Pool))
		return
	}

	x := w.Field.Width / 2
	if !r.Center {
		x = constants.SpawnMargin + w.Rand.Float64()*(w.Field.Width-2*constants.SpawnMargin)
	}
	e.SetEnemy(vmath.V2(x, -e.Height/2), r.Life, r.variant, r.Speed)
}

// actionBoss respawns the boss above the field whenever it is down
func actionBoss(w *World, _ int, args any) {
	r := args.(*BossRule)
	boss, ok := w.Bosses.Claim()
	if !ok {
		return
	}
	boss.SetBoss(vmath.V2(w.Field.Width/2, -boss.Height/2), r.Life, r.Speed)
	w.Logger.Debug("boss spawned", zap.Int("life", r.Life))
}

// actionBanner lowers the banner one unit per frame until the field centre
func actionBanner(w *World, frame int, args any) {
	r := args.(*BannerRule)
	w.Banner = Banner{
		Visible: true,
		Text:    r.Text,
		Y:       math.Min(float64(frame), w.Field.Height/2),
	}
}

// checkGameOver enters game over the instant the player is observed dead
func (w *World) checkGameOver() {
	if w.Player.Active() || w.Phases.Active() == PhaseGameOver {
		return
	}
	from := w.Phases.StateName(w.Phases.Active())
	w.Phases.Activate(PhaseGameOver)
	w.Logger.Info("game over", zap.String("from", from), zap.Uint64("tick", w.tick))
}

// PhaseName returns the active phase name
func (w *World) PhaseName() string {
	return w.Phases.StateName(w.Phases.Active())
}
