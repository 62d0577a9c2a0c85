package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/viper/component"
	"github.com/lixenwraith/viper/effect"
	"github.com/lixenwraith/viper/input"
	"github.com/lixenwraith/viper/render"
)

// Step advances the simulation one tick
// Order: background, phase, game over check, player, player shots, enemies,
// boss, large enemies, enemy shots, explosions, homing shots
// Returns the phase machine's error, which is fatal
func (w *World) Step(in input.Snapshot) error {
	w.Stars.Update()

	before := w.Phases.Active()
	if err := w.Phases.Update(w); err != nil {
		return err
	}
	if after := w.Phases.Active(); after != before {
		w.Logger.Info("phase",
			zap.String("from", w.Phases.StateName(before)),
			zap.String("to", w.Phases.StateName(after)),
			zap.Uint64("tick", w.tick))
	}
	w.checkGameOver()

	w.updatePlayer(in)
	w.PlayerShots.EachActive(w.updateShot)
	w.Enemies.EachActive(w.updateEnemy)
	w.Bosses.EachActive(w.updateBoss)
	w.Large.EachActive(w.updateEnemy)
	w.EnemyShots.EachActive(w.updateShot)

	now := w.Clock.Now()
	w.Explosions.EachActive(func(x *effect.Explosion) { x.Update(now) })

	w.Homing.EachActive(w.updateHoming)

	w.tick++
	return nil
}

// Draw emits one sprite per star, active entity, spark and the banner, in update order
func (w *World) Draw(c render.Canvas) {
	for _, s := range w.Stars.Stars {
		c.Draw(render.Sprite{
			Layer:   render.LayerBackground,
			Kind:    render.KindStar,
			X:       s.Pos.X,
			Y:       s.Pos.Y,
			W:       s.Size,
			H:       s.Size,
			Opacity: 1,
		})
	}

	drawEntity := func(e *component.Entity) { c.Draw(entitySprite(e)) }
	if w.Player.Active() {
		drawEntity(w.Player)
	}
	w.PlayerShots.EachActive(drawEntity)
	w.Enemies.EachActive(drawEntity)
	w.Bosses.EachActive(drawEntity)
	w.Large.EachActive(drawEntity)
	w.EnemyShots.EachActive(drawEntity)

	w.Explosions.EachActive(func(x *effect.Explosion) {
		for _, sp := range x.Sparks() {
			c.Draw(render.Sprite{
				Layer:   render.LayerEffect,
				Kind:    render.KindSpark,
				X:       sp.Pos.X,
				Y:       sp.Pos.Y,
				W:       sp.Size,
				H:       sp.Size,
				Opacity: 0.5,
			})
		}
	})

	w.Homing.EachActive(drawEntity)

	if w.Banner.Visible {
		c.Draw(render.Sprite{
			Layer:   render.LayerOverlay,
			Kind:    render.KindBanner,
			X:       w.Field.Width / 2,
			Y:       w.Banner.Y,
			W:       w.Field.Width / 2,
			Opacity: 1,
			Text:    w.Banner.Text,
		})
	}
}

func entitySprite(e *component.Entity) render.Sprite {
	return render.Sprite{
		Layer:   render.LayerEntity,
		Kind:    e.Kind.String(),
		X:       e.Pos.X,
		Y:       e.Pos.Y,
		W:       e.Width,
		H:       e.Height,
		Angle:   e.Angle,
		Opacity: e.Opacity,
	}
}
