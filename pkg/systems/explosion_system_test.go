package systems

import (
	"testing"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
)

func TestExplosionSpawnSystem(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	sys := NewExplosionSpawnSystem(em, gs)

	req := entities.NewExplosionRequest(em, 12, -34, 10)

	gs.BeginFrame(1.0 / 60)
	sys.Update(1.0 / 60)

	if !em.IsCondemned(req) {
		t.Error("request should be consumed")
	}

	explosions := ecs.FilterLive(em, ecs.GetEntitiesWith1[*components.ExplosionComponent](em))
	if len(explosions) != 1 {
		t.Fatalf("expected one explosion, got %d", len(explosions))
	}
	tf := transformOf(t, em, explosions[0])
	if tf.X != 12 || tf.Y != -34 || tf.Z != 10 {
		t.Errorf("explosion at wrong position: %+v", tf)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, explosions[0])
	if sprite.ImageID != config.ImageExplosion || sprite.FrameIndex != 0 {
		t.Errorf("explosion should start at frame 0, got %+v", sprite)
	}

	// 再运行一次不会重复生成
	em.RemoveMarkedEntities()
	gs.BeginFrame(1.0 / 60)
	sys.Update(1.0 / 60)
	if n := len(ecs.GetEntitiesWith1[*components.ExplosionComponent](em)); n != 1 {
		t.Errorf("request should spawn exactly once, got %d explosions", n)
	}
}

func TestExplosionAnimation_Lifetime(t *testing.T) {
	tests := []struct {
		name          string
		frameDuration float64
		dt            float64
	}{
		// 16 帧 × 0.25s = 4s
		{"two ticks per sheet frame", 0.25, 0.125},
		{"one tick per sheet frame", 0.25, 0.25},
		{"several sheet frames per tick", 0.125, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, gs, _ := newTestWorld(t)
			gs.Config.Explosion.FrameDuration = tt.frameDuration
			sys := NewExplosionAnimationSystem(em, gs)

			id := entities.NewExplosion(em, gs.Config, 0, 0, 10)
			total := float64(gs.Config.Explosion.FrameCount) * tt.frameDuration
			frames := int(total / tt.dt)

			for i := 1; i < frames; i++ {
				gs.BeginFrame(tt.dt)
				sys.Update(tt.dt)
				if em.IsCondemned(id) {
					t.Fatalf("explosion destroyed early at t=%f", gs.Now)
				}
			}

			gs.BeginFrame(tt.dt)
			sys.Update(tt.dt)
			if !em.IsCondemned(id) {
				t.Fatalf("explosion should be destroyed at t=%f", gs.Now)
			}

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
			if sprite.FrameIndex != gs.Config.Explosion.FrameCount-1 {
				t.Errorf("frame index should stay on the last sheet frame, got %d", sprite.FrameIndex)
			}
		})
	}
}

func TestExplosionAnimation_FrameAdvance(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	gs.Config.Explosion.FrameDuration = 0.25
	sys := NewExplosionAnimationSystem(em, gs)
	id := entities.NewExplosion(em, gs.Config, 0, 0, 10)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

	expected := []int{0, 1, 1, 2}
	for i, want := range expected {
		gs.BeginFrame(0.125)
		sys.Update(0.125)
		if sprite.FrameIndex != want {
			t.Errorf("tick %d: frame index = %d, want %d", i+1, sprite.FrameIndex, want)
		}
	}
}
