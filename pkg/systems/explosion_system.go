package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// ExplosionSpawnSystem 消费爆炸生成请求
// 每个请求替换为一个从第 0 帧开始的爆炸实体，请求本身被销毁
type ExplosionSpawnSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewExplosionSpawnSystem 创建爆炸生成系统
func NewExplosionSpawnSystem(em *ecs.EntityManager, gs *game.GameState) *ExplosionSpawnSystem {
	return &ExplosionSpawnSystem{
		em: em,
		gs: gs,
	}
}

// Update 处理所有待生成的爆炸
func (s *ExplosionSpawnSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionToSpawnComponent](s.em) {
		if s.em.IsCondemned(id) {
			continue
		}
		req, _ := ecs.GetComponent[*components.ExplosionToSpawnComponent](s.em, id)

		entities.NewExplosion(s.em, s.gs.Config, req.X, req.Y, req.Z)
		s.em.DestroyEntity(id)
	}
}

// ExplosionAnimationSystem 推进爆炸动画帧
// 每完成一个帧周期帧索引加一，索引到达精灵表长度时销毁实体
type ExplosionAnimationSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewExplosionAnimationSystem 创建爆炸动画系统
func NewExplosionAnimationSystem(em *ecs.EntityManager, gs *game.GameState) *ExplosionAnimationSystem {
	return &ExplosionAnimationSystem{
		em: em,
		gs: gs,
	}
}

// Update 推进所有爆炸动画
func (s *ExplosionAnimationSystem) Update(deltaTime float64) {
	frameCount := s.gs.Config.Explosion.FrameCount

	explosions := ecs.GetEntitiesWith3[
		*components.ExplosionComponent,
		*components.ExplosionTimerComponent,
		*components.SpriteComponent,
	](s.em)

	for _, id := range explosions {
		if s.em.IsCondemned(id) {
			continue
		}
		timer, _ := ecs.GetComponent[*components.ExplosionTimerComponent](s.em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)

		completed := timer.Timer.Tick(s.gs.Frame, deltaTime)
		if completed == 0 {
			continue
		}

		sprite.FrameIndex += completed
		if sprite.FrameIndex >= frameCount {
			sprite.FrameIndex = frameCount - 1
			s.em.DestroyEntity(id)
		}
	}
}
