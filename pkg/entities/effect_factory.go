package entities

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

// NewExplosionRequest 创建一次性的爆炸生成请求
// 请求实体只携带目标位置，由爆炸生成系统消费
func NewExplosionRequest(em *ecs.EntityManager, x, y, z float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.ExplosionToSpawnComponent{X: x, Y: y, Z: z})
	return entityID
}

// NewExplosion 创建爆炸动画实体
// 从精灵表第 0 帧开始，每 FrameDuration 秒前进一帧
func NewExplosion(em *ecs.EntityManager, cfg *config.GameConfig, x, y, z float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, components.NewTransform(x, y, z, 1))
	em.AddComponent(entityID, &components.SpriteComponent{ImageID: config.ImageExplosion, FrameIndex: 0})
	em.AddComponent(entityID, &components.ExplosionComponent{})
	em.AddComponent(entityID, &components.ExplosionTimerComponent{
		Timer: components.NewTimer(cfg.Explosion.FrameDuration, components.TimerRepeating),
	})
	return entityID
}
