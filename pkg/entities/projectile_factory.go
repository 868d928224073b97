package entities

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

// NewPlayerLaser 创建玩家激光实体
// 激光以单位速度向上飞行，越出视口边距后自动销毁
func NewPlayerLaser(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, components.NewTransform(x, y, 0, cfg.SpriteScale))
	em.AddComponent(entityID, &components.SpriteComponent{ImageID: config.ImagePlayerLaser})
	em.AddComponent(entityID, &components.LaserComponent{})
	em.AddComponent(entityID, &components.FromPlayerComponent{})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  cfg.Player.LaserSize.Width,
		Height: cfg.Player.LaserSize.Height,
	})
	em.AddComponent(entityID, &components.MovableComponent{AutoDespawn: true})
	em.AddComponent(entityID, &components.VelocityComponent{X: 0, Y: 1})
	return entityID
}

// NewEnemyLaser 创建敌机激光实体（向下飞行）
func NewEnemyLaser(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, components.NewTransform(x, y, 0, cfg.SpriteScale))
	em.AddComponent(entityID, &components.SpriteComponent{ImageID: config.ImageEnemyLaser})
	em.AddComponent(entityID, &components.LaserComponent{})
	em.AddComponent(entityID, &components.FromEnemyComponent{})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  cfg.Enemy.LaserSize.Width,
		Height: cfg.Enemy.LaserSize.Height,
	})
	em.AddComponent(entityID, &components.MovableComponent{AutoDespawn: true})
	em.AddComponent(entityID, &components.VelocityComponent{X: 0, Y: -1})
	return entityID
}
