package entities

import (
	"fmt"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

// NewEnemy 创建敌机实体
// 敌机出生在编队起点（通常在屏幕外），随后由编队移动系统驱动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - formation: 编队轨迹（由 FormationMaker 生成，复制后挂载）
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID
//   - error: 参数无效时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, formation components.FormationComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, components.NewTransform(formation.StartX, formation.StartY, cfg.Enemy.Z, cfg.SpriteScale))
	em.AddComponent(entityID, &components.SpriteComponent{ImageID: config.ImageEnemy})
	em.AddComponent(entityID, &components.EnemyComponent{})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  cfg.Enemy.Size.Width,
		Height: cfg.Enemy.Size.Height,
	})
	em.AddComponent(entityID, &formation)

	return entityID, nil
}
