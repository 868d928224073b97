package entities

import (
	"fmt"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
)

// NewPlayer 创建玩家飞船实体
// 玩家出生在视口底部中央，速度为零，带有一个新的单次无敌计时器
// 无敌计时从出生的下一帧开始，出生帧的 deltaTime 不计入无敌时间
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - winH: 视口高度
//   - frame: 出生所在的帧序号
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig, winH float64, frame uint64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	bottom := -winH / 2
	y := bottom + cfg.Player.Size.Height/2*cfg.SpriteScale + cfg.Player.BottomPadding

	entityID := em.CreateEntity()
	em.AddComponent(entityID, components.NewTransform(0, y, cfg.Player.Z, cfg.SpriteScale))
	em.AddComponent(entityID, &components.SpriteComponent{ImageID: config.ImagePlayer})
	em.AddComponent(entityID, &components.PlayerComponent{})
	em.AddComponent(entityID, &components.SpriteSizeComponent{
		Width:  cfg.Player.Size.Width,
		Height: cfg.Player.Size.Height,
	})
	em.AddComponent(entityID, &components.MovableComponent{AutoDespawn: false})
	em.AddComponent(entityID, &components.VelocityComponent{X: 0, Y: 0})
	em.AddComponent(entityID, &components.InvincibleComponent{
		Timer: components.NewTimerAt(cfg.Player.InvincibleTime, components.TimerOnce, frame),
	})

	return entityID, nil
}
