package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
)

// MovementSystem 积分所有可移动实体的位置
// 位移 = 速度 × deltaTime × BaseSpeed，与帧率无关
// AutoDespawn 的实体越出视口（加边距）后被请求销毁
type MovementSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState) *MovementSystem {
	return &MovementSystem{
		em: em,
		gs: gs,
	}
}

// Update 更新所有拥有 Velocity + Transform + Movable 的实体
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *MovementSystem) Update(deltaTime float64) {
	speed := s.gs.Config.BaseSpeed
	margin := s.gs.Config.DespawnMargin
	halfW, halfH := s.gs.WinSize.W/2, s.gs.WinSize.H/2

	entities := ecs.GetEntitiesWith3[
		*components.VelocityComponent,
		*components.TransformComponent,
		*components.MovableComponent,
	](s.em)

	for _, id := range entities {
		if s.em.IsCondemned(id) {
			continue
		}

		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.em, id)

		transform.X += velocity.X * deltaTime * speed
		transform.Y += velocity.Y * deltaTime * speed

		if !movable.AutoDespawn {
			continue
		}

		// 越出视口 + 边距即销毁
		if transform.Y > halfH+margin ||
			transform.Y < -halfH-margin ||
			transform.X > halfW+margin ||
			transform.X < -halfW-margin {
			s.em.DestroyEntity(id)
		}
	}
}
