package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
)

// InvincibilitySystem 推进所有无敌计时器，到期后移除无敌标记
//
// 碰撞系统也会在同一帧 Tick 玩家的无敌计时器；
// Timer 以帧令牌去重，所以无论两者谁先运行，计时器每帧只前进一次。
type InvincibilitySystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewInvincibilitySystem 创建无敌计时系统
func NewInvincibilitySystem(em *ecs.EntityManager, gs *game.GameState) *InvincibilitySystem {
	return &InvincibilitySystem{
		em: em,
		gs: gs,
	}
}

// Update 推进无敌计时器
func (s *InvincibilitySystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.InvincibleComponent](s.em) {
		if s.em.IsCondemned(id) {
			continue
		}
		inv, ok := ecs.GetComponent[*components.InvincibleComponent](s.em, id)
		if !ok {
			continue
		}
		inv.Timer.Tick(s.gs.Frame, deltaTime)
		if inv.Timer.Finished() {
			ecs.RemoveComponent[*components.InvincibleComponent](s.em, id)
		}
	}
}
