package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// PlayerLaserHitEnemySystem 处理玩家激光与敌机的碰撞
//
// 每一对（激光, 敌机）只在双方都未判死时检测；命中后双方立即判死，
// 因此一束激光在一帧内最多击毁一架敌机（按 ID 升序遍历，先到先得）。
type PlayerLaserHitEnemySystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewPlayerLaserHitEnemySystem 创建玩家激光碰撞系统
func NewPlayerLaserHitEnemySystem(em *ecs.EntityManager, gs *game.GameState) *PlayerLaserHitEnemySystem {
	return &PlayerLaserHitEnemySystem{
		em: em,
		gs: gs,
	}
}

// Update 检测所有玩家激光与敌机的碰撞
//
// 参数:
//   - deltaTime: 本系统不使用
func (s *PlayerLaserHitEnemySystem) Update(deltaTime float64) {
	lasers := ecs.GetEntitiesWith4[
		*components.LaserComponent,
		*components.FromPlayerComponent,
		*components.TransformComponent,
		*components.SpriteSizeComponent,
	](s.em)
	if len(lasers) == 0 {
		return
	}

	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.TransformComponent,
		*components.SpriteSizeComponent,
	](s.em)

	for _, laserID := range lasers {
		if s.em.IsCondemned(laserID) {
			continue
		}
		laserTf, _ := ecs.GetComponent[*components.TransformComponent](s.em, laserID)
		laserSize, _ := ecs.GetComponent[*components.SpriteSizeComponent](s.em, laserID)

		for _, enemyID := range enemies {
			if s.em.IsCondemned(enemyID) {
				continue
			}
			enemyTf, _ := ecs.GetComponent[*components.TransformComponent](s.em, enemyID)
			enemySize, _ := ecs.GetComponent[*components.SpriteSizeComponent](s.em, enemyID)

			if !CheckAABBCollision(laserTf, laserSize, enemyTf, enemySize) {
				continue
			}

			// 命中：敌机与激光同时判死
			s.em.DestroyEntity(enemyID)
			s.em.DestroyEntity(laserID)
			if s.gs.DecrementEnemyCount() {
				s.gs.Kills++
			}

			entities.NewExplosionRequest(s.em, enemyTf.X, enemyTf.Y, enemyTf.Z)
			s.gs.PlayEffect(config.SoundExplosion)

			// 激光已消耗，不再匹配其他敌机
			break
		}
	}
}

// EnemyLaserHitPlayerSystem 处理敌机激光与玩家的碰撞
//
// 玩家处于无敌状态时先推进无敌计时器：仍有效则本帧跳过碰撞；
// 恰好到期则移除无敌标记并在同一帧继续检测。
type EnemyLaserHitPlayerSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewEnemyLaserHitPlayerSystem 创建敌机激光碰撞系统
func NewEnemyLaserHitPlayerSystem(em *ecs.EntityManager, gs *game.GameState) *EnemyLaserHitPlayerSystem {
	return &EnemyLaserHitPlayerSystem{
		em: em,
		gs: gs,
	}
}

// Update 检测敌机激光与玩家的碰撞
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），用于推进无敌计时器
func (s *EnemyLaserHitPlayerSystem) Update(deltaTime float64) {
	playerID, ok := findPlayer(s.em)
	if !ok {
		return
	}

	// 无敌计时器以帧令牌推进，与无敌系统在同一帧内的 Tick 不会重复累计
	if inv, ok := ecs.GetComponent[*components.InvincibleComponent](s.em, playerID); ok {
		inv.Timer.Tick(s.gs.Frame, deltaTime)
		if !inv.Timer.Finished() {
			return
		}
		ecs.RemoveComponent[*components.InvincibleComponent](s.em, playerID)
	}

	playerTf, ok := ecs.GetComponent[*components.TransformComponent](s.em, playerID)
	if !ok {
		return
	}
	playerSize, ok := ecs.GetComponent[*components.SpriteSizeComponent](s.em, playerID)
	if !ok {
		return
	}

	lasers := ecs.GetEntitiesWith4[
		*components.LaserComponent,
		*components.FromEnemyComponent,
		*components.TransformComponent,
		*components.SpriteSizeComponent,
	](s.em)

	for _, laserID := range lasers {
		if s.em.IsCondemned(laserID) {
			continue
		}
		laserTf, _ := ecs.GetComponent[*components.TransformComponent](s.em, laserID)
		laserSize, _ := ecs.GetComponent[*components.SpriteSizeComponent](s.em, laserID)

		if !CheckAABBCollision(laserTf, laserSize, playerTf, playerSize) {
			continue
		}

		s.em.DestroyEntity(playerID)
		s.em.DestroyEntity(laserID)
		s.gs.Player.Killed(s.gs.Now)
		s.gs.Deaths++

		entities.NewExplosionRequest(s.em, playerTf.X, playerTf.Y, playerTf.Z)
		s.gs.PlayEffect(config.SoundExplosion)

		log.Printf("[EnemyLaserHitPlayerSystem] Player %d destroyed by laser %d at t=%.2f", playerID, laserID, s.gs.Now)

		// 先命中者生效，本帧不再检测其他激光
		break
	}
}
