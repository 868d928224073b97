package systems

import (
	"log"

	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// PlayerSpawnSystem 管理玩家的出生与重生
//
// 状态机：Dead →（从未死亡，或 now - LastDeathTime > RespawnDelay）→ Alive。
// 每帧检查一次，因此冷却结束后的第一帧即重生。
// Alive → Dead 的转换由 EnemyLaserHitPlayerSystem 驱动。
type PlayerSpawnSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewPlayerSpawnSystem 创建玩家生成系统
func NewPlayerSpawnSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerSpawnSystem {
	return &PlayerSpawnSystem{
		em: em,
		gs: gs,
	}
}

// Update 检查是否需要生成玩家
func (s *PlayerSpawnSystem) Update(deltaTime float64) {
	if !s.gs.Player.CanRespawn(s.gs.Now, s.gs.Config.Player.RespawnDelay) {
		return
	}

	if existing, ok := findPlayer(s.em); ok {
		game.Assertf(false, "player %d still alive while state says dead", existing)
		return
	}

	playerID, err := entities.NewPlayer(s.em, s.gs.Config, s.gs.WinSize.H, s.gs.Frame)
	if err != nil {
		log.Printf("[PlayerSpawnSystem] Failed to spawn player: %v", err)
		return
	}
	s.gs.Player.Spawned()

	log.Printf("[PlayerSpawnSystem] Player %d spawned at t=%.2f", playerID, s.gs.Now)
}
