package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
)

// findPlayer 返回唯一存活的玩家实体
// 没有玩家时返回 false（重生等待期间的正常情况，调用方本帧跳过）；
// 存在多个玩家属于程序不变量被破坏，记录断言后使用 ID 最小的那个
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	players := ecs.FilterLive(em, ecs.GetEntitiesWith1[*components.PlayerComponent](em))
	if len(players) == 0 {
		return 0, false
	}
	game.Assertf(len(players) == 1, "expected a single player entity, found %d", len(players))
	return players[0], true
}
