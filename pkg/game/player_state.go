package game

// PlayerState 玩家槽位的生死状态
// LastDeathTime 为 -1 表示从未死亡（首次出生无需等待冷却）
type PlayerState struct {
	Alive         bool
	LastDeathTime float64
}

// NewPlayerState 返回初始状态：未出生、从未死亡
func NewPlayerState() PlayerState {
	return PlayerState{Alive: false, LastDeathTime: -1}
}

// Killed 记录玩家在 now 时刻死亡
func (ps *PlayerState) Killed(now float64) {
	ps.Alive = false
	ps.LastDeathTime = now
}

// Spawned 记录玩家已出生
func (ps *PlayerState) Spawned() {
	ps.Alive = true
	ps.LastDeathTime = -1
}

// CanRespawn 判断 now 时刻是否可以重生
// 条件：当前未存活，且从未死亡或距离上次死亡已超过 delay
func (ps *PlayerState) CanRespawn(now, delay float64) bool {
	if ps.Alive {
		return false
	}
	return ps.LastDeathTime == -1 || now-ps.LastDeathTime > delay
}
