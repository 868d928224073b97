package components

// InvincibleComponent 玩家出生后的短暂无敌状态
// 持有一个单次计时器（默认 1 秒），到期后由无敌系统或碰撞系统移除
type InvincibleComponent struct {
	Timer Timer
}
