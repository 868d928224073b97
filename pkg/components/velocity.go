package components

// VelocityComponent 存储实体的方向/速率（单位向量语义，不含时间缩放）
// 实际位移 = 速度 × 帧间隔 × 基础速度，由移动系统计算
type VelocityComponent struct {
	X, Y float64
}

// MovableComponent 标记实体参与位置积分
type MovableComponent struct {
	// AutoDespawn 为 true 时，实体离开视口（加边距）后自动销毁（激光）
	// 玩家为 false，永远不会因越界被销毁
	AutoDespawn bool
}
