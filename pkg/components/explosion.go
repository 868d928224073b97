package components

// ExplosionToSpawnComponent 一次性的爆炸生成请求
// 由碰撞系统创建，在同一帧（或下一帧）被爆炸生成系统消费并销毁
type ExplosionToSpawnComponent struct {
	X, Y, Z float64
}

// ExplosionTimerComponent 爆炸动画的帧间隔计时器（循环）
// 每完成一个周期，SpriteComponent.FrameIndex 加一
type ExplosionTimerComponent struct {
	Timer Timer
}
