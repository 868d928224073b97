package components

// 标签组件
// 彼此正交的能力标记，一个实体可以同时拥有多个标签。
// 唯一的互斥约定：激光总是恰好拥有 FromPlayer / FromEnemy 其中之一。

// PlayerComponent 标记玩家飞船
type PlayerComponent struct{}

// EnemyComponent 标记敌机
type EnemyComponent struct{}

// LaserComponent 标记激光
type LaserComponent struct{}

// FromPlayerComponent 标记由玩家发射的实体
type FromPlayerComponent struct{}

// FromEnemyComponent 标记由敌机发射的实体
type FromEnemyComponent struct{}

// ExplosionComponent 标记正在播放的爆炸动画
type ExplosionComponent struct{}
