package systems

import (
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
)

// System 每帧更新一次的系统
type System interface {
	Update(deltaTime float64)
}

// Pipeline 按固定顺序运行所有模拟系统，并在帧末执行销毁屏障
//
// 顺序（数据单向流动）：
//
//	输入 → 玩家控制 → 敌机控制 → 移动积分 → 碰撞 → 爆炸/无敌计时 → 屏障
//
// 所有系统在同一个 goroutine 中依次运行，共享状态不需要加锁。
type Pipeline struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	systems []System
}

// NewPipeline 创建完整的模拟管线
func NewPipeline(em *ecs.EntityManager, gs *game.GameState) *Pipeline {
	return &Pipeline{
		em: em,
		gs: gs,
		systems: []System{
			NewPlayerSpawnSystem(em, gs),         // 1. 玩家出生/重生
			NewPlayerSteerSystem(em, gs),         // 2. 左右转向
			NewPlayerFireSystem(em, gs),          // 3. 开火
			NewEnemySpawnSystem(em, gs),          // 4. 敌机生成
			NewEnemyMovementSystem(em, gs),       // 5. 编队飞行
			NewEnemyFireSystem(em, gs),           // 6. 敌机齐射
			NewMovementSystem(em, gs),            // 7. 位置积分与越界销毁
			NewPlayerLaserHitEnemySystem(em, gs), // 8. 玩家激光 vs 敌机
			NewEnemyLaserHitPlayerSystem(em, gs), // 9. 敌机激光 vs 玩家
			NewExplosionAnimationSystem(em, gs),  // 10. 爆炸动画（新爆炸从下一帧开始计时）
			NewExplosionSpawnSystem(em, gs),      // 11. 消费爆炸请求
			NewInvincibilitySystem(em, gs),       // 12. 无敌计时
		},
	}
}

// Step 推进一帧
//
// 参数:
//   - deltaTime: 本帧时长（秒）
//   - input: 本帧输入状态
//
// 返回:
//   - int: 帧末屏障实际删除的实体数量
func (p *Pipeline) Step(deltaTime float64, input game.InputState) int {
	p.gs.BeginFrame(deltaTime)
	p.gs.Input = input

	for _, s := range p.systems {
		s.Update(deltaTime)
	}

	return p.em.RemoveMarkedEntities() // 永远最后执行
}

// EntityManager 返回管线使用的实体管理器
func (p *Pipeline) EntityManager() *ecs.EntityManager {
	return p.em
}

// GameState 返回管线使用的模拟上下文
func (p *Pipeline) GameState() *game.GameState {
	return p.gs
}
