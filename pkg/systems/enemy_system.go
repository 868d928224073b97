package systems

import (
	"log"
	"math"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// EnemySpawnSystem 按固定周期生成敌机，并保持同时存在的敌机数不超过上限
type EnemySpawnSystem struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	timer components.Timer
	maker *FormationMaker
}

// NewEnemySpawnSystem 创建敌机生成系统
func NewEnemySpawnSystem(em *ecs.EntityManager, gs *game.GameState) *EnemySpawnSystem {
	cfg := gs.Config
	return &EnemySpawnSystem{
		em:    em,
		gs:    gs,
		timer: components.NewTimer(cfg.Enemy.SpawnInterval, components.TimerRepeating),
		maker: NewFormationMaker(cfg.Enemy.FormationMembersMax, cfg.BaseSpeed),
	}
}

// Update 每个生成周期最多生成一架敌机
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	if s.timer.Tick(s.gs.Frame, deltaTime) == 0 {
		return
	}
	if s.gs.EnemyCount >= s.gs.Config.Enemy.Max {
		return
	}

	formation := s.maker.Make(s.gs.WinSize, s.gs.Rand)
	enemyID, err := entities.NewEnemy(s.em, s.gs.Config, formation)
	if err != nil {
		log.Printf("[EnemySpawnSystem] Failed to spawn enemy: %v", err)
		return
	}
	s.gs.IncrementEnemyCount()

	log.Printf("[EnemySpawnSystem] Enemy %d spawned at (%.0f, %.0f), count=%d",
		enemyID, formation.StartX, formation.StartY, s.gs.EnemyCount)
}

// EnemyMovementSystem 驱动敌机沿编队椭圆飞行
//
// 敌机每帧朝椭圆上的下一个目标点移动 Speed×dt 的距离；
// 只有贴近轨道后才推进轨道角，因此屏幕外的敌机会先直线飞入。
type EnemyMovementSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewEnemyMovementSystem 创建敌机移动系统
func NewEnemyMovementSystem(em *ecs.EntityManager, gs *game.GameState) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		em: em,
		gs: gs,
	}
}

// Update 推进所有编队敌机
func (s *EnemyMovementSystem) Update(deltaTime float64) {
	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.TransformComponent,
		*components.FormationComponent,
	](s.em)

	for _, id := range enemies {
		if s.em.IsCondemned(id) {
			continue
		}
		tf, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		f, _ := ecs.GetComponent[*components.FormationComponent](s.em, id)
		stepFormation(tf, f, deltaTime)
	}
}

// stepFormation 让实体沿编队轨迹前进一步
func stepFormation(tf *components.TransformComponent, f *components.FormationComponent, dt float64) {
	maxDistance := dt * f.Speed

	// 从左侧进入的编队逆时针旋转，右侧进入的顺时针旋转
	dir := -1.0
	if f.StartX < 0 {
		dir = 1.0
	}

	angle := f.Angle + dir*f.Speed*dt/(math.Min(f.RadiusX, f.RadiusY)*math.Pi/2)

	xDst := f.RadiusX*math.Cos(angle) + f.PivotX
	yDst := f.RadiusY*math.Sin(angle) + f.PivotY

	dx := tf.X - xDst
	dy := tf.Y - yDst
	distance := math.Hypot(dx, dy)
	ratio := 0.0
	if distance != 0 {
		ratio = maxDistance / distance
	}

	x := tf.X - dx*ratio
	if dx > 0 {
		x = math.Max(x, xDst)
	} else {
		x = math.Min(x, xDst)
	}
	y := tf.Y - dy*ratio
	if dy > 0 {
		y = math.Max(y, yDst)
	} else {
		y = math.Min(y, yDst)
	}

	// 贴近轨道后才开始旋转
	if distance < maxDistance*f.Speed/20 {
		f.Angle = angle
	}

	tf.X, tf.Y = x, y
}

// EnemyFireSystem 让敌机随机齐射
// 每帧以 1 - exp(-FireRate·dt) 的概率触发一次齐射，所有敌机同时开火，
// 触发频率与帧率无关
type EnemyFireSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewEnemyFireSystem 创建敌机开火系统
func NewEnemyFireSystem(em *ecs.EntityManager, gs *game.GameState) *EnemyFireSystem {
	return &EnemyFireSystem{
		em: em,
		gs: gs,
	}
}

// Update 判断本帧是否齐射
func (s *EnemyFireSystem) Update(deltaTime float64) {
	cfg := s.gs.Config
	if cfg.Enemy.FireRate <= 0 || deltaTime <= 0 {
		return
	}
	chance := 1 - math.Exp(-cfg.Enemy.FireRate*deltaTime)
	if s.gs.Rand.Float64() >= chance {
		return
	}

	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.TransformComponent](s.em)
	for _, id := range enemies {
		if s.em.IsCondemned(id) {
			continue
		}
		tf, _ := ecs.GetComponent[*components.TransformComponent](s.em, id)
		entities.NewEnemyLaser(s.em, cfg, tf.X, tf.Y+cfg.Enemy.LaserYOffset)
	}
}
