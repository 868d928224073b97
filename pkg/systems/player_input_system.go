package systems

import (
	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// PlayerSteerSystem 根据左右输入设置玩家的水平速度
//
// 到达视口边界（|x| >= 半宽）时对应方向的速度清零。
// 靠近边界时速度会按剩余距离缩小，保证一步积分不会越过边界；
// 位置本身从不被直接钳制。
type PlayerSteerSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewPlayerSteerSystem 创建玩家转向系统
func NewPlayerSteerSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerSteerSystem {
	return &PlayerSteerSystem{
		em: em,
		gs: gs,
	}
}

// Update 读取本帧输入并写入玩家速度
//
// 参数:
//   - deltaTime: 本帧时长（秒），用于计算一步的最大位移
func (s *PlayerSteerSystem) Update(deltaTime float64) {
	playerID, ok := findPlayer(s.em)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.em, playerID)
	if !ok {
		return
	}
	velocity, ok := ecs.GetComponent[*components.VelocityComponent](s.em, playerID)
	if !ok {
		return
	}

	halfW := s.gs.WinSize.W / 2
	step := deltaTime * s.gs.Config.BaseSpeed
	input := s.gs.Input

	switch {
	case input.Left:
		if transform.X <= -halfW {
			velocity.X = 0
		} else {
			velocity.X = -limitStep(transform.X+halfW, step)
		}
	case input.Right:
		if transform.X >= halfW {
			velocity.X = 0
		} else {
			velocity.X = limitStep(halfW-transform.X, step)
		}
	default:
		velocity.X = 0
	}
}

// limitStep 返回不越过边界的速度倍率（0~1]
// room 为到边界的剩余距离，step 为满速一步的位移
func limitStep(room, step float64) float64 {
	if step <= 0 || room >= step {
		return 1
	}
	return room / step
}

// PlayerFireSystem 处理玩家开火
// 每次开火键按下（边沿触发）在玩家两侧对称生成两束激光，按住不会连发
type PlayerFireSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewPlayerFireSystem 创建玩家开火系统
func NewPlayerFireSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerFireSystem {
	return &PlayerFireSystem{
		em: em,
		gs: gs,
	}
}

// Update 检查开火输入
func (s *PlayerFireSystem) Update(deltaTime float64) {
	if !s.gs.Input.FireJustPressed {
		return
	}
	playerID, ok := findPlayer(s.em)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.em, playerID)
	if !ok {
		return
	}

	cfg := s.gs.Config
	xOffset := cfg.PlayerLaserXOffset()
	y := transform.Y + cfg.Player.LaserYOffset

	entities.NewPlayerLaser(s.em, cfg, transform.X+xOffset, y)
	entities.NewPlayerLaser(s.em, cfg, transform.X-xOffset, y)

	s.gs.PlayEffect(config.SoundFire)
}
