package game

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/gonewx/invaders/pkg/config"
)

// WinSize 视口尺寸，启动时确定，整个会话不可变
type WinSize struct {
	W, H float64
}

// GameState 存储一局游戏的模拟上下文
//
// 所有跨系统共享的状态（玩家状态、敌机计数、帧时钟）都集中在这里，
// 由场景显式传给每个系统，而不是作为进程级全局变量。
// 字段的修改归属：
//   - Player: 玩家生成系统（生成）与敌方激光碰撞系统（死亡）
//   - EnemyCount: 敌机生成系统（+1）与玩家激光碰撞系统（-1）
//   - Frame/Now/Delta: 仅 BeginFrame
type GameState struct {
	Config  *config.GameConfig
	WinSize WinSize

	Player     PlayerState
	EnemyCount int

	// 统计（HUD 显示）
	Kills  int
	Deaths int

	// 帧时钟
	Frame uint64  // 帧序号，同时作为计时器的帧令牌
	Now   float64 // 模拟时间（秒），只在 Playing 模式下推进
	Delta float64 // 本帧时长（秒）

	Input InputState
	Audio SoundPlayer
	Rand  *rand.Rand
}

// NewGameState 创建模拟上下文
//
// 参数:
//   - cfg: 玩法配置（不可为 nil）
//   - audio: 音效接收端，可为 nil（静音）
//
// 返回:
//   - *GameState: 新的模拟上下文
func NewGameState(cfg *config.GameConfig, audio SoundPlayer) *GameState {
	if audio == nil {
		audio = NopSoundPlayer{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[GameState] New session: viewport %.0fx%.0f, seed %d", cfg.Window.Width, cfg.Window.Height, seed)

	return &GameState{
		Config:  cfg,
		WinSize: WinSize{W: cfg.Window.Width, H: cfg.Window.Height},
		Player:  NewPlayerState(),
		Audio:   audio,
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// BeginFrame 推进帧时钟
// 每帧在任何系统运行前调用一次
func (gs *GameState) BeginFrame(dt float64) {
	gs.Frame++
	gs.Delta = dt
	gs.Now += dt
}

// IncrementEnemyCount 敌机生成时调用
func (gs *GameState) IncrementEnemyCount() {
	gs.EnemyCount++
}

// DecrementEnemyCount 敌机被确认销毁时调用
// 计数不会低于零；出现下溢说明销毁与计数没有配对，按断言失败处理
//
// 返回:
//   - bool: 是否成功递减
func (gs *GameState) DecrementEnemyCount() bool {
	if gs.EnemyCount <= 0 {
		Assertf(false, "enemy count underflow (count=%d)", gs.EnemyCount)
		gs.EnemyCount = 0
		return false
	}
	gs.EnemyCount--
	return true
}

// PlayEffect 以配置的音效音量单次播放音效
func (gs *GameState) PlayEffect(soundID string) {
	gs.Audio.PlaySound(SoundCue{
		ID:     soundID,
		Volume: gs.Config.Audio.EffectVolume,
		Loop:   false,
	})
}
