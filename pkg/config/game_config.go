package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败时返回的哨兵错误
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏玩法配置
//
// 包含视口尺寸、速度、精灵尺寸、计时等所有模拟参数。
// 默认值来自 DefaultGameConfig，YAML 文件中缺失的字段保持默认值。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// Window 视口尺寸（启动时确定，整个会话不可变）
	Window WindowConfig `yaml:"window"`

	// BaseSpeed 基础速度（单位/秒），位移 = 速度 × dt × BaseSpeed
	BaseSpeed float64 `yaml:"baseSpeed"`

	// SpriteScale 所有精灵的统一缩放
	SpriteScale float64 `yaml:"spriteScale"`

	// DespawnMargin 自动销毁实体越出视口的额外边距
	DespawnMargin float64 `yaml:"despawnMargin"`

	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Audio     AudioConfig     `yaml:"audio"`

	// Seed 随机数种子（敌机编队与开火），0 表示使用时间种子
	Seed uint64 `yaml:"seed"`
}

// WindowConfig 视口尺寸
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// Size 精灵尺寸（未缩放像素）
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家相关参数
type PlayerConfig struct {
	Size           Size    `yaml:"size"`
	LaserSize      Size    `yaml:"laserSize"`
	RespawnDelay   float64 `yaml:"respawnDelay"`   // 死亡后重生冷却（秒）
	InvincibleTime float64 `yaml:"invincibleTime"` // 出生无敌时间（秒）
	BottomPadding  float64 `yaml:"bottomPadding"`  // 出生点距底边的额外间距
	LaserYOffset   float64 `yaml:"laserYOffset"`   // 激光出生点相对玩家的Y偏移
	LaserEdgeInset float64 `yaml:"laserEdgeInset"` // 双激光相对机翼边缘的内收量
	Z              float64 `yaml:"z"`              // 绘制层级
}

// EnemyConfig 敌机相关参数
type EnemyConfig struct {
	Size                Size    `yaml:"size"`
	LaserSize           Size    `yaml:"laserSize"`
	Max                 int     `yaml:"max"`                 // 同时存在的敌机上限
	FormationMembersMax int     `yaml:"formationMembersMax"` // 每个编队模板的成员上限
	SpawnInterval       float64 `yaml:"spawnInterval"`       // 生成周期（秒）
	FireRate            float64 `yaml:"fireRate"`            // 每架敌机平均每秒开火次数
	LaserYOffset        float64 `yaml:"laserYOffset"`        // 激光出生点相对敌机的Y偏移
	Z                   float64 `yaml:"z"`
}

// ExplosionConfig 爆炸动画参数
type ExplosionConfig struct {
	FrameCount    int     `yaml:"frameCount"`    // 精灵表帧数
	FrameDuration float64 `yaml:"frameDuration"` // 每帧持续时间（秒）
	Columns       int     `yaml:"columns"`       // 精灵表列数
	CellSize      int     `yaml:"cellSize"`      // 精灵表单元格尺寸（像素）
}

// AudioConfig 音量参数
type AudioConfig struct {
	EffectVolume float64 `yaml:"effectVolume"`
	MusicVolume  float64 `yaml:"musicVolume"`
}

// DefaultGameConfig 返回默认配置（原版数值）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  598,
			Height: 676,
			Title:  "Invaders!",
		},
		BaseSpeed:     500,
		SpriteScale:   0.5,
		DespawnMargin: 200,
		Player: PlayerConfig{
			Size:           Size{Width: 144, Height: 75},
			LaserSize:      Size{Width: 9, Height: 54},
			RespawnDelay:   2,
			InvincibleTime: 1,
			BottomPadding:  5,
			LaserYOffset:   15,
			LaserEdgeInset: 5,
			Z:              10,
		},
		Enemy: EnemyConfig{
			Size:                Size{Width: 144, Height: 75},
			LaserSize:           Size{Width: 17, Height: 55},
			Max:                 3,
			FormationMembersMax: 2,
			SpawnInterval:       1,
			FireRate:            1,
			LaserYOffset:        -15,
			Z:                   10,
		},
		Explosion: ExplosionConfig{
			FrameCount:    16,
			FrameDuration: 0.05,
			Columns:       4,
			CellSize:      64,
		},
		Audio: AudioConfig{
			EffectVolume: 0.3,
			MusicVolume:  0.8,
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 从指定路径加载 YAML 格式的配置文件，文件中未出现的字段使用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从内存数据解析游戏配置（用于嵌入资源）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 所有尺寸、速度、时长必须为正；计数上限不能为负。
//
// 返回:
//   - error: 验证失败时返回包装了 ErrInvalidConfig 的错误，成功返回 nil
func (c *GameConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"baseSpeed", c.BaseSpeed},
		{"spriteScale", c.SpriteScale},
		{"player.size.width", c.Player.Size.Width},
		{"player.size.height", c.Player.Size.Height},
		{"player.laserSize.width", c.Player.LaserSize.Width},
		{"player.laserSize.height", c.Player.LaserSize.Height},
		{"player.invincibleTime", c.Player.InvincibleTime},
		{"enemy.size.width", c.Enemy.Size.Width},
		{"enemy.size.height", c.Enemy.Size.Height},
		{"enemy.laserSize.width", c.Enemy.LaserSize.Width},
		{"enemy.laserSize.height", c.Enemy.LaserSize.Height},
		{"enemy.spawnInterval", c.Enemy.SpawnInterval},
		{"explosion.frameDuration", c.Explosion.FrameDuration},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %.3f", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.DespawnMargin < 0 {
		return fmt.Errorf("%w: despawnMargin must be >= 0, got %.1f", ErrInvalidConfig, c.DespawnMargin)
	}
	if c.Player.RespawnDelay < 0 {
		return fmt.Errorf("%w: player.respawnDelay must be >= 0, got %.3f", ErrInvalidConfig, c.Player.RespawnDelay)
	}
	if c.Enemy.Max < 0 {
		return fmt.Errorf("%w: enemy.max must be >= 0, got %d", ErrInvalidConfig, c.Enemy.Max)
	}
	if c.Enemy.FormationMembersMax < 1 {
		return fmt.Errorf("%w: enemy.formationMembersMax must be >= 1, got %d", ErrInvalidConfig, c.Enemy.FormationMembersMax)
	}
	if c.Enemy.FireRate < 0 {
		return fmt.Errorf("%w: enemy.fireRate must be >= 0, got %.3f", ErrInvalidConfig, c.Enemy.FireRate)
	}
	if c.Explosion.FrameCount < 1 {
		return fmt.Errorf("%w: explosion.frameCount must be >= 1, got %d", ErrInvalidConfig, c.Explosion.FrameCount)
	}
	if c.Explosion.Columns < 1 || c.Explosion.CellSize < 1 {
		return fmt.Errorf("%w: explosion sheet layout must be positive (columns=%d, cellSize=%d)",
			ErrInvalidConfig, c.Explosion.Columns, c.Explosion.CellSize)
	}
	return nil
}

// PlayerLaserXOffset 返回双激光相对玩家中心的X偏移
// 偏移 = 玩家半宽 × 缩放 − 内收量
func (c *GameConfig) PlayerLaserXOffset() float64 {
	return c.Player.Size.Width/2*c.SpriteScale - c.Player.LaserEdgeInset
}
