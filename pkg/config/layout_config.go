package config

// 资源ID常量
// 与 assets/config/resources.yaml 中的 id 一一对应。
// 模拟核心只把这些ID存进组件，从不解析；渲染端和音频端据此取资源。
const (
	ImagePlayer       = "IMAGE_PLAYER"
	ImagePlayerDimmed = "IMAGE_PLAYER_DIMMED" // 无敌期间的暗色贴图
	ImagePlayerLaser  = "IMAGE_PLAYER_LASER"
	ImageEnemy        = "IMAGE_ENEMY"
	ImageEnemyLaser   = "IMAGE_ENEMY_LASER"
	ImageExplosion    = "IMAGE_EXPLOSION" // 4x4 精灵表

	SoundFire      = "SOUND_PEW"
	SoundExplosion = "SOUND_BOOM"
	SoundGameOver  = "SOUND_GAMEOVER"
	MusicGameplay  = "MUSIC_LASAGNA"
)

// 默认资源路径
const (
	// GameConfigPath 玩法配置（嵌入资源）
	GameConfigPath = "data/game.yaml"

	// ResourceConfigPath 资源清单（嵌入资源）
	ResourceConfigPath = "assets/config/resources.yaml"
)

// GetViewportBounds 返回视口的半宽、半高
// 坐标原点在视口中心
func (c *GameConfig) GetViewportBounds() (halfW, halfH float64) {
	return c.Window.Width / 2, c.Window.Height / 2
}
