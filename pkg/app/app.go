// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/invaders/pkg/assets"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/embedded"
	"github.com/gonewx/invaders/pkg/input"
	"github.com/gonewx/invaders/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// GameConfigPath 外部玩法配置文件，为空则使用嵌入的 data/game.yaml
	GameConfigPath string
	// Seed 随机种子，非零时覆盖配置文件中的值
	Seed uint64
	// Mute 关闭所有声音
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg                      *config.GameConfig
	sceneManager             *scenes.SceneManager
	audioManager             *assets.AudioManager
	windowSizeResetCountdown int
}

const windowResetDelayFrames = 3

// LoadConfig 加载玩法配置
// path 为空时读取嵌入资源中的默认配置
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(config.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		gameConfig.Seed = cfg.Seed
	}
	log.Printf("[Config] 视口 %.0fx%.0f, 基础速度 %.0f", gameConfig.Window.Width, gameConfig.Window.Height, gameConfig.BaseSpeed)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := assets.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 缺失的资源不致命：图片使用占位图，音频静默
	loaded, err := resourceManager.LoadResourceGroup("gameplay")
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Loaded %d gameplay resources", loaded)

	audioManager := assets.NewAudioManager(resourceManager)
	audioManager.PreloadSounds([]string{config.SoundFire, config.SoundExplosion, config.SoundGameOver})
	// 静音只压住输出：场景随后请求的背景音乐会被记住，取消静音时开始播放
	audioManager.SetMuted(cfg.Mute)
	log.Printf("[App] AudioManager initialized")

	keyboard := input.NewKeyboard(input.DefaultKeyMap())
	renderer := scenes.NewSpriteRenderer(resourceManager, gameConfig)
	hud := scenes.NewHUD()

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() scenes.Scene {
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Config:    gameConfig,
			Audio:     audioManager,
			Music:     audioManager,
			Input:     keyboard,
			Renderer:  renderer,
			HUD:       hud,
			OnRestart: sceneManager.Restart,
		})
	})
	sceneManager.Restart()

	return &App{
		cfg:          gameConfig,
		sceneManager: sceneManager,
		audioManager: audioManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.restoreWindowSize()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		a.toggleFullscreen()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		muted := !a.audioManager.IsMuted()
		a.audioManager.SetMuted(muted)
		log.Printf("[App] Muted: %v", muted)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 在全屏与窗口之间切换
// 退出全屏后窗口尺寸要等几帧才能恢复，由 restoreWindowSize 延迟处理
func (a *App) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	a.windowSizeResetCountdown = windowResetDelayFrames
	log.Printf("[App] Left fullscreen, window size reset in %d frames", windowResetDelayFrames)
}

// restoreWindowSize 倒计时结束后把窗口恢复为视口尺寸
func (a *App) restoreWindowSize() {
	if a.windowSizeResetCountdown <= 0 {
		return
	}
	a.windowSizeResetCountdown--
	if a.windowSizeResetCountdown == 0 {
		w, h := a.WindowSize()
		ebiten.SetWindowSize(w, h)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.Window.Width), int(a.cfg.Window.Height)
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.Layout(0, 0)
}

// WindowTitle 返回配置的窗口标题
func (a *App) WindowTitle() string {
	return a.cfg.Window.Title
}
