package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource 每帧提供一次输入快照
type InputSource interface {
	Poll() game.InputState
}

// MusicController 背景音乐控制（可选）
type MusicController interface {
	PauseMusic()
	ResumeMusic()
	StopMusic()
}

// GameScene 游戏主场景
//
// 负责外层模式切换（Playing / Paused / GameOver）：
//   - P: Playing → Paused
//   - R: Paused → Playing；GameOver 时请求重新开局
//   - G: Playing/Paused → GameOver
//
// 模拟管线只在 Playing 模式下推进；模式切换键所在的帧不推进模拟。
type GameScene struct {
	cfg      *config.GameConfig
	em       *ecs.EntityManager
	gs       *game.GameState
	pipeline *systems.Pipeline
	mode     game.Mode

	input     InputSource
	music     MusicController // 可为 nil
	renderer  *SpriteRenderer // 可为 nil（无头模式）
	hud       *HUD            // 可为 nil（无头模式）
	onRestart func()
}

// GameSceneOptions 创建场景所需的协作方
type GameSceneOptions struct {
	Config    *config.GameConfig
	Audio     game.SoundPlayer
	Music     MusicController
	Input     InputSource
	Renderer  *SpriteRenderer
	HUD       *HUD
	OnRestart func()
}

// NewGameScene 创建游戏场景并开始播放背景音乐
func NewGameScene(opts GameSceneOptions) *GameScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(opts.Config, opts.Audio)

	scene := &GameScene{
		cfg:       opts.Config,
		em:        em,
		gs:        gs,
		pipeline:  systems.NewPipeline(em, gs),
		mode:      game.ModePlaying,
		input:     opts.Input,
		music:     opts.Music,
		renderer:  opts.Renderer,
		hud:       opts.HUD,
		onRestart: opts.OnRestart,
	}

	gs.Audio.PlaySound(game.SoundCue{
		ID:     config.MusicGameplay,
		Volume: opts.Config.Audio.MusicVolume,
		Loop:   true,
	})

	log.Printf("[GameScene] 场景创建完成")
	return scene
}

// Update 处理模式切换，并在 Playing 模式下推进一帧模拟
func (s *GameScene) Update(deltaTime float64) {
	var in game.InputState
	if s.input != nil {
		in = s.input.Poll()
	}

	if s.handleModeKeys(in) {
		return
	}
	if !s.mode.RunsSimulation() {
		return
	}

	s.pipeline.Step(deltaTime, in)
}

// handleModeKeys 处理模式切换键
// 返回 true 表示本帧发生了模式切换
func (s *GameScene) handleModeKeys(in game.InputState) bool {
	switch s.mode {
	case game.ModePlaying:
		if in.GameOverJustPressed {
			s.enterGameOver()
			return true
		}
		if in.PauseJustPressed {
			s.setMode(game.ModePaused)
			if s.music != nil {
				s.music.PauseMusic()
			}
			return true
		}
	case game.ModePaused:
		if in.GameOverJustPressed {
			s.enterGameOver()
			return true
		}
		if in.ResumeJustPressed {
			s.setMode(game.ModePlaying)
			if s.music != nil {
				s.music.ResumeMusic()
			}
			return true
		}
	case game.ModeGameOver:
		if in.ResumeJustPressed && s.onRestart != nil {
			s.onRestart()
			return true
		}
	}
	return false
}

func (s *GameScene) enterGameOver() {
	s.setMode(game.ModeGameOver)
	if s.music != nil {
		s.music.StopMusic()
	}
	s.gs.PlayEffect(config.SoundGameOver)
	log.Printf("[GameScene] Game over: kills=%d deaths=%d time=%.1fs", s.gs.Kills, s.gs.Deaths, s.gs.Now)
}

func (s *GameScene) setMode(mode game.Mode) {
	log.Printf("[GameScene] Mode %s → %s", s.mode, mode)
	s.mode = mode
}

// Draw 绘制世界与 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 24, A: 255})

	if s.renderer != nil {
		s.renderer.Draw(screen, s.em, s.gs)
	}
	if s.hud != nil {
		s.hud.Draw(screen, s.gs, s.mode, s.ShieldRemaining())
	}
}

// ShieldRemaining 返回玩家出生无敌的剩余时间（秒），没有无敌玩家时为 0
func (s *GameScene) ShieldRemaining() float64 {
	ids := ecs.FilterLive(s.em, ecs.GetEntitiesWith2[*components.PlayerComponent, *components.InvincibleComponent](s.em))
	if len(ids) == 0 {
		return 0
	}
	inv, _ := ecs.GetComponent[*components.InvincibleComponent](s.em, ids[0])
	return inv.Timer.Remaining()
}

// Mode 返回当前模式
func (s *GameScene) Mode() game.Mode {
	return s.mode
}

// GameState 返回模拟上下文
func (s *GameScene) GameState() *game.GameState {
	return s.gs
}

// EntityManager 返回实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.em
}
