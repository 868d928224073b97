// Package input 将键盘状态转换为每帧的 game.InputState
package input

import (
	"github.com/gonewx/invaders/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource 键盘状态来源
// 运行时使用 ebiten；测试中可替换为脚本化实现
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeys 读取 ebiten 的实时键盘状态
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// KeyMap 动作到按键的映射，每个动作可绑定多个按键
type KeyMap struct {
	Left     []ebiten.Key
	Right    []ebiten.Key
	Fire     []ebiten.Key
	Pause    []ebiten.Key
	Resume   []ebiten.Key
	GameOver []ebiten.Key
}

// DefaultKeyMap 默认按键：方向键/AD 移动，空格开火，P/R/G 切换模式
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:     []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:     []ebiten.Key{ebiten.KeySpace},
		Pause:    []ebiten.Key{ebiten.KeyP},
		Resume:   []ebiten.Key{ebiten.KeyR},
		GameOver: []ebiten.Key{ebiten.KeyG},
	}
}

// Keyboard 每帧采样一次键盘
type Keyboard struct {
	keys   KeySource
	keyMap KeyMap
}

// NewKeyboard 创建读取 ebiten 键盘的输入源
func NewKeyboard(keyMap KeyMap) *Keyboard {
	return NewKeyboardWithSource(ebitenKeys{}, keyMap)
}

// NewKeyboardWithSource 使用指定的键盘状态来源
func NewKeyboardWithSource(src KeySource, keyMap KeyMap) *Keyboard {
	return &Keyboard{
		keys:   src,
		keyMap: keyMap,
	}
}

// Poll 采样本帧输入
func (k *Keyboard) Poll() game.InputState {
	return game.InputState{
		Left:                k.anyPressed(k.keyMap.Left),
		Right:               k.anyPressed(k.keyMap.Right),
		FirePressed:         k.anyPressed(k.keyMap.Fire),
		FireJustPressed:     k.anyJustPressed(k.keyMap.Fire),
		PauseJustPressed:    k.anyJustPressed(k.keyMap.Pause),
		ResumeJustPressed:   k.anyJustPressed(k.keyMap.Resume),
		GameOverJustPressed: k.anyJustPressed(k.keyMap.GameOver),
	}
}

func (k *Keyboard) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.keys.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.keys.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
