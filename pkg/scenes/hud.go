package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invaders/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD 绘制计分与模式提示
type HUD struct {
	face text.Face
}

// NewHUD 使用内置位图字体创建 HUD
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw 绘制左上角统计，以及暂停/结束时的居中提示
// shield 为玩家剩余无敌时间（秒），大于 0 时追加显示
func (h *HUD) Draw(screen *ebiten.Image, gs *game.GameState, mode game.Mode, shield float64) {
	h.drawText(screen, statusLine(gs, shield), 8, 8, color.White)

	if msg := modeMessage(mode); msg != "" {
		w, lineH := text.Measure(msg, h.face, 0)
		h.drawText(screen, msg, (gs.WinSize.W-w)/2, (gs.WinSize.H-lineH)/2, color.RGBA{R: 255, G: 220, B: 80, A: 255})
	}
}

func (h *HUD) drawText(screen *ebiten.Image, str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, str, h.face, op)
}

// statusLine 左上角统计文字
func statusLine(gs *game.GameState, shield float64) string {
	line := fmt.Sprintf("KILLS %d   DEATHS %d", gs.Kills, gs.Deaths)
	if shield > 0 {
		line += fmt.Sprintf("   SHIELD %.1fs", shield)
	}
	return line
}

// modeMessage 返回模式对应的提示文字，Playing 时为空
func modeMessage(mode game.Mode) string {
	switch mode {
	case game.ModePaused:
		return "PAUSED - press R to resume"
	case game.ModeGameOver:
		return "GAME OVER - press R to restart"
	default:
		return ""
	}
}
