package systems

import (
	"math"
	"math/rand/v2"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/game"
)

// FormationMaker 生成敌机编队轨迹
// 同一个模板最多被 membersMax 架敌机共享，之后生成新模板
type FormationMaker struct {
	template   *components.FormationComponent
	members    int
	membersMax int
	speed      float64
}

// NewFormationMaker 创建编队生成器
//
// 参数:
//   - membersMax: 每个模板的成员上限
//   - speed: 编队线速度（单位/秒）
func NewFormationMaker(membersMax int, speed float64) *FormationMaker {
	return &FormationMaker{
		membersMax: membersMax,
		speed:      speed,
	}
}

// Make 返回下一架敌机的编队轨迹
// 新模板的起点在屏幕左右两侧之外，枢轴位于上半屏
func (fm *FormationMaker) Make(win game.WinSize, rng *rand.Rand) components.FormationComponent {
	if fm.template != nil && fm.members < fm.membersMax {
		fm.members++
		return *fm.template
	}

	wSpan := win.W/2 + 100
	hSpan := win.H/2 + 100

	startX := -wSpan
	if rng.IntN(2) == 0 {
		startX = wSpan
	}
	startY := randRange(rng, -hSpan, hSpan)

	pivotX := randRange(rng, -200, 200)
	pivotY := randRange(rng, 0, hSpan)

	formation := components.FormationComponent{
		StartX:  startX,
		StartY:  startY,
		RadiusX: randRange(rng, 80, 150),
		RadiusY: 100,
		PivotX:  pivotX,
		PivotY:  pivotY,
		Speed:   fm.speed,
		Angle:   math.Atan2(startY-pivotY, startX-pivotX),
	}

	fm.template = &formation
	fm.members = 1
	return formation
}

// randRange 返回 [lo, hi) 内的均匀随机数
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
