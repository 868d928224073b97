package components

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 单次计时器：到期后停在完成状态
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时器：到期后回绕继续计时
	TimerRepeating
)

// Timer 通用倒计时器
// 用于无敌时间、爆炸动画帧间隔、生成周期等需要时间延迟的行为
//
// Tick 以帧令牌去重：同一帧令牌的第二次 Tick 不会再次推进时间，
// 因此两个系统在同一帧内各自 Tick 同一个计时器也不会重复累计。
type Timer struct {
	Duration float64   // 目标时间（秒）
	Elapsed  float64   // 当前周期已过时间（秒）
	Mode     TimerMode // 单次或循环

	finished      bool
	timesFinished int
	lastFrame     uint64
	ticked        bool
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// NewTimerAt 创建在 frame 帧内已视为 Tick 过的计时器
// 本帧内其余系统的 Tick 都是空操作，计时从下一帧开始，
// 与在帧末才真正进入世界的实体保持一致
func NewTimerAt(duration float64, mode TimerMode, frame uint64) Timer {
	return Timer{Duration: duration, Mode: mode, lastFrame: frame, ticked: true}
}

// Tick 推进计时器
//
// 参数:
//   - frame: 当前帧令牌（单调递增的帧序号）
//   - dt: 本帧经过的时间（秒）
//
// 返回:
//   - int: 本帧完成的周期数（单次计时器为 0 或 1）
func (t *Timer) Tick(frame uint64, dt float64) int {
	if t.ticked && t.lastFrame == frame {
		return t.timesFinished
	}
	t.ticked = true
	t.lastFrame = frame
	t.timesFinished = 0

	if t.Mode == TimerOnce {
		if t.finished {
			// 已完成的单次计时器只报告一次完成
			return 0
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.timesFinished = 1
		}
		return t.timesFinished
	}

	t.Elapsed += dt
	t.finished = false
	if t.Duration <= 0 {
		t.finished = true
		t.timesFinished = 1
		t.Elapsed = 0
		return 1
	}
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		t.timesFinished++
	}
	t.finished = t.timesFinished > 0
	return t.timesFinished
}

// Finished 返回计时器是否处于完成状态
// 单次计时器到期后一直为 true；循环计时器仅在本帧完成了至少一个周期时为 true
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinished 返回最近一次 Tick 完成的周期数
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Remaining 返回距离下一次完成的剩余时间（秒）
func (t *Timer) Remaining() float64 {
	if t.Mode == TimerOnce && t.finished {
		return 0
	}
	return t.Duration - t.Elapsed
}
