package components

import (
	"math"
	"testing"
)

// TestTimer_OnceCompletes 测试单次计时器到期
func TestTimer_OnceCompletes(t *testing.T) {
	timer := NewTimer(1.0, TimerOnce)

	if n := timer.Tick(1, 0.5); n != 0 || timer.Finished() {
		t.Fatalf("timer should not finish after 0.5s, n=%d finished=%v", n, timer.Finished())
	}
	if n := timer.Tick(2, 0.5); n != 1 || !timer.Finished() {
		t.Fatalf("timer should finish at 1.0s, n=%d finished=%v", n, timer.Finished())
	}
	if timer.Elapsed != 1.0 {
		t.Errorf("once timer should clamp elapsed at duration, got %f", timer.Elapsed)
	}

	// 完成后继续 Tick 不再报告新的完成
	if n := timer.Tick(3, 0.5); n != 0 {
		t.Errorf("finished once timer should not complete again, got %d", n)
	}
	if !timer.Finished() {
		t.Error("once timer should stay finished")
	}
	if timer.Remaining() != 0 {
		t.Errorf("remaining should be 0, got %f", timer.Remaining())
	}
}

// TestTimer_SameFrameTickIsIdempotent 测试同一帧令牌不会重复推进
func TestTimer_SameFrameTickIsIdempotent(t *testing.T) {
	timer := NewTimer(1.0, TimerOnce)

	timer.Tick(7, 0.25)
	timer.Tick(7, 0.25) // 另一个系统在同一帧内再次 Tick

	if timer.Elapsed != 0.25 {
		t.Fatalf("double tick within one frame must not double-advance, elapsed=%f", timer.Elapsed)
	}

	timer.Tick(8, 0.25)
	if timer.Elapsed != 0.5 {
		t.Errorf("next frame should advance normally, elapsed=%f", timer.Elapsed)
	}
}

// TestNewTimerAt_StartsNextFrame 测试创建帧内的 Tick 不推进时间
func TestNewTimerAt_StartsNextFrame(t *testing.T) {
	timer := NewTimerAt(1.0, TimerOnce, 5)

	if n := timer.Tick(5, 0.25); n != 0 || timer.Elapsed != 0 {
		t.Fatalf("tick in the creation frame should be a no-op, n=%d elapsed=%f", n, timer.Elapsed)
	}

	for frame := uint64(6); frame <= 9; frame++ {
		timer.Tick(frame, 0.25)
	}
	if !timer.Finished() || timer.Elapsed != 1.0 {
		t.Errorf("timer should finish after four later frames, finished=%v elapsed=%f", timer.Finished(), timer.Elapsed)
	}
}

// TestTimer_SameFrameReportsSameResult 测试同帧的第二次 Tick 返回相同结果
func TestTimer_SameFrameReportsSameResult(t *testing.T) {
	timer := NewTimer(0.5, TimerOnce)
	first := timer.Tick(1, 0.5)
	second := timer.Tick(1, 0.5)
	if first != 1 || second != 1 {
		t.Errorf("both ticks in the completing frame should report completion, got %d and %d", first, second)
	}
}

// TestTimer_Repeating 测试循环计时器回绕
func TestTimer_Repeating(t *testing.T) {
	tests := []struct {
		name      string
		duration  float64
		dt        float64
		wantTimes int
		wantLeft  float64
	}{
		{name: "未到期", duration: 0.5, dt: 0.25, wantTimes: 0, wantLeft: 0.25},
		{name: "刚好到期", duration: 0.5, dt: 0.5, wantTimes: 1, wantLeft: 0},
		{name: "一帧跨越多个周期", duration: 0.25, dt: 1.125, wantTimes: 4, wantLeft: 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(tt.duration, TimerRepeating)
			got := timer.Tick(1, tt.dt)
			if got != tt.wantTimes {
				t.Errorf("TimesFinished = %d, want %d", got, tt.wantTimes)
			}
			if timer.Finished() != (tt.wantTimes > 0) {
				t.Errorf("Finished = %v, want %v", timer.Finished(), tt.wantTimes > 0)
			}
			if math.Abs(timer.Elapsed-tt.wantLeft) > 1e-12 {
				t.Errorf("Elapsed = %f, want %f", timer.Elapsed, tt.wantLeft)
			}
		})
	}
}

// TestSpriteSize_HalfExtents 测试碰撞盒半尺寸计算
func TestSpriteSize_HalfExtents(t *testing.T) {
	size := &SpriteSizeComponent{Width: 144, Height: 75}
	hw, hh := size.HalfExtents(NewTransform(0, 0, 0, 0.5))
	if hw != 36 || hh != 18.75 {
		t.Errorf("expected (36, 18.75), got (%f, %f)", hw, hh)
	}
}
