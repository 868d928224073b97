package game

// SoundCue 一次性的播放请求
type SoundCue struct {
	ID     string  // 资源ID（如 config.SoundFire）
	Volume float64 // 0.0 ~ 1.0
	Loop   bool
}

// SoundPlayer 音频协作方
// 模拟核心只发出"即发即忘"的播放请求，从不等待加载或播放完成
type SoundPlayer interface {
	PlaySound(cue SoundCue)
}

// NopSoundPlayer 静音实现（无头模拟与测试默认使用）
type NopSoundPlayer struct{}

// PlaySound 忽略所有请求
func (NopSoundPlayer) PlaySound(SoundCue) {}
