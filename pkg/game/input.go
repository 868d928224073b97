package game

// InputState 本帧的输入状态
// 由输入协作方每帧生成一次；模拟核心只读取电平（按住）与边沿（刚按下）
type InputState struct {
	Left  bool // 按住向左
	Right bool // 按住向右

	FirePressed     bool // 按住开火（电平）；开火系统只看 FireJustPressed，按住不会连发
	FireJustPressed bool // 本帧刚按下开火

	// 以下由外层协调器消费，模拟核心不读取
	PauseJustPressed    bool
	ResumeJustPressed   bool
	GameOverJustPressed bool
}
