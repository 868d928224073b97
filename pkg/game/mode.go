package game

// Mode 外层游戏模式
// 模拟核心只在 ModePlaying 下运行；核心自身不提供切换模式的命令
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
)

// String 返回模式名称（日志用）
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunsSimulation 返回该模式下是否运行模拟系统
func (m Mode) RunsSimulation() bool {
	return m == ModePlaying
}
