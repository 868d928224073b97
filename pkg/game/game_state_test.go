package game

import (
	"testing"

	"github.com/gonewx/invaders/pkg/config"
)

// recordingSoundPlayer 记录所有播放请求
type recordingSoundPlayer struct {
	cues []SoundCue
}

func (r *recordingSoundPlayer) PlaySound(cue SoundCue) {
	r.cues = append(r.cues, cue)
}

func newTestConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 42
	return cfg
}

func TestNewGameState_Defaults(t *testing.T) {
	gs := NewGameState(newTestConfig(), nil)

	if gs.WinSize.W != 598 || gs.WinSize.H != 676 {
		t.Errorf("unexpected win size %+v", gs.WinSize)
	}
	if gs.Player.Alive || gs.Player.LastDeathTime != -1 {
		t.Errorf("player should start dead and never-died, got %+v", gs.Player)
	}
	if gs.EnemyCount != 0 {
		t.Errorf("enemy count should start at 0, got %d", gs.EnemyCount)
	}
	// nil 音频端被替换为静音实现
	gs.PlayEffect(config.SoundFire)
}

func TestBeginFrame(t *testing.T) {
	gs := NewGameState(newTestConfig(), nil)
	gs.BeginFrame(0.25)
	gs.BeginFrame(0.5)

	if gs.Frame != 2 {
		t.Errorf("expected frame 2, got %d", gs.Frame)
	}
	if gs.Now != 0.75 {
		t.Errorf("expected now = 0.75, got %f", gs.Now)
	}
	if gs.Delta != 0.5 {
		t.Errorf("expected delta = 0.5, got %f", gs.Delta)
	}
}

func TestEnemyCount_NeverNegative(t *testing.T) {
	gs := NewGameState(newTestConfig(), nil)
	gs.IncrementEnemyCount()

	if !gs.DecrementEnemyCount() {
		t.Fatal("first decrement should succeed")
	}
	// 非 invdebug 构建下只记录日志，不 panic
	if gs.DecrementEnemyCount() {
		t.Error("decrement at zero should be refused")
	}
	if gs.EnemyCount != 0 {
		t.Errorf("enemy count must not go negative, got %d", gs.EnemyCount)
	}
}

func TestPlayEffect_UsesConfiguredVolume(t *testing.T) {
	rec := &recordingSoundPlayer{}
	gs := NewGameState(newTestConfig(), rec)

	gs.PlayEffect(config.SoundExplosion)

	if len(rec.cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(rec.cues))
	}
	cue := rec.cues[0]
	if cue.ID != config.SoundExplosion || cue.Volume != 0.3 || cue.Loop {
		t.Errorf("unexpected cue %+v", cue)
	}
}

func TestPlayerState_Respawn(t *testing.T) {
	tests := []struct {
		name  string
		state PlayerState
		now   float64
		want  bool
	}{
		{name: "从未死亡", state: NewPlayerState(), now: 0, want: true},
		{name: "存活时不重生", state: PlayerState{Alive: true, LastDeathTime: -1}, now: 10, want: false},
		{name: "冷却中", state: PlayerState{LastDeathTime: 5}, now: 6.5, want: false},
		{name: "刚好等于冷却", state: PlayerState{LastDeathTime: 5}, now: 7, want: false},
		{name: "冷却结束", state: PlayerState{LastDeathTime: 5}, now: 7.01, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.CanRespawn(tt.now, 2); got != tt.want {
				t.Errorf("CanRespawn(%f) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestPlayerState_Transitions(t *testing.T) {
	ps := NewPlayerState()
	ps.Spawned()
	if !ps.Alive || ps.LastDeathTime != -1 {
		t.Errorf("after spawn: %+v", ps)
	}
	ps.Killed(3.5)
	if ps.Alive || ps.LastDeathTime != 3.5 {
		t.Errorf("after kill: %+v", ps)
	}
}

func TestMode(t *testing.T) {
	if !ModePlaying.RunsSimulation() {
		t.Error("Playing should run the simulation")
	}
	if ModePaused.RunsSimulation() || ModeGameOver.RunsSimulation() {
		t.Error("only Playing runs the simulation")
	}
	if ModePaused.String() != "Paused" {
		t.Errorf("unexpected mode name %q", ModePaused.String())
	}
}
