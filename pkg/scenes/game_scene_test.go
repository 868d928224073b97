package scenes

import (
	"image"
	"testing"

	"github.com/gonewx/invaders/pkg/assets"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/game"
)

// scriptedInput 按顺序返回预设输入，用完后返回空输入
type scriptedInput struct {
	frames []game.InputState
}

func (s *scriptedInput) Poll() game.InputState {
	if len(s.frames) == 0 {
		return game.InputState{}
	}
	in := s.frames[0]
	s.frames = s.frames[1:]
	return in
}

type cueRecorder struct {
	cues []game.SoundCue
}

func (r *cueRecorder) PlaySound(cue game.SoundCue) {
	r.cues = append(r.cues, cue)
}

type musicRecorder struct {
	paused, resumed, stopped int
}

func (m *musicRecorder) PauseMusic()  { m.paused++ }
func (m *musicRecorder) ResumeMusic() { m.resumed++ }
func (m *musicRecorder) StopMusic()   { m.stopped++ }

func newTestScene(t *testing.T, frames ...game.InputState) (*GameScene, *cueRecorder, *musicRecorder, *int) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Seed = 7
	rec := &cueRecorder{}
	music := &musicRecorder{}
	restarts := 0
	scene := NewGameScene(GameSceneOptions{
		Config:    cfg,
		Audio:     rec,
		Music:     music,
		Input:     &scriptedInput{frames: frames},
		OnRestart: func() { restarts++ },
	})
	return scene, rec, music, &restarts
}

func TestGameScene_StartsBackgroundMusic(t *testing.T) {
	_, rec, _, _ := newTestScene(t)

	if len(rec.cues) != 1 {
		t.Fatalf("expected one cue, got %v", rec.cues)
	}
	cue := rec.cues[0]
	if cue.ID != config.MusicGameplay || !cue.Loop || cue.Volume != 0.8 {
		t.Errorf("unexpected music cue %+v", cue)
	}
}

func TestGameScene_ModeGate(t *testing.T) {
	scene, rec, music, restarts := newTestScene(t,
		game.InputState{},                          // 1: Playing，推进
		game.InputState{PauseJustPressed: true},    // 2: → Paused
		game.InputState{Left: true},                // 3: 暂停中，不推进
		game.InputState{ResumeJustPressed: true},   // 4: → Playing
		game.InputState{},                          // 5: 推进
		game.InputState{GameOverJustPressed: true}, // 6: → GameOver
		game.InputState{},                          // 7: 不推进
		game.InputState{ResumeJustPressed: true},   // 8: 请求重新开局
	)

	steps := []struct {
		mode  game.Mode
		frame uint64
	}{
		{game.ModePlaying, 1},
		{game.ModePaused, 1},
		{game.ModePaused, 1},
		{game.ModePlaying, 1},
		{game.ModePlaying, 2},
		{game.ModeGameOver, 2},
		{game.ModeGameOver, 2},
		{game.ModeGameOver, 2},
	}

	for i, want := range steps {
		scene.Update(1.0 / 60)
		if scene.Mode() != want.mode {
			t.Errorf("update %d: mode = %s, want %s", i+1, scene.Mode(), want.mode)
		}
		if scene.GameState().Frame != want.frame {
			t.Errorf("update %d: frame = %d, want %d", i+1, scene.GameState().Frame, want.frame)
		}
	}

	if music.paused != 1 || music.resumed != 1 || music.stopped != 1 {
		t.Errorf("unexpected music calls %+v", *music)
	}
	if *restarts != 1 {
		t.Errorf("expected one restart request, got %d", *restarts)
	}

	gameOverCues := 0
	for _, cue := range rec.cues {
		if cue.ID == config.SoundGameOver {
			gameOverCues++
		}
	}
	if gameOverCues != 1 {
		t.Errorf("expected one game over sound, got %d", gameOverCues)
	}
}

func TestGameScene_NilInput(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 7
	scene := NewGameScene(GameSceneOptions{Config: cfg})

	scene.Update(1.0 / 60)
	if !scene.GameState().Player.Alive {
		t.Error("player should spawn without any input source")
	}
}

func TestSceneManager_Restart(t *testing.T) {
	sm := NewSceneManager()
	sm.Restart() // 没有工厂时只记录日志

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		cfg := config.DefaultGameConfig()
		cfg.Seed = 1
		return NewGameScene(GameSceneOptions{Config: cfg})
	})
	sm.Restart()

	if created != 1 || sm.currentScene == nil {
		t.Errorf("restart should create and switch to a new scene (created=%d)", created)
	}
	sm.Update(1.0 / 60)
}

func TestFrameRect(t *testing.T) {
	sheet := image.Rect(0, 0, 256, 256)
	layout := assets.SheetLayout{Cols: 4, Rows: 4}

	tests := []struct {
		frame    int
		expected image.Rectangle
	}{
		{0, image.Rect(0, 0, 64, 64)},
		{1, image.Rect(64, 0, 128, 64)},
		{4, image.Rect(0, 64, 64, 128)},
		{15, image.Rect(192, 192, 256, 256)},
		{99, image.Rect(192, 192, 256, 256)},
		{-1, image.Rect(0, 0, 64, 64)},
	}

	for _, tt := range tests {
		if got := frameRect(sheet, layout, tt.frame); got != tt.expected {
			t.Errorf("frameRect(%d) = %v, want %v", tt.frame, got, tt.expected)
		}
	}
}

func TestModeMessage(t *testing.T) {
	if modeMessage(game.ModePlaying) != "" {
		t.Error("no message while playing")
	}
	if modeMessage(game.ModePaused) == "" || modeMessage(game.ModeGameOver) == "" {
		t.Error("paused and game over need a message")
	}
}

func TestGameScene_ShieldRemaining(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 1
	scene := NewGameScene(GameSceneOptions{Config: cfg})

	if got := scene.ShieldRemaining(); got != 0 {
		t.Errorf("no player yet, shield = %f", got)
	}

	// 出生帧不计入无敌时间
	scene.Update(0.25)
	if got := scene.ShieldRemaining(); got != 1 {
		t.Errorf("shield after spawn frame = %f, want 1", got)
	}
	scene.Update(0.25)
	if got := scene.ShieldRemaining(); got != 0.75 {
		t.Errorf("shield after one more frame = %f, want 0.75", got)
	}
}

func TestStatusLine(t *testing.T) {
	gs := game.NewGameState(config.DefaultGameConfig(), nil)
	gs.Kills, gs.Deaths = 3, 1

	tests := []struct {
		name   string
		shield float64
		want   string
	}{
		{"no shield", 0, "KILLS 3   DEATHS 1"},
		{"spawn shield", 0.5, "KILLS 3   DEATHS 1   SHIELD 0.5s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLine(gs, tt.shield); got != tt.want {
				t.Errorf("statusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
