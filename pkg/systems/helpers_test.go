package systems

import (
	"testing"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/entities"
	"github.com/gonewx/invaders/pkg/game"
)

// soundRecorder 记录所有播放请求
type soundRecorder struct {
	cues []game.SoundCue
}

func (r *soundRecorder) PlaySound(cue game.SoundCue) {
	r.cues = append(r.cues, cue)
}

func (r *soundRecorder) count(id string) int {
	n := 0
	for _, c := range r.cues {
		if c.ID == id {
			n++
		}
	}
	return n
}

// newTestWorld 创建使用默认配置与固定种子的测试世界
func newTestWorld(t *testing.T) (*ecs.EntityManager, *game.GameState, *soundRecorder) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Seed = 42
	rec := &soundRecorder{}
	return ecs.NewEntityManager(), game.NewGameState(cfg, rec), rec
}

// spawnTestPlayer 创建玩家并同步玩家状态，可选去掉出生无敌
func spawnTestPlayer(t *testing.T, em *ecs.EntityManager, gs *game.GameState, invincible bool) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(em, gs.Config, gs.WinSize.H, gs.Frame)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	gs.Player.Spawned()
	if !invincible {
		ecs.RemoveComponent[*components.InvincibleComponent](em, id)
	}
	return id
}

// spawnTestEnemy 在固定位置创建敌机并计数
func spawnTestEnemy(t *testing.T, em *ecs.EntityManager, gs *game.GameState, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, gs.Config, components.FormationComponent{StartX: x, StartY: y, Speed: gs.Config.BaseSpeed})
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	gs.IncrementEnemyCount()
	return id
}

func transformOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tf, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no transform", id)
	}
	return tf
}
