// simulate 在无窗口环境下运行模拟核心
//
// 用脚本化输入（左右往返 + 定时开火）推进指定帧数，输出统计信息。
// 用于回归检查与性能分析：
//
//	go run ./cmd/simulate -frames 36000 -seed 42
//	go run ./cmd/simulate -cpuprofile ./prof
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/systems"
	"github.com/pkg/profile"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", config.GameConfigPath, "玩法配置文件，文件不存在时使用默认配置")
	frames     = flag.Int("frames", 60*60, "模拟帧数")
	tps        = flag.Int("tps", 60, "每秒帧数")
	seed       = flag.Uint64("seed", 42, "随机种子")
	fireEvery  = flag.Int("fire-every", 12, "每隔多少帧开火一次（0 表示不开火）")
	sweep      = flag.Int("sweep", 90, "左右往返的半周期（帧）")
	cpuProfile = flag.String("cpuprofile", "", "将 CPU profile 写入指定目录")
)

// stats 模拟过程中的统计
type stats struct {
	maxEntities  int
	maxEnemies   int
	removedTotal int
	explosions   int
}

func main() {
	flag.Parse()

	if err := validateFlags(*tps, *frames); err != nil {
		fmt.Fprintf(os.Stderr, "参数错误: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	cfg.Seed = *seed

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg, nil)
	pipeline := systems.NewPipeline(em, gs)

	dt := 1.0 / float64(*tps)
	var st stats

	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		st.removedTotal += pipeline.Step(dt, scriptedInput(frame))

		st.maxEntities = max(st.maxEntities, em.EntityCount())
		st.maxEnemies = max(st.maxEnemies, gs.EnemyCount)
		st.explosions = max(st.explosions, len(ecs.GetEntitiesWith1[*components.ExplosionComponent](em)))
	}
	elapsed := time.Since(start)

	fmt.Printf("模拟时间:     %.1fs (%d 帧, dt=%.4f)\n", gs.Now, gs.Frame, dt)
	fmt.Printf("实际耗时:     %v (%.1f µs/帧)\n", elapsed, float64(elapsed.Microseconds())/float64(max(*frames, 1)))
	fmt.Printf("击毁敌机:     %d\n", gs.Kills)
	fmt.Printf("玩家死亡:     %d\n", gs.Deaths)
	fmt.Printf("当前实体:     %d (峰值 %d)\n", em.EntityCount(), st.maxEntities)
	fmt.Printf("敌机峰值:     %d / %d\n", st.maxEnemies, cfg.Enemy.Max)
	fmt.Printf("同时爆炸峰值: %d\n", st.explosions)
	fmt.Printf("累计销毁实体: %d\n", st.removedTotal)
}

// validateFlags 检查帧参数，tps 必须为正，否则 dt 不是有限值
func validateFlags(tps, frames int) error {
	if tps <= 0 {
		return fmt.Errorf("-tps must be positive, got %d", tps)
	}
	if frames < 0 {
		return fmt.Errorf("-frames must not be negative, got %d", frames)
	}
	return nil
}

// loadConfig 加载配置文件，文件不存在时使用默认值
func loadConfig(path string) (*config.GameConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[simulate] %s 不存在，使用默认配置", path)
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfig(path)
}

// scriptedInput 第 frame 帧的脚本输入
func scriptedInput(frame int) game.InputState {
	in := game.InputState{}
	if *sweep > 0 {
		if (frame / *sweep)%2 == 0 {
			in.Left = true
		} else {
			in.Right = true
		}
	}
	if *fireEvery > 0 {
		in.FireJustPressed = frame%*fireEvery == 0
		in.FirePressed = in.FireJustPressed
	}
	return in
}
