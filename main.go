package main

import (
	"flag"
	"log"

	"github.com/gonewx/invaders/pkg/app"
	"github.com/gonewx/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部玩法配置文件（默认使用嵌入的 data/game.yaml）")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用配置文件或时间种子）")
	mute := flag.Bool("mute", false, "关闭声音")
	cpuProfile := flag.String("cpuprofile", "", "将 CPU profile 写入指定目录")
	flag.Parse()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		GameConfigPath: *configPath,
		Seed:           *seed,
		Mute:           *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle(gameApp.WindowTitle())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("游戏退出: %v", err)
	}
}
