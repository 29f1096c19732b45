// @title Team Goal Tracker API
// @version 1.0
// @description 团队目标与心情跟踪服务的后端。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"team_goal_tracker/internal/app"
	"team_goal_tracker/internal/config"
	"team_goal_tracker/pkg/configwatcher"
	"team_goal_tracker/pkg/database"
	"team_goal_tracker/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 仅迁移模式：建连即迁移，完成后直接退出
	if *migrateOnly {
		if _, err := database.InitDB(&cfg.Database); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
