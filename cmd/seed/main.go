package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wfunc/word-game/internal/config"
	"github.com/wfunc/word-game/internal/database"
	"github.com/wfunc/word-game/internal/logger"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath    = flag.String("config", "", "配置文件路径")
		adminUser     = flag.String("admin-user", "admin", "初始管理员用户名")
		adminPassword = flag.String("admin-password", "admin123$", "初始管理员密码")
		skipAdmin     = flag.Bool("skip-admin", false, "跳过管理员账号创建")
		cleanup       = flag.Bool("cleanup", false, "清理格式不合法的词条后退出")
	)
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	db := database.GetDB()

	if *cleanup {
		removed, err := database.CleanupWords(db)
		if err != nil {
			logger.Fatal("清理词库失败", zap.Error(err))
		}
		logger.Info("词库清理完成", zap.Int("removed", removed))
		return
	}

	created, err := database.SeedWords(db)
	if err != nil {
		logger.Fatal("填充词库失败", zap.Error(err))
	}
	logger.Info("词库填充完成", zap.Int("created", created))

	if !*skipAdmin {
		if err := database.SeedAdmin(db, *adminUser, *adminPassword); err != nil {
			logger.Fatal("创建管理员失败", zap.Error(err))
		}
		logger.Info("管理员账号就绪", zap.String("username", *adminUser))
	}
}
