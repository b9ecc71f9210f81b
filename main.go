package main

import (
	"classroom_backend/internal/app"
	"classroom_backend/internal/config"
	"classroom_backend/pkg/configwatcher"
	"classroom_backend/pkg/logger"
	"flag"
	"log"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "./configs", "directory holding config.yaml")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	application, err := app.New(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize application", zap.Error(err))
	}

	if cfg.MigrateOnly {
		logger.Log.Info("migrations applied, exiting")
		return
	}

	go configwatcher.WatchConfig(*configPath+"/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("configuration reloaded")
		application.Config.RateLimit = newCfg.RateLimit
		application.Config.CORS = newCfg.CORS
		application.Config.Mail = newCfg.Mail
	})

	if err := application.Run(); err != nil {
		logger.Log.Fatal("server shutdown failed", zap.Error(err))
	}
}
