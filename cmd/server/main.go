package main

import (
	"log"

	_ "planner/docs"
	"planner/internal/config"
	"planner/internal/logger"
	"planner/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	defer zl.Sync()

	s, err := server.Init(cfg, zl)
	if err != nil {
		zl.Fatal("❌ Server initialization failed", zap.Error(err))
	}

	s.Run()
}
