package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/23f2005121/KNOSSOS/internal/engine"
	"github.com/23f2005121/KNOSSOS/internal/server"
	"github.com/23f2005121/KNOSSOS/internal/version"
	"github.com/23f2005121/KNOSSOS/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var level int
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&level, "level", 1, "Starting level")
	flag.Parse()

	logger.Log.Info("Starting KNOSSOS simulation...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	cfg.Level = level
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	port := os.Getenv("KN_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("World generation failed: ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go gameService.Run(ctx)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	cancel()
	logger.Log.Info("Done.")
}
