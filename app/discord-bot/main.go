package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"smartCampusReco/internal/bootstrap"
	"smartCampusReco/internal/bot"
	"smartCampusReco/pkg/config"
	"smartCampusReco/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()

	recoService, cleanup, err := bootstrap.RecommendationService(cfg)
	if err != nil {
		logger.Fatal("Failed to init recommendation service", "error", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
		<-sc
		logger.Info("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	discordBot, err := bot.New(cfg.Discord.Token, cfg.Discord.CommandPrefix, recoService, logger.Named("discord"))
	if err != nil {
		logger.Fatal("Failed to initialize bot", "error", err)
	}

	if err := discordBot.Start(ctx); err != nil {
		logger.Error("Bot error", "error", err)
		return
	}

	logger.Info("Discord bot shut down successfully")
}
