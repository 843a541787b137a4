package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/coursier/coursier-agent/internal/adapters/llm"
	memstore "github.com/coursier/coursier-agent/internal/adapters/storage/memory"
	"github.com/coursier/coursier-agent/internal/adapters/telegram"
	"github.com/coursier/coursier-agent/internal/app/dialog"
	"github.com/coursier/coursier-agent/internal/config"
	"github.com/coursier/coursier-agent/internal/domain"
	"github.com/coursier/coursier-agent/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := observability.Logger()

	var generator domain.ReplyGenerator
	switch cfg.Generator {
	case config.GeneratorMock:
		logger.Info("using mock reply generator")
		generator = llm.NewMockGenerator()
	case config.GeneratorOpenAI:
		logger.Info("using OpenAI reply generator", "model", cfg.OpenAIModel)
		generator, err = llm.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatalf("error initializing OpenAI generator: %v", err)
		}
	default:
		logger.Info("using Gemini reply generator", "model", cfg.GeminiModel)
		generator, err = llm.NewGeminiClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("error initializing Gemini generator: %v", err)
		}
	}

	sessions := memstore.NewSessionStore()
	svc := dialog.NewService(generator, sessions, cfg.GenerateTimeout)

	bot, err := telegram.New(cfg.TelegramToken, svc)
	if err != nil {
		log.Fatalf("error initializing telegram bot: %v", err)
	}

	logger.Info("coursier bot started")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("bot stopped with error: %v", err)
	}
	logger.Info("coursier bot stopped")
}
