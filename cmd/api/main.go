package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ironlady-assistant/config"
	chatDelivery "ironlady-assistant/internal/chat/delivery/http"
	"ironlady-assistant/internal/chat/repository/memory"
	chatUC "ironlady-assistant/internal/chat/usecase"
	"ironlady-assistant/internal/httpserver"
	"ironlady-assistant/internal/knowledge"
	"ironlady-assistant/internal/middleware"
	programDelivery "ironlady-assistant/internal/program/delivery/http"
	programUC "ironlady-assistant/internal/program/usecase"
	"ironlady-assistant/pkg/llmprovider"
	"ironlady-assistant/pkg/log"
)

// @title       Iron Lady Assistant API
// @description Conversational learning assistant for Iron Lady leadership programs, backed by Gemini with a deterministic fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Iron Lady Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Knowledge base
	kb := knowledge.New()
	logger.Infof(ctx, "Knowledge base loaded: %d programs, %d FAQs", len(kb.Programs()), len(kb.FAQs()))

	// 4. LLM provider
	provider, err := llmprovider.Initialize(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM provider: ", err)
		return
	}
	if provider == nil {
		logger.Warn(ctx, "No LLM provider configured, running in fallback-only mode")
	} else {
		logger.Infof(ctx, "LLM provider: %s (model: %s)", provider.Name(), provider.Model())
	}

	// 5. Chat domain
	conversationRepo := memory.New()
	chatUseCase := chatUC.New(logger, conversationRepo, provider, kb, cfg.LLM.Timeout)
	chatHandler := chatDelivery.New(logger, chatUseCase)

	// 6. Program catalog domain
	programUseCase := programUC.New(logger, kb)
	programHandler := programDelivery.New(logger, programUseCase)

	// 7. Middleware
	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,

		ChatHandler:    chatHandler,
		ProgramHandler: programHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
