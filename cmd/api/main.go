package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"furniture-chatbot/config"
	_ "furniture-chatbot/docs" // Swagger docs
	"furniture-chatbot/internal/alias"
	"furniture-chatbot/internal/catalog"
	kbRepo "furniture-chatbot/internal/catalog/repository/file"
	chatHTTP "furniture-chatbot/internal/chat/delivery/http"
	chatUC "furniture-chatbot/internal/chat/usecase"
	"furniture-chatbot/internal/httpserver"
	"furniture-chatbot/internal/middleware"
	"furniture-chatbot/internal/reply"
	"furniture-chatbot/internal/router"
	"furniture-chatbot/pkg/log"
)

// @title       Victory Furniture Assistant API
// @description Rule-based shopping assistant for a furniture retailer: product lookup, category browsing and branch directions.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Victory Furniture assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Knowledge base
	entries, err := kbRepo.New(cfg.KnowledgeBase.Path, logger).LoadEntries(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load knowledge base %s: %v", cfg.KnowledgeBase.Path, err)
	}
	idx := catalog.NewIndex(entries)
	stats := httpserver.KnowledgeBaseStats{
		Products:   len(idx.Products()),
		Categories: len(idx.Categories()),
		Branches:   len(idx.Branches()),
	}
	logger.Infof(ctx, "Knowledge base loaded: %d products, %d categories, %d branches",
		stats.Products, stats.Categories, stats.Branches)

	// 4. Chat domain
	links := make([]reply.SocialLink, 0, len(cfg.Assistant.SocialLinks))
	for _, l := range cfg.Assistant.SocialLinks {
		links = append(links, reply.SocialLink{Name: l.Name, URL: l.URL})
	}
	formatter := reply.New(reply.Config{
		BrandName:           cfg.Assistant.BrandName,
		SocialLinks:         links,
		SuggestedCategories: cfg.Assistant.SuggestedCategories,
	})
	keywordRouter := router.New(logger, idx, alias.NewDefault(), formatter, cfg.Matcher.Threshold)
	uc := chatUC.New(keywordRouter, logger)
	chatHandler := chatHTTP.New(logger, uc)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.HTTPServer.RateLimitPerMin),
		Stats:       stats,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
