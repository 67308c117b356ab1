package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mama165/sdk-go/logs"
	"gwi.com/neon-marketplace/internal/api"
	"gwi.com/neon-marketplace/internal/config"
	"gwi.com/neon-marketplace/internal/core"
	"gwi.com/neon-marketplace/internal/store"
)

func main() {
	// Load configuration
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.AppConfig

	logger := logs.GetLoggerFromString(cfg.LogLevel)
	clock := clockwork.NewRealClock()

	// In-memory stores, one per concern
	catalog := store.NewCatalog()
	interactions := store.NewInteractions()
	session := store.NewSession()
	conversations := store.NewConversations()

	scheduler := core.NewReplyScheduler(clock)

	catalogService := core.NewCatalogService(catalog, session, clock, logger, cfg.RequireSessionToList)
	interactionService := core.NewInteractionService(interactions, catalog, logger, cfg.RecommendationLimit)
	sessionService := core.NewSessionService(session, core.NewMockIdentityProvider(), logger)
	chatService := core.NewChatService(conversations, catalog, scheduler, core.ScriptedResponder{}, clock, logger, cfg.ReplyDelay)

	apiHandler := api.NewAPIHandler(catalogService, interactionService, sessionService, chatService, logger)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "addr", serverAddr, "reply_delay", cfg.ReplyDelay)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Could not listen", "addr", serverAddr, "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Seller replies still waiting on their timer are dropped.
	if n := scheduler.Shutdown(); n > 0 {
		logger.Info("Dropped pending seller replies", "count", n)
	}
	logger.Info("Server exiting gracefully")
}
