package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cookai/backend/config"
	"github.com/cookai/backend/internal/api"
	"github.com/cookai/backend/internal/database"
	"github.com/cookai/backend/internal/router"
	"github.com/cookai/backend/internal/server"
	"github.com/cookai/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The draft store is optional; chat still works without Redis.
	var drafts *service.DraftStore
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, recipe drafts disabled: %v", err)
	} else {
		drafts = service.NewDraftStore(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	llmClient := service.NewLLMClient(cfg)
	chatService := service.NewChatService(llmClient, recipeService, drafts)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, authService)
	chatHandler := api.NewChatHandler(chatService, drafts, authService)

	r := router.SetupRouter(authHandler, recipeHandler, chatHandler)
	srv := server.New(r, cfg.ServerHost+":"+cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
