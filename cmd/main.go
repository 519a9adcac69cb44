package main

import (
	"fmt"
	"os"

	"github.com/teampath/learnhub-backend/internal/app"
	"github.com/teampath/learnhub-backend/internal/handlers"
	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/server"
	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/store"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	cfg := app.LoadConfig(log)

	// Storage
	log.Info("Setting up key-value storage...", "driver", cfg.StorageDriver)
	kvStore, err := openStore(cfg, log)
	if err != nil {
		log.Error("Could not init key-value storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer kvStore.Close()

	// Stores
	log.Info("Setting up stores from main...")
	moduleStore := store.NewModuleStore(kvStore, log)
	branchRegistry := store.NewBranchRegistry(kvStore, log)
	chatIndex := store.NewChatIndex(kvStore, log)
	activityLedger := store.NewActivityLedger(kvStore, log, cfg.ActivityCap)

	// Services
	log.Info("Setting up services from main...")
	moduleService := services.NewModuleService(moduleStore, log)
	collabService := services.NewCollabService(moduleStore, branchRegistry, activityLedger, log)
	chatService := services.NewChatService(chatIndex, log)
	activityService := services.NewActivityService(activityLedger, log)

	// Handlers
	log.Info("Setting up handlers from main...")
	router := server.NewRouter(server.RouterConfig{
		ModulesHandler:        handlers.NewModulesHandler(moduleService),
		CollabHandler:         handlers.NewCollabHandler(collabService),
		ChatHandler:           handlers.NewChatHandler(chatService),
		ActivityHandler:       handlers.NewActivityHandler(activityService),
		RecommendationHandler: handlers.NewRecommendationHandler(),
		PlannerHandler:        handlers.NewPlannerHandler(),
		CatalogHandler:        handlers.NewCatalogHandler(),
		AllowOrigins:          cfg.AllowOrigins,
	})

	log.Info("Starting HTTP server...", "port", cfg.HTTPPort)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Error("HTTP server exited", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg app.Config, log *logger.Logger) (kv.Store, error) {
	switch cfg.StorageDriver {
	case "memory", "":
		return kv.NewMemory(), nil
	case "bolt":
		return kv.NewBolt(cfg.BoltPath, log)
	case "sqlite":
		return kv.NewGorm(cfg.SQLitePath, log)
	case "redis":
		return kv.NewRedis(cfg.RedisAddr, cfg.RedisPrefix, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
