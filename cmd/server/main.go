package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pantrylens/backend/config"
	httpDelivery "github.com/pantrylens/backend/internal/delivery/http"
	"github.com/pantrylens/backend/internal/infrastructure/cache"
	"github.com/pantrylens/backend/internal/infrastructure/catalog"
	"github.com/pantrylens/backend/internal/infrastructure/genai"
	"github.com/pantrylens/backend/internal/infrastructure/store"
	"github.com/pantrylens/backend/internal/usecase"
	"github.com/pantrylens/backend/internal/vocab"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PantryLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Infrastructure
	memoryCache := cache.NewMemoryCache()
	memoryStore := store.NewMemoryStore()
	promptWriter := genai.NewTemplateWriter()

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.UserAgent)
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}
	log.Printf("Catalog API: %s", cfg.Catalog.BaseURL)

	// Vocabulary is read-only configuration, built once and injected
	vocabulary := vocab.Default()
	log.Printf("Vocabulary: %d tags, %d brands, %d category rules",
		len(vocabulary.AllTags()), len(vocabulary.Brands), len(vocabulary.CategoryRules))

	// Usecase layer
	pantryService := usecase.NewPantryService(
		memoryCache,
		catalogClient,
		memoryStore,
		memoryStore,
		memoryStore,
		promptWriter,
		vocabulary,
		usecase.PantryConfig{
			CacheTTL:           cfg.Cache.TTL,
			MatchThreshold:     cfg.Matching.Threshold,
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: threshold=%.2f, debug=%v", cfg.Matching.Threshold, cfg.Matching.EnableDebugLogging)

	handler := httpDelivery.NewHandler(pantryService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
