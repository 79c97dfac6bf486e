package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pricecheck/backend/config"
	"github.com/pricecheck/backend/internal/catalogue"
	httpDelivery "github.com/pricecheck/backend/internal/delivery/http"
	catalogueSource "github.com/pricecheck/backend/internal/infrastructure/catalogue"
	"github.com/pricecheck/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceCheck Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalogue source: %s", cfg.Catalogue.Source)

	// Load the catalogue once; it is immutable for the life of the process
	source, err := catalogueSource.NewSource(cfg.Catalogue.Source, cfg.Catalogue.Path, cfg.Catalogue.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to configure catalogue source: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalogue.LoadTimeout)
	listings, err := source.Load(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}

	store := catalogue.New(listings)
	log.Printf("Catalogue loaded: %d listings", store.Len())

	representative, err := usecase.ParseRepresentative(cfg.Matching.Representative)
	if err != nil {
		log.Fatalf("Invalid matching configuration: %v", err)
	}

	// Initialize usecase layer
	matcher := usecase.NewMatchingService(usecase.MatchConfig{
		MinSharedKeywords:  cfg.Matching.MinSharedKeywords,
		RequireKeyword:     cfg.Matching.RequireKeyword,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})
	grouping := usecase.NewGroupingService(matcher, usecase.GroupConfig{
		Representative:     representative,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})
	query := usecase.NewQueryService(store, usecase.QueryConfig{
		PageSize:           cfg.Query.PageSize,
		SuggestionLimit:    cfg.Query.SuggestionLimit,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Matching: min_shared_keywords=%d, require_keyword=%v, representative=%s, debug=%v",
		cfg.Matching.MinSharedKeywords,
		cfg.Matching.RequireKeyword,
		representative,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(store, query, matcher, grouping)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
