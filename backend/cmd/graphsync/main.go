package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"rabbithole/backend/internal/graph"
	"rabbithole/backend/internal/storage"
	"rabbithole/backend/pkg/config"
	apperrors "rabbithole/backend/pkg/errors"
	"rabbithole/backend/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "Delete all Topic nodes before exporting")
	dryRun := flag.Bool("dry-run", false, "Print what would be exported without connecting")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall export timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting graph export...")

	store := storage.NewMemStorage(storage.WithLogger(log))
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *dryRun {
		stats, _ := store.Stats(ctx)
		log.Info("Dry run, nothing written",
			zap.Int("topics", stats.Topics),
			zap.Int("related_topics", stats.RelatedTopics),
		)
		return
	}

	if !cfg.GraphEnabled() {
		log.Error("NEO4J_URI is not set")
		os.Exit(1)
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)))
	}
	exporter := graph.NewExporter(driver)
	defer exporter.Close(context.Background())

	// Verify connection
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)))
	}

	if *reset {
		log.Info("Removing existing Topic nodes...")
		if err := exporter.Reset(ctx); err != nil {
			log.Fatal("Failed to reset graph", zap.Error(err))
		}
	}

	log.Info("Creating constraints...")
	if err := exporter.EnsureConstraints(ctx); err != nil {
		log.Warn("Failed to create constraints (may already exist)", zap.Error(err))
	}

	res, err := exporter.Export(ctx, store)
	if err != nil {
		log.Fatal("Graph export failed", zap.Error(err))
	}

	fmt.Printf("Exported %d topics and %d related-topic edges (%d skipped) in %s\n",
		res.Topics, res.Edges, res.Skipped, res.Duration.Round(time.Millisecond))
}
