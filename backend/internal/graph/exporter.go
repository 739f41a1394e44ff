// Package graph mirrors the topic catalog into Neo4j as (:Topic) nodes joined
// by [:RELATED_TO] relationships, for exploration in the Neo4j browser.
//
// The in-memory store stays the source of truth. Exports are idempotent:
// nodes MERGE on topic id and relationships MERGE on edge id.
package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"rabbithole/backend/internal/storage"
	apperrors "rabbithole/backend/pkg/errors"
	"rabbithole/backend/pkg/logger"
)

const defaultConcurrency = 4

// Source is the read side of the catalog the exporter needs
type Source interface {
	GetTopics(ctx context.Context) ([]storage.Topic, error)
	GetRelatedTopicEdges(ctx context.Context) ([]storage.RelatedTopic, error)
}

// Exporter writes catalog snapshots into Neo4j
type Exporter struct {
	driver      neo4j.DriverWithContext
	concurrency int
	logger      *zap.Logger
}

// ExportResult summarizes one export run
type ExportResult struct {
	Topics   int           `json:"topics"`
	Edges    int           `json:"edges"`
	Skipped  int           `json:"skipped"` // edges whose endpoints are missing
	Duration time.Duration `json:"duration"`
}

// NewExporter creates an exporter on an open driver
func NewExporter(driver neo4j.DriverWithContext) *Exporter {
	return &Exporter{
		driver:      driver,
		concurrency: defaultConcurrency,
		logger:      logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (e *Exporter) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// EnsureConstraints creates the uniqueness constraint on Topic.id
func (e *Exporter) EnsureConstraints(ctx context.Context) error {
	return e.write(ctx, "ensure constraints",
		`CREATE CONSTRAINT topic_id IF NOT EXISTS FOR (t:Topic) REQUIRE t.id IS UNIQUE`, nil)
}

// Reset removes every Topic node and its relationships
func (e *Exporter) Reset(ctx context.Context) error {
	return e.write(ctx, "reset", `MATCH (t:Topic) DETACH DELETE t`, nil)
}

// UpsertTopic creates or refreshes one Topic node
func (e *Exporter) UpsertTopic(ctx context.Context, topic storage.Topic) error {
	query := `
		MERGE (t:Topic {id: $id})
		SET t.title = $title,
		    t.century = $century,
		    t.short_description = $shortDescription,
		    t.first_mentioned_year = $firstMentionedYear,
		    t.created_at = datetime($createdAt),
		    t.updated_at = datetime($updatedAt)
	`
	return e.write(ctx, "upsert topic", query, topicParams(topic))
}

// LinkTopics mirrors one directed edge. Returns false when either endpoint node is absent.
func (e *Exporter) LinkTopics(ctx context.Context, edge storage.RelatedTopic) (bool, error) {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (s:Topic {id: $sourceId})
		MATCH (t:Topic {id: $targetId})
		MERGE (s)-[r:RELATED_TO {edge_id: $edgeId}]->(t)
		ON CREATE SET r.created_at = datetime($createdAt)
		RETURN count(r) as linked
	`

	result, err := session.Run(ctx, query, edgeParams(edge))
	if err != nil {
		return false, apperrors.NewGraphQueryFailed("link topics", err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return false, apperrors.NewGraphQueryFailed("link topics", err)
		}
		return false, nil
	}
	return getIntFromRecord(result.Record(), "linked") > 0, nil
}

// RelatedTopicIDs reads back the outgoing RELATED_TO targets of a topic node
func (e *Exporter) RelatedTopicIDs(ctx context.Context, topicID int) ([]int, error) {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (:Topic {id: $id})-[r:RELATED_TO]->(t:Topic)
		RETURN t.id as id
		ORDER BY r.edge_id
	`
	result, err := session.Run(ctx, query, map[string]interface{}{"id": int64(topicID)})
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("related topic ids", err)
	}

	ids := []int{}
	for result.Next(ctx) {
		ids = append(ids, getIntFromRecord(result.Record(), "id"))
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewGraphQueryFailed("related topic ids", err)
	}
	return ids, nil
}

// Export copies every topic, then every edge, from src into Neo4j
func (e *Exporter) Export(ctx context.Context, src Source) (ExportResult, error) {
	start := time.Now()
	var res ExportResult

	topics, err := src.GetTopics(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to read topics: %w", err)
	}
	edges, err := src.GetRelatedTopicEdges(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to read related topics: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for _, topic := range topics {
		g.Go(func() error {
			return e.UpsertTopic(gctx, topic)
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.Topics = len(topics)

	// Edges run in order so duplicate edges keep their relative ids
	for _, edge := range edges {
		linked, err := e.LinkTopics(ctx, edge)
		if err != nil {
			return res, err
		}
		if !linked {
			res.Skipped++
			e.logger.Warn("Skipped edge with missing endpoint",
				zap.Int("edge_id", edge.ID),
				zap.Int("source_topic_id", edge.SourceTopicID),
				zap.Int("target_topic_id", edge.TargetTopicID),
			)
			continue
		}
		res.Edges++
	}

	res.Duration = time.Since(start)
	e.logger.Info("Graph export finished",
		zap.Int("topics", res.Topics),
		zap.Int("edges", res.Edges),
		zap.Int("skipped", res.Skipped),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

func (e *Exporter) write(ctx context.Context, operation, query string, params map[string]interface{}) error {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return apperrors.NewGraphQueryFailed(operation, err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return apperrors.NewGraphQueryFailed(operation, err)
	}
	return nil
}
