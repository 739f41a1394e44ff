package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"rabbithole/backend/internal/storage"
)

// ============================================================================
// Helper Functions
// ============================================================================

// topicParams flattens a topic into Cypher parameters. Optional fields become nil.
func topicParams(t storage.Topic) map[string]interface{} {
	params := map[string]interface{}{
		"id":                 int64(t.ID),
		"title":              t.Title,
		"century":            int64(t.Century),
		"shortDescription":   nil,
		"firstMentionedYear": nil,
		"createdAt":          t.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt":          t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.ShortDescription != nil {
		params["shortDescription"] = *t.ShortDescription
	}
	if t.FirstMentionedYear != nil {
		params["firstMentionedYear"] = int64(*t.FirstMentionedYear)
	}
	return params
}

func edgeParams(r storage.RelatedTopic) map[string]interface{} {
	return map[string]interface{}{
		"edgeId":    int64(r.ID),
		"sourceId":  int64(r.SourceTopicID),
		"targetId":  int64(r.TargetTopicID),
		"createdAt": r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func getIntFromRecord(record *neo4j.Record, key string) int {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return int(i)
	}
	if i, ok := val.(int); ok {
		return i
	}
	return 0
}
