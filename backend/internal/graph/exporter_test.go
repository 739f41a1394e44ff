package graph

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rabbithole/backend/internal/storage"
)

func TestTopicParams(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	desc := "Aircraft spraying"
	year := 1996

	params := topicParams(storage.Topic{
		ID:                 101,
		Title:              "Chemtrails",
		Century:            20,
		ShortDescription:   &desc,
		FirstMentionedYear: &year,
		CreatedAt:          created,
		UpdatedAt:          created.Add(time.Hour),
	})

	assert.Equal(t, int64(101), params["id"])
	assert.Equal(t, "Chemtrails", params["title"])
	assert.Equal(t, int64(20), params["century"])
	assert.Equal(t, "Aircraft spraying", params["shortDescription"])
	assert.Equal(t, int64(1996), params["firstMentionedYear"])
	assert.Equal(t, "2024-03-01T12:00:00Z", params["createdAt"])
	assert.Equal(t, "2024-03-01T13:00:00Z", params["updatedAt"])
}

func TestTopicParams_OptionalFieldsAreNil(t *testing.T) {
	params := topicParams(storage.Topic{ID: 7, Title: "Bare", Century: 19})

	assert.Contains(t, params, "shortDescription")
	assert.Nil(t, params["shortDescription"])
	assert.Nil(t, params["firstMentionedYear"])
}

func TestEdgeParams(t *testing.T) {
	params := edgeParams(storage.RelatedTopic{ID: 3, SourceTopicID: 101, TargetTopicID: 301})

	assert.Equal(t, int64(3), params["edgeId"])
	assert.Equal(t, int64(101), params["sourceId"])
	assert.Equal(t, int64(301), params["targetId"])
}

// TestExporter_Export requires a running Neo4j instance.
// Set NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD environment variables.
func TestExporter_Export(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI not set")
	}

	ctx := context.Background()
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(os.Getenv("NEO4J_USER"), os.Getenv("NEO4J_PASSWORD"), ""))
	require.NoError(t, err)
	defer driver.Close(ctx)
	require.NoError(t, driver.VerifyConnectivity(ctx))

	exporter := NewExporter(driver)
	require.NoError(t, exporter.Reset(ctx))
	defer func() { _ = exporter.Reset(ctx) }()
	require.NoError(t, exporter.EnsureConstraints(ctx))

	store := storage.NewMemStorage()
	res, err := exporter.Export(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 16, res.Topics)
	assert.Equal(t, 6, res.Edges)
	assert.Zero(t, res.Skipped)

	ids, err := exporter.RelatedTopicIDs(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, []int{103, 301}, ids)

	// A second run must not duplicate relationships
	_, err = exporter.Export(ctx, store)
	require.NoError(t, err)
	ids, err = exporter.RelatedTopicIDs(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, []int{103, 301}, ids)
}
