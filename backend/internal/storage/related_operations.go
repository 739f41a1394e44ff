package storage

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// Related Topic Operations
// ============================================================================

// GetRelatedTopics resolves the outgoing edges of topicID to topics, in edge order.
// Edges are directed: A->B does not make B related to A. Dangling targets are skipped.
func (s *MemStorage) GetRelatedTopics(ctx context.Context, topicID int) ([]Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := s.relatedTopics.filter(func(r RelatedTopic) bool { return r.SourceTopicID == topicID })

	topics := make([]Topic, 0, len(edges))
	for _, edge := range edges {
		if topic, ok := s.topics.get(edge.TargetTopicID); ok {
			topics = append(topics, topic)
		}
	}
	return topics, nil
}

// GetRelatedTopicEdges returns every edge in insertion order
func (s *MemStorage) GetRelatedTopicEdges(ctx context.Context) ([]RelatedTopic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.relatedTopics.filter(nil), nil
}

// AddRelatedTopic records the edge source->target. Duplicates and self-loops are accepted.
func (s *MemStorage) AddRelatedTopic(ctx context.Context, sourceTopicID, targetTopicID int) (RelatedTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edge := RelatedTopic{
		ID:            s.relatedTopics.allocate(),
		SourceTopicID: sourceTopicID,
		TargetTopicID: targetTopicID,
		CreatedAt:     s.now(),
	}
	s.relatedTopics.put(edge.ID, edge)

	s.logger.Debug("Topics linked",
		zap.Int("source_topic_id", sourceTopicID),
		zap.Int("target_topic_id", targetTopicID),
	)
	return edge, nil
}

// RemoveRelatedTopic deletes the first edge source->target, if any
func (s *MemStorage) RemoveRelatedTopic(ctx context.Context, sourceTopicID, targetTopicID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edge, ok := s.relatedTopics.first(func(r RelatedTopic) bool {
		return r.SourceTopicID == sourceTopicID && r.TargetTopicID == targetTopicID
	})
	if !ok {
		return false, nil
	}
	return s.relatedTopics.remove(edge.ID), nil
}
