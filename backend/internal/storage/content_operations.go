package storage

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// Topic Content Operations
// ============================================================================

// GetTopicContent returns the earliest content record for topicID.
// Several records may exist for one topic; only the first is visible here.
func (s *MemStorage) GetTopicContent(ctx context.Context, topicID int) (TopicContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.topicContents.first(func(c TopicContent) bool { return c.TopicID == topicID })
	if !ok {
		return TopicContent{}, notFoundID("topic content", topicID)
	}
	return content, nil
}

// CreateTopicContent stores a content record. The topic id is not checked.
func (s *MemStorage) CreateTopicContent(ctx context.Context, in NewTopicContent) (TopicContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	content := TopicContent{
		ID:         s.topicContents.allocate(),
		TopicID:    in.TopicID,
		Content:    in.Content,
		AIAnalysis: in.AIAnalysis,
		FactCheck:  in.FactCheck,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.topicContents.put(content.ID, content)

	s.logger.Debug("Topic content created",
		zap.Int("content_id", content.ID),
		zap.Int("topic_id", content.TopicID),
	)
	return cloneTopicContent(content), nil
}

// UpdateTopicContent merges the non-nil patch fields into the content record with the given id
func (s *MemStorage) UpdateTopicContent(ctx context.Context, id int, patch TopicContentPatch) (TopicContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.topicContents.get(id)
	if !ok {
		return TopicContent{}, notFoundID("topic content", id)
	}

	if patch.TopicID != nil {
		content.TopicID = *patch.TopicID
	}
	if patch.Content != nil {
		content.Content = *patch.Content
	}
	if patch.AIAnalysis != nil {
		content.AIAnalysis = cloneString(patch.AIAnalysis)
	}
	if patch.FactCheck != nil {
		content.FactCheck = cloneString(patch.FactCheck)
	}
	content.UpdatedAt = s.now()
	s.topicContents.put(id, content)

	return cloneTopicContent(content), nil
}
