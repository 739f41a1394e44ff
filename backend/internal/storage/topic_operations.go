package storage

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// Topic Operations
// ============================================================================

// GetTopic looks up a topic by id
func (s *MemStorage) GetTopic(ctx context.Context, id int) (Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.topics.get(id)
	if !ok {
		return Topic{}, notFoundID("topic", id)
	}
	return topic, nil
}

// GetTopics returns every topic in insertion order
func (s *MemStorage) GetTopics(ctx context.Context) ([]Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.topics.filter(nil), nil
}

// GetTopicsByCentury returns the topics whose century equals century
func (s *MemStorage) GetTopicsByCentury(ctx context.Context, century int) ([]Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.topics.filter(func(t Topic) bool { return t.Century == century }), nil
}

// CreateTopic stores a new topic with CreatedAt and UpdatedAt set to now
func (s *MemStorage) CreateTopic(ctx context.Context, in NewTopic) (Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	topic := Topic{
		ID:                 s.topics.allocate(),
		Title:              in.Title,
		Century:            in.Century,
		ShortDescription:   in.ShortDescription,
		FirstMentionedYear: in.FirstMentionedYear,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.topics.put(topic.ID, topic)

	s.logger.Debug("Topic created", zap.Int("topic_id", topic.ID), zap.String("title", topic.Title))
	return cloneTopic(topic), nil
}

// UpdateTopic merges the non-nil patch fields into the stored topic.
// UpdatedAt is refreshed even when nothing changed.
func (s *MemStorage) UpdateTopic(ctx context.Context, id int, patch TopicPatch) (Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic, ok := s.topics.get(id)
	if !ok {
		return Topic{}, notFoundID("topic", id)
	}

	if patch.Title != nil {
		topic.Title = *patch.Title
	}
	if patch.Century != nil {
		topic.Century = *patch.Century
	}
	if patch.ShortDescription != nil {
		topic.ShortDescription = cloneString(patch.ShortDescription)
	}
	if patch.FirstMentionedYear != nil {
		topic.FirstMentionedYear = cloneInt(patch.FirstMentionedYear)
	}
	topic.UpdatedAt = s.now()
	s.topics.put(id, topic)

	s.logger.Debug("Topic updated", zap.Int("topic_id", id))
	return cloneTopic(topic), nil
}

// DeleteTopic removes a topic. Contents, opinions and edges that reference it are left in place.
func (s *MemStorage) DeleteTopic(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.topics.remove(id)
	if removed {
		s.logger.Debug("Topic deleted", zap.Int("topic_id", id))
	}
	return removed, nil
}
