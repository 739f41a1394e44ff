package storage

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// AI Chat and Expert Opinion Operations
// ============================================================================

// GetAiChatsByUser returns the chats recorded for userID
func (s *MemStorage) GetAiChatsByUser(ctx context.Context, userID int) ([]AiChat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.aiChats.filter(func(c AiChat) bool { return c.UserID == userID }), nil
}

// GetAiChatsByTopic returns the chats recorded against topicID
func (s *MemStorage) GetAiChatsByTopic(ctx context.Context, topicID int) ([]AiChat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.aiChats.filter(func(c AiChat) bool { return c.TopicID != nil && *c.TopicID == topicID }), nil
}

// CreateAiChat records a question/answer exchange
func (s *MemStorage) CreateAiChat(ctx context.Context, in NewAiChat) (AiChat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := AiChat{
		ID:        s.aiChats.allocate(),
		UserID:    in.UserID,
		TopicID:   in.TopicID,
		Question:  in.Question,
		Answer:    in.Answer,
		Provider:  in.Provider,
		CreatedAt: s.now(),
	}
	s.aiChats.put(chat.ID, chat)

	s.logger.Debug("AI chat recorded",
		zap.Int("chat_id", chat.ID),
		zap.Int("user_id", chat.UserID),
		zap.String("provider", chat.Provider),
	)
	return cloneAiChat(chat), nil
}

// GetExpertOpinionsByTopic returns the opinions attached to topicID
func (s *MemStorage) GetExpertOpinionsByTopic(ctx context.Context, topicID int) ([]ExpertOpinion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.expertOpinions.filter(func(e ExpertOpinion) bool { return e.TopicID == topicID }), nil
}

// CreateExpertOpinion stores an opinion. The topic id is not checked.
func (s *MemStorage) CreateExpertOpinion(ctx context.Context, in NewExpertOpinion) (ExpertOpinion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opinion := ExpertOpinion{
		ID:          s.expertOpinions.allocate(),
		TopicID:     in.TopicID,
		ExpertName:  in.ExpertName,
		ExpertTitle: in.ExpertTitle,
		Opinion:     in.Opinion,
		AvatarURL:   in.AvatarURL,
		CreatedAt:   s.now(),
	}
	s.expertOpinions.put(opinion.ID, opinion)
	return cloneExpertOpinion(opinion), nil
}
