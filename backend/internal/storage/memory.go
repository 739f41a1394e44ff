package storage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"rabbithole/backend/pkg/logger"
)

var _ Storage = (*MemStorage)(nil)

// MemStorage is the in-memory Storage implementation.
// State is lost on restart; each instance owns its own tables.
type MemStorage struct {
	mu sync.RWMutex

	users          *table[User]
	topics         *table[Topic]
	topicContents  *table[TopicContent]
	relatedTopics  *table[RelatedTopic]
	glossaryTerms  *table[GlossaryTerm]
	aiChats        *table[AiChat]
	expertOpinions *table[ExpertOpinion]

	now    func() time.Time
	seed   bool
	logger *zap.Logger
}

// Option configures a MemStorage
type Option func(*MemStorage)

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *MemStorage) {
		if now != nil {
			s.now = now
		}
	}
}

// WithoutSeed starts the store empty instead of loading the fixtures
func WithoutSeed() Option {
	return func(s *MemStorage) {
		s.seed = false
	}
}

// WithLogger sets the logger used for write events
func WithLogger(l *zap.Logger) Option {
	return func(s *MemStorage) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewMemStorage creates a store and loads the seed fixtures unless WithoutSeed is given
func NewMemStorage(opts ...Option) *MemStorage {
	s := &MemStorage{
		users:          newTable(cloneUser),
		topics:         newTable(cloneTopic),
		topicContents:  newTable(cloneTopicContent),
		relatedTopics:  newTable(cloneRelatedTopic),
		glossaryTerms:  newTable(cloneGlossaryTerm),
		aiChats:        newTable(cloneAiChat),
		expertOpinions: newTable(cloneExpertOpinion),
		now:            func() time.Time { return time.Now().UTC() },
		seed:           true,
		logger:         logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed {
		s.loadFixtures()
		s.logger.Info("Storage seeded",
			zap.Int("topics", s.topics.count()),
			zap.Int("related_topics", s.relatedTopics.count()),
			zap.Int("glossary_terms", s.glossaryTerms.count()),
		)
	}
	return s
}

// Stats returns the number of records held in each collection
func (s *MemStorage) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:          s.users.count(),
		Topics:         s.topics.count(),
		TopicContents:  s.topicContents.count(),
		RelatedTopics:  s.relatedTopics.count(),
		GlossaryTerms:  s.glossaryTerms.count(),
		AiChats:        s.aiChats.count(),
		ExpertOpinions: s.expertOpinions.count(),
	}, nil
}
