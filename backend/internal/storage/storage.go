// Package storage owns all catalog state behind the Storage interface.
//
// The only implementation is MemStorage, a volatile in-memory store seeded with
// fixture data at construction. Lookups signal absence with ErrNotFound; the
// store performs no validation of its own, so callers must validate input first.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Storage is the repository abstraction the HTTP layer depends on
type Storage interface {
	// Users
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	CreateUser(ctx context.Context, in NewUser) (User, error)

	// Topics
	GetTopic(ctx context.Context, id int) (Topic, error)
	GetTopics(ctx context.Context) ([]Topic, error)
	GetTopicsByCentury(ctx context.Context, century int) ([]Topic, error)
	CreateTopic(ctx context.Context, in NewTopic) (Topic, error)
	UpdateTopic(ctx context.Context, id int, patch TopicPatch) (Topic, error)
	DeleteTopic(ctx context.Context, id int) (bool, error)

	// Topic contents
	GetTopicContent(ctx context.Context, topicID int) (TopicContent, error)
	CreateTopicContent(ctx context.Context, in NewTopicContent) (TopicContent, error)
	UpdateTopicContent(ctx context.Context, id int, patch TopicContentPatch) (TopicContent, error)

	// Related topics
	GetRelatedTopics(ctx context.Context, topicID int) ([]Topic, error)
	GetRelatedTopicEdges(ctx context.Context) ([]RelatedTopic, error)
	AddRelatedTopic(ctx context.Context, sourceTopicID, targetTopicID int) (RelatedTopic, error)
	RemoveRelatedTopic(ctx context.Context, sourceTopicID, targetTopicID int) (bool, error)

	// Glossary
	GetGlossaryTerm(ctx context.Context, term string) (GlossaryTerm, error)
	GetGlossaryTerms(ctx context.Context) ([]GlossaryTerm, error)
	CreateGlossaryTerm(ctx context.Context, in NewGlossaryTerm) (GlossaryTerm, error)

	// AI chats
	GetAiChatsByUser(ctx context.Context, userID int) ([]AiChat, error)
	GetAiChatsByTopic(ctx context.Context, topicID int) ([]AiChat, error)
	CreateAiChat(ctx context.Context, in NewAiChat) (AiChat, error)

	// Expert opinions
	GetExpertOpinionsByTopic(ctx context.Context, topicID int) ([]ExpertOpinion, error)
	CreateExpertOpinion(ctx context.Context, in NewExpertOpinion) (ExpertOpinion, error)

	Stats(ctx context.Context) (Stats, error)
}

// ErrNotFound is returned when a lookup matches no record
type ErrNotFound struct {
	Entity string
	Key    string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// IsNotFound reports whether err (or anything it wraps) is an ErrNotFound
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

func notFoundID(entity string, id int) ErrNotFound {
	return ErrNotFound{Entity: entity, Key: fmt.Sprintf("%d", id)}
}
