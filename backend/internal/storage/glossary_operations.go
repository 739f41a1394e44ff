package storage

import (
	"context"
	"strings"
)

// ============================================================================
// Glossary Operations
// ============================================================================

// GetGlossaryTerm finds a term by case-insensitive exact match
func (s *MemStorage) GetGlossaryTerm(ctx context.Context, term string) (GlossaryTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.glossaryTerms.first(func(g GlossaryTerm) bool { return strings.EqualFold(g.Term, term) })
	if !ok {
		return GlossaryTerm{}, ErrNotFound{Entity: "glossary term", Key: term}
	}
	return entry, nil
}

// GetGlossaryTerms returns the whole glossary
func (s *MemStorage) GetGlossaryTerms(ctx context.Context) ([]GlossaryTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.glossaryTerms.filter(nil), nil
}

// CreateGlossaryTerm stores a term. Term text is not deduplicated.
func (s *MemStorage) CreateGlossaryTerm(ctx context.Context, in NewGlossaryTerm) (GlossaryTerm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := GlossaryTerm{
		ID:             s.glossaryTerms.allocate(),
		Term:           in.Term,
		Definition:     in.Definition,
		RelatedTopicID: in.RelatedTopicID,
	}
	s.glossaryTerms.put(entry.ID, entry)
	return cloneGlossaryTerm(entry), nil
}
