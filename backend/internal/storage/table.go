package storage

// table is one entity collection: rows keyed by id, insertion order, and a
// counter that only moves forward.
type table[T any] struct {
	rows   map[int]T
	order  []int
	nextID int
	clone  func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	return &table[T]{
		rows:   make(map[int]T),
		nextID: 1,
		clone:  clone,
	}
}

// allocate hands out the next id
func (t *table[T]) allocate() int {
	id := t.nextID
	t.nextID++
	return id
}

// put stores row under id. Explicit ids at or above the counter push it past them.
func (t *table[T]) put(id int, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(row)
	if id >= t.nextID {
		t.nextID = id + 1
	}
}

func (t *table[T]) get(id int) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

func (t *table[T]) remove(id int) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// filter returns copies of every row matching keep, in insertion order
func (t *table[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// first returns the earliest inserted row matching keep
func (t *table[T]) first(keep func(T) bool) (T, bool) {
	for _, id := range t.order {
		row := t.rows[id]
		if keep(row) {
			return t.clone(row), true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) count() int {
	return len(t.rows)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cloneUser(u User) User {
	u.DisplayName = cloneString(u.DisplayName)
	u.AvatarURL = cloneString(u.AvatarURL)
	return u
}

func cloneTopic(t Topic) Topic {
	t.ShortDescription = cloneString(t.ShortDescription)
	t.FirstMentionedYear = cloneInt(t.FirstMentionedYear)
	return t
}

func cloneTopicContent(c TopicContent) TopicContent {
	c.AIAnalysis = cloneString(c.AIAnalysis)
	c.FactCheck = cloneString(c.FactCheck)
	return c
}

func cloneRelatedTopic(r RelatedTopic) RelatedTopic { return r }

func cloneGlossaryTerm(g GlossaryTerm) GlossaryTerm {
	g.RelatedTopicID = cloneInt(g.RelatedTopicID)
	return g
}

func cloneAiChat(c AiChat) AiChat {
	c.TopicID = cloneInt(c.TopicID)
	return c
}

func cloneExpertOpinion(e ExpertOpinion) ExpertOpinion {
	e.AvatarURL = cloneString(e.AvatarURL)
	return e
}
