package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rabbithole/backend/internal/storage"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

// ============================================================================
// Users
// ============================================================================

func TestCreateUser_OmitsPassword(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodPost, "/api/users", map[string]any{
		"username": "scully",
		"password": "science!",
		"email":    "dana@fbi.gov",
		"role":     "user",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	raw := decode[map[string]any](t, w.Body.Bytes())
	assert.Equal(t, float64(3), raw["id"])
	assert.Equal(t, "scully", raw["username"])
	assert.NotContains(t, raw, "password")

	w = doRequest(router, http.MethodGet, "/api/users/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	raw = decode[map[string]any](t, w.Body.Bytes())
	assert.NotContains(t, raw, "password")

	w = doRequest(router, http.MethodGet, "/api/users/by-username/scully", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode[map[string]any](t, w.Body.Bytes())["id"])
}

func TestCreateUser_Validation(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodPost, "/api/users", map[string]any{
		"username": "ab",
		"password": "secret",
		"email":    "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	apiErr := decodeError(t, w)
	assert.Equal(t, CodeValidationFailed, apiErr.Code)
	assert.ElementsMatch(t, []FieldError{
		{Field: "username", Message: "must be at least 3 characters"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "role", Message: "is required"},
	}, apiErr.Fields)

	// Nothing was stored
	w = doRequest(router, http.MethodGet, "/api/users/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_NotFoundAndInvalidID(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeError(t, w).Message)

	w = doRequest(router, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidID, decodeError(t, w).Code)

	w = doRequest(router, http.MethodGet, "/api/users/by-username/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// Topics
// ============================================================================

func TestGetTopics(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	topics := decode[[]storage.Topic](t, w.Body.Bytes())
	assert.Len(t, topics, 16)

	raw := decode[[]map[string]any](t, w.Body.Bytes())
	assert.Contains(t, raw[0], "shortDescription")
	assert.Contains(t, raw[0], "firstMentionedYear")
	assert.Contains(t, raw[0], "createdAt")
}

func TestGetTopicsByCentury(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/topics/century/18", nil)
	require.Equal(t, http.StatusOK, w.Code)
	topics := decode[[]storage.Topic](t, w.Body.Bytes())
	require.Len(t, topics, 4)
	assert.Equal(t, 301, topics[0].ID)
	for _, topic := range topics {
		assert.Equal(t, 18, topic.Century)
	}

	w = doRequest(router, http.MethodGet, "/api/topics/century/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/topics/century/twenty", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTopic(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/topics/101", nil)
	require.Equal(t, http.StatusOK, w.Code)
	topic := decode[storage.Topic](t, w.Body.Bytes())
	assert.Equal(t, "Chemtrails", topic.Title)

	w = doRequest(router, http.MethodGet, "/api/topics/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Topic not found", decodeError(t, w).Message)
}

func TestCreateTopic(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodPost, "/api/topics", map[string]any{
		"title":              "Mandela Effect",
		"century":            21,
		"firstMentionedYear": 2009,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	topic := decode[storage.Topic](t, w.Body.Bytes())
	assert.Equal(t, 405, topic.ID)
	assert.Nil(t, topic.ShortDescription)
	require.NotNil(t, topic.FirstMentionedYear)
	assert.Equal(t, 2009, *topic.FirstMentionedYear)

	w = doRequest(router, http.MethodGet, "/api/topics/405", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateTopic_Validation(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodPost, "/api/topics", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Equal(t, []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "century", Message: "is required"},
	}, apiErr.Fields)

	w = doRequest(router, http.MethodPost, "/api/topics", `{"title":"x","century":"twenty"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr = decodeError(t, w)
	assert.Equal(t, CodeValidationFailed, apiErr.Code)
	assert.Equal(t, []FieldError{{Field: "century", Message: "must be of type integer"}}, apiErr.Fields)

	w = doRequest(router, http.MethodPost, "/api/topics", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidJSON, decodeError(t, w).Code)

	w = doRequest(router, http.MethodPost, "/api/topics", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidJSON, decodeError(t, w).Code)

	// Rejected bodies never reach the store
	w = doRequest(router, http.MethodGet, "/api/topics", nil)
	assert.Len(t, decode[[]storage.Topic](t, w.Body.Bytes()), 16)
}

func TestUpdateTopic_PartialMerge(t *testing.T) {
	router := newTestRouter(t, Deps{})

	before := decode[storage.Topic](t, doRequest(router, http.MethodGet, "/api/topics/101", nil).Body.Bytes())

	w := doRequest(router, http.MethodPut, "/api/topics/101", map[string]any{"title": "Chemical Trails"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	after := decode[storage.Topic](t, w.Body.Bytes())

	assert.Equal(t, "Chemical Trails", after.Title)
	assert.Equal(t, before.Century, after.Century)
	assert.Equal(t, before.ShortDescription, after.ShortDescription)
	assert.Equal(t, before.FirstMentionedYear, after.FirstMentionedYear)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

	// null counts as not provided
	w = doRequest(router, http.MethodPut, "/api/topics/101", `{"shortDescription":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before.ShortDescription, decode[storage.Topic](t, w.Body.Bytes()).ShortDescription)
}

func TestUpdateTopic_Errors(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodPut, "/api/topics/999", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPut, "/api/topics/101", map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []FieldError{{Field: "title", Message: "must be at least 1 characters"}}, decodeError(t, w).Fields)
}

func TestDeleteTopic(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodDelete, "/api/topics/104", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/topics/104", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/topics/104", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// Topic contents
// ============================================================================

func TestTopicContents(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/topic-contents/101", nil)
	require.Equal(t, http.StatusOK, w.Code)
	seeded := decode[storage.TopicContent](t, w.Body.Bytes())
	assert.Equal(t, 101, seeded.TopicID)

	w = doRequest(router, http.MethodGet, "/api/topic-contents/104", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPost, "/api/topic-contents", map[string]any{
		"topicId": 104,
		"content": "Hangar 18 lore",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[storage.TopicContent](t, w.Body.Bytes())
	assert.Nil(t, created.AIAnalysis)

	w = doRequest(router, http.MethodPut, "/api/topic-contents/"+strconv.Itoa(created.ID), map[string]any{
		"factCheck": "Declassified in 2013",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[storage.TopicContent](t, w.Body.Bytes())
	assert.Equal(t, "Hangar 18 lore", updated.Content)
	require.NotNil(t, updated.FactCheck)
	assert.Equal(t, "Declassified in 2013", *updated.FactCheck)

	w = doRequest(router, http.MethodGet, "/api/topic-contents/104", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, updated, decode[storage.TopicContent](t, w.Body.Bytes()))

	w = doRequest(router, http.MethodPost, "/api/topic-contents", map[string]any{"topicId": 104})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []FieldError{{Field: "content", Message: "is required"}}, decodeError(t, w).Fields)
}

// ============================================================================
// Related topics
// ============================================================================

func TestRelatedTopics(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/related-topics/101", nil)
	require.Equal(t, http.StatusOK, w.Code)
	related := decode[[]storage.Topic](t, w.Body.Bytes())
	require.Len(t, related, 2)
	assert.Equal(t, 103, related[0].ID)
	assert.Equal(t, 301, related[1].ID)

	w = doRequest(router, http.MethodGet, "/api/related-topics/104", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/related-topics", map[string]any{
		"sourceTopicId": 104,
		"targetTopicId": 102,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	edge := decode[storage.RelatedTopic](t, w.Body.Bytes())
	assert.Equal(t, 104, edge.SourceTopicID)
	assert.Equal(t, 102, edge.TargetTopicID)

	w = doRequest(router, http.MethodGet, "/api/related-topics/104", nil)
	related = decode[[]storage.Topic](t, w.Body.Bytes())
	require.Len(t, related, 1)
	assert.Equal(t, 102, related[0].ID)

	// Directed: nothing appears from the target side
	w = doRequest(router, http.MethodGet, "/api/related-topics/102", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(router, http.MethodDelete, "/api/related-topics/104/102", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doRequest(router, http.MethodDelete, "/api/related-topics/104/102", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPost, "/api/related-topics", map[string]any{"sourceTopicId": 104})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []FieldError{{Field: "targetTopicId", Message: "is required"}}, decodeError(t, w).Fields)
}

// ============================================================================
// Glossary
// ============================================================================

func TestGlossary(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/glossary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]storage.GlossaryTerm](t, w.Body.Bytes()), 4)

	w = doRequest(router, http.MethodGet, "/api/glossary/CHEMTRAILS", nil)
	require.Equal(t, http.StatusOK, w.Code)
	upper := decode[storage.GlossaryTerm](t, w.Body.Bytes())
	w = doRequest(router, http.MethodGet, "/api/glossary/chemtrails", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, upper, decode[storage.GlossaryTerm](t, w.Body.Bytes()))

	w = doRequest(router, http.MethodGet, "/api/glossary/deep%20state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Deep State", decode[storage.GlossaryTerm](t, w.Body.Bytes()).Term)

	w = doRequest(router, http.MethodGet, "/api/glossary/psyop", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPost, "/api/glossary", map[string]any{
		"term":       "Psyop",
		"definition": "A psychological operation",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[storage.GlossaryTerm](t, w.Body.Bytes())
	assert.Nil(t, created.RelatedTopicID)

	w = doRequest(router, http.MethodGet, "/api/glossary/PSYOP", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// AI chats and expert opinions
// ============================================================================

func TestAiChats(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/ai-chats/user/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/ai-chats", map[string]any{
		"userId":   2,
		"topicId":  101,
		"question": "Are contrails toxic?",
		"answer":   "Contrails are condensed water vapour.",
		"provider": "perplexity",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[storage.AiChat](t, w.Body.Bytes())
	assert.Equal(t, 1, created.ID)

	w = doRequest(router, http.MethodGet, "/api/ai-chats/user/2", nil)
	assert.Equal(t, []storage.AiChat{created}, decode[[]storage.AiChat](t, w.Body.Bytes()))

	w = doRequest(router, http.MethodGet, "/api/ai-chats/topic/101", nil)
	assert.Equal(t, []storage.AiChat{created}, decode[[]storage.AiChat](t, w.Body.Bytes()))

	w = doRequest(router, http.MethodPost, "/api/ai-chats", map[string]any{"userId": 2, "question": "q"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []FieldError{
		{Field: "answer", Message: "is required"},
		{Field: "provider", Message: "is required"},
	}, decodeError(t, w).Fields)
}

func TestExpertOpinions(t *testing.T) {
	router := newTestRouter(t, Deps{})

	w := doRequest(router, http.MethodGet, "/api/expert-opinions/101", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]storage.ExpertOpinion](t, w.Body.Bytes()), 2)

	w = doRequest(router, http.MethodPost, "/api/expert-opinions", map[string]any{
		"topicId":     104,
		"expertName":  "Bob Lazar",
		"expertTitle": "Self-described physicist",
		"opinion":     "Sector 4 is real.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/expert-opinions/104", nil)
	opinions := decode[[]storage.ExpertOpinion](t, w.Body.Bytes())
	require.Len(t, opinions, 1)
	assert.Equal(t, "Bob Lazar", opinions[0].ExpertName)

	w = doRequest(router, http.MethodGet, "/api/expert-opinions/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
