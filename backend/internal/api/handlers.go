package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"rabbithole/backend/internal/storage"
)

// pathInt parses an integer path parameter, writing a 400 when it is not one
func pathInt(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, APIError{
			Message: "invalid " + name,
			Code:    CodeInvalidID,
			Fields:  []FieldError{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return id, true
}

// fail maps a store error to 404 for absence and 500 for anything else
func (h *Handler) fail(c *gin.Context, err error, entity string) {
	if storage.IsNotFound(err) {
		respondNotFound(c, entity)
		return
	}
	h.logger.Error("Request failed",
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(requestIDKey)),
	)
	respondInternal(c, err)
}

// ============================================================================
// Users
// ============================================================================

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.store.CreateUser(c.Request.Context(), req.toStorage())
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *Handler) getUserByUsername(c *gin.Context) {
	user, err := h.store.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// ============================================================================
// Topics
// ============================================================================

func (h *Handler) getTopics(c *gin.Context) {
	topics, err := h.store.GetTopics(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Topics")
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *Handler) getTopicsByCentury(c *gin.Context) {
	century, ok := pathInt(c, "century")
	if !ok {
		return
	}
	topics, err := h.store.GetTopicsByCentury(c.Request.Context(), century)
	if err != nil {
		h.fail(c, err, "Topics")
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *Handler) getTopic(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	topic, err := h.store.GetTopic(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Topic")
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *Handler) createTopic(c *gin.Context) {
	var req createTopicRequest
	if !bindJSON(c, &req) {
		return
	}
	topic, err := h.store.CreateTopic(c.Request.Context(), req.toStorage())
	if err != nil {
		h.fail(c, err, "Topic")
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (h *Handler) updateTopic(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	var req updateTopicRequest
	if !bindJSON(c, &req) {
		return
	}
	topic, err := h.store.UpdateTopic(c.Request.Context(), id, req.toStorage())
	if err != nil {
		h.fail(c, err, "Topic")
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *Handler) deleteTopic(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	deleted, err := h.store.DeleteTopic(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Topic")
		return
	}
	if !deleted {
		respondNotFound(c, "Topic")
		return
	}
	c.Status(http.StatusNoContent)
}

// ============================================================================
// Topic contents
// ============================================================================

func (h *Handler) getTopicContent(c *gin.Context) {
	topicID, ok := pathInt(c, "topicId")
	if !ok {
		return
	}
	content, err := h.store.GetTopicContent(c.Request.Context(), topicID)
	if err != nil {
		h.fail(c, err, "Topic content")
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *Handler) createTopicContent(c *gin.Context) {
	var req createTopicContentRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.store.CreateTopicContent(c.Request.Context(), req.toStorage())
	if err != nil {
		h.fail(c, err, "Topic content")
		return
	}
	c.JSON(http.StatusCreated, content)
}

// updateTopicContent is keyed by the content record id, not the topic id
func (h *Handler) updateTopicContent(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}
	var req updateTopicContentRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.store.UpdateTopicContent(c.Request.Context(), id, req.toStorage())
	if err != nil {
		h.fail(c, err, "Topic content")
		return
	}
	c.JSON(http.StatusOK, content)
}

// ============================================================================
// Related topics
// ============================================================================

func (h *Handler) getRelatedTopics(c *gin.Context) {
	topicID, ok := pathInt(c, "topicId")
	if !ok {
		return
	}
	topics, err := h.store.GetRelatedTopics(c.Request.Context(), topicID)
	if err != nil {
		h.fail(c, err, "Related topics")
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *Handler) addRelatedTopic(c *gin.Context) {
	var req addRelatedTopicRequest
	if !bindJSON(c, &req) {
		return
	}
	edge, err := h.store.AddRelatedTopic(c.Request.Context(), req.SourceTopicID, req.TargetTopicID)
	if err != nil {
		h.fail(c, err, "Related topic")
		return
	}
	c.JSON(http.StatusCreated, edge)
}

func (h *Handler) removeRelatedTopic(c *gin.Context) {
	sourceID, ok := pathInt(c, "sourceId")
	if !ok {
		return
	}
	targetID, ok := pathInt(c, "targetId")
	if !ok {
		return
	}
	removed, err := h.store.RemoveRelatedTopic(c.Request.Context(), sourceID, targetID)
	if err != nil {
		h.fail(c, err, "Related topic")
		return
	}
	if !removed {
		respondNotFound(c, "Related topic")
		return
	}
	c.Status(http.StatusNoContent)
}

// ============================================================================
// Glossary
// ============================================================================

func (h *Handler) getGlossaryTerms(c *gin.Context) {
	terms, err := h.store.GetGlossaryTerms(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Glossary")
		return
	}
	c.JSON(http.StatusOK, terms)
}

func (h *Handler) getGlossaryTerm(c *gin.Context) {
	term, err := h.store.GetGlossaryTerm(c.Request.Context(), c.Param("term"))
	if err != nil {
		h.fail(c, err, "Glossary term")
		return
	}
	c.JSON(http.StatusOK, term)
}

func (h *Handler) createGlossaryTerm(c *gin.Context) {
	var req createGlossaryTermRequest
	if !bindJSON(c, &req) {
		return
	}
	term, err := h.store.CreateGlossaryTerm(c.Request.Context(), req.toStorage())
	if err != nil {
		h.fail(c, err, "Glossary term")
		return
	}
	c.JSON(http.StatusCreated, term)
}

// ============================================================================
// AI chats
// ============================================================================

func (h *Handler) getAiChatsByUser(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	chats, err := h.store.GetAiChatsByUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "AI chats")
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (h *Handler) getAiChatsByTopic(c *gin.Context) {
	topicID, ok := pathInt(c, "topicId")
	if !ok {
		return
	}
	chats, err := h.store.GetAiChatsByTopic(c.Request.Context(), topicID)
	if err != nil {
		h.fail(c, err, "AI chats")
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (h *Handler) createAiChat(c *gin.Context) {
	var req createAiChatRequest
	if !bindJSON(c, &req) {
		return
	}
	chat, err := h.store.CreateAiChat(c.Request.Context(), req.toStorage())
	if err != nil {
		h.fail(c, err, "AI chat")
		return
	}
	c.JSON(http.StatusCreated, chat)
}

// ============================================================================
// Expert opinions
// ============================================================================

func (h *Handler) getExpertOpinionsByTopic(c *gin.Context) {
	topicID, ok := pathInt(c, "topicId")
	if !ok {
		return
	}
	opinions, err := h.store.GetExpertOpinionsByTopic(c.Request.Context(), topicID)
	if err != nil {
		h.fail(c, err, "Expert opinions")
		return
	}
	c.JSON(http.StatusOK, opinions)
}

func (h *Handler) createExpertOpinion(c *gin.Context) {
	var req createExpertOpinionRequest
	if !bindJSON(c, &req) {
		return
	}
	opinion, err := h.store.CreateExpertOpinion(c.Request.Context(), req.toStorage())
	if err != nil {
		h.fail(c, err, "Expert opinion")
		return
	}
	c.JSON(http.StatusCreated, opinion)
}
