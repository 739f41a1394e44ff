// Package api exposes the catalog store over REST/JSON with gin.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"rabbithole/backend/internal/metrics"
	"rabbithole/backend/internal/storage"
)

// ChatProvider answers free-form questions for the chat proxy
type ChatProvider interface {
	Ask(ctx context.Context, systemPrompt, question string) (string, error)
	Provider() string
}

// Deps are the collaborators the router is built from
type Deps struct {
	Store       storage.Storage
	Logger      *zap.Logger
	Metrics     *metrics.Metrics // optional
	Chat        ChatProvider     // optional; chat proxy answers 503 without it
	CORSOrigins []string         // optional; CORS is off when empty
}

// Handler holds the dependencies shared by all handlers
type Handler struct {
	store   storage.Storage
	chat    ChatProvider
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(deps Deps) *gin.Engine {
	useJSONFieldNames()

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		store:   deps.Store,
		chat:    deps.Chat,
		metrics: deps.Metrics,
		logger:  log,
	}

	router := gin.New()
	router.Use(requestID())
	router.Use(requestLogger(log))
	router.Use(recovery(log))
	router.Use(requestMetrics(deps.Metrics))
	if len(deps.CORSOrigins) > 0 {
		router.Use(corsMiddleware(deps.CORSOrigins))
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, APIError{Message: "Route not found", Code: CodeNotFound})
	})

	router.GET("/health", h.health)
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		api.POST("/users", h.createUser)
		api.GET("/users/by-username/:username", h.getUserByUsername)
		api.GET("/users/:id", h.getUser)

		api.GET("/topics", h.getTopics)
		api.GET("/topics/century/:century", h.getTopicsByCentury)
		api.GET("/topics/:id", h.getTopic)
		api.POST("/topics", h.createTopic)
		api.PUT("/topics/:id", h.updateTopic)
		api.DELETE("/topics/:id", h.deleteTopic)

		api.GET("/topic-contents/:topicId", h.getTopicContent)
		api.POST("/topic-contents", h.createTopicContent)
		api.PUT("/topic-contents/:id", h.updateTopicContent)

		api.GET("/related-topics/:topicId", h.getRelatedTopics)
		api.POST("/related-topics", h.addRelatedTopic)
		api.DELETE("/related-topics/:sourceId/:targetId", h.removeRelatedTopic)

		api.GET("/glossary", h.getGlossaryTerms)
		api.GET("/glossary/:term", h.getGlossaryTerm)
		api.POST("/glossary", h.createGlossaryTerm)

		api.GET("/ai-chats/user/:userId", h.getAiChatsByUser)
		api.GET("/ai-chats/topic/:topicId", h.getAiChatsByTopic)
		api.POST("/ai-chats", h.createAiChat)

		api.GET("/expert-opinions/:topicId", h.getExpertOpinionsByTopic)
		api.POST("/expert-opinions", h.createExpertOpinion)

		api.POST("/ai/chat", h.askChat)
	}

	return router
}

func (h *Handler) health(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Store")
		return
	}
	h.metrics.SetStoreStats(stats)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "counts": stats})
}
