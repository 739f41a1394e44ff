package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"rabbithole/backend/internal/storage"
	apperrors "rabbithole/backend/pkg/errors"
)

const baseSystemPrompt = "You are a careful research assistant for a catalog of conspiracy theories. " +
	"Explain where a claim came from, what evidence is cited for it, and what the evidence actually shows. " +
	"Be concise and neutral."

type askResponse struct {
	Answer   string          `json:"answer"`
	Provider string          `json:"provider"`
	Chat     *storage.AiChat `json:"chat,omitempty"`
}

// askChat forwards a question to the configured provider.
// With userId the exchange is recorded; with topicId the topic primes the prompt.
func (h *Handler) askChat(c *gin.Context) {
	if h.chat == nil {
		h.metrics.ObserveChat("none", "unavailable")
		respondError(c, http.StatusServiceUnavailable, APIError{
			Message: "AI chat is not configured",
			Code:    CodeChatUnavailable,
			Detail:  apperrors.ErrChatUnavailable.Error(),
		})
		return
	}

	var req askRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	provider := h.chat.Provider()

	prompt := baseSystemPrompt
	if req.TopicID != nil {
		topic, err := h.store.GetTopic(ctx, *req.TopicID)
		switch {
		case err == nil:
			prompt = topicPrompt(topic)
		case !storage.IsNotFound(err):
			h.fail(c, err, "Topic")
			return
		}
	}

	answer, err := h.chat.Ask(ctx, prompt, req.Question)
	if err != nil {
		h.metrics.ObserveChat(provider, "error")
		h.logger.Error("Chat proxy failed", zap.Error(err), zap.String("provider", provider))
		respondInternal(c, err)
		return
	}
	h.metrics.ObserveChat(provider, "ok")

	resp := askResponse{Answer: answer, Provider: provider}
	if req.UserID != nil {
		chat, err := h.store.CreateAiChat(ctx, storage.NewAiChat{
			UserID:   *req.UserID,
			TopicID:  req.TopicID,
			Question: req.Question,
			Answer:   answer,
			Provider: provider,
		})
		if err != nil {
			h.fail(c, err, "AI chat")
			return
		}
		resp.Chat = &chat
	}

	c.JSON(http.StatusOK, resp)
}

func topicPrompt(topic storage.Topic) string {
	var b strings.Builder
	b.WriteString(baseSystemPrompt)
	fmt.Fprintf(&b, "\n\nThe reader is viewing the topic %q (%dth century)", topic.Title, topic.Century)
	if topic.FirstMentionedYear != nil {
		fmt.Fprintf(&b, ", first mentioned in %d", *topic.FirstMentionedYear)
	}
	b.WriteString(".")
	if topic.ShortDescription != nil && *topic.ShortDescription != "" {
		b.WriteString(" Summary: ")
		b.WriteString(*topic.ShortDescription)
	}
	return b.String()
}
