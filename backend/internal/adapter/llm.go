package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	apperrors "rabbithole/backend/pkg/errors"
	"rabbithole/backend/pkg/logger"
)

const maxRetries = 3

// chatCompleter is the slice of the go-openai client the adapter needs
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLMAdapter forwards catalog questions to an OpenAI-compatible endpoint
// (Perplexity, OpenRouter, LiteLLM, OpenAI itself)
type LLMAdapter struct {
	client   chatCompleter
	provider string
	model    string
	timeout  time.Duration
	backoff  time.Duration
	logger   *zap.Logger
}

// NewLLMAdapter creates an adapter. baseURL must include the API version path if the provider needs one.
func NewLLMAdapter(baseURL, apiKey, modelID, provider string, timeout time.Duration) *LLMAdapter {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &LLMAdapter{
		client:   openai.NewClientWithConfig(config),
		provider: provider,
		model:    modelID,
		timeout:  timeout,
		backoff:  time.Second,
		logger:   logger.Get(),
	}
}

// Provider returns the provider name recorded with chats
func (a *LLMAdapter) Provider() string {
	return a.provider
}

// Ask sends one system prompt and one question and returns the answer text.
// Transient failures are retried with linear backoff.
func (a *LLMAdapter) Ask(ctx context.Context, systemPrompt, question string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		Temperature: 0.2,
	}

	var (
		resp    openai.ChatCompletionResponse
		err     error
		attempt int
	)
	for attempt = 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * a.backoff
			a.logger.Warn("Retrying chat request",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", wait),
			)
			select {
			case <-ctx.Done():
				return "", apperrors.NewContextTimeout("chat completion", a.timeout, ctx.Err())
			case <-time.After(wait):
			}
		}

		resp, err = a.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}

		a.logger.Error("Chat request failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("provider", a.provider),
			zap.String("model", a.model),
		)

		if ctx.Err() != nil {
			return "", apperrors.NewContextTimeout("chat completion", a.timeout, ctx.Err())
		}
		if !isRetryable(err) {
			return "", apperrors.NewChatFailed(a.provider, a.model, attempt, false, err)
		}
	}

	if err != nil {
		return "", apperrors.NewChatFailed(a.provider, a.model, maxRetries, true, err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.ErrChatNoAnswer
	}

	answer := resp.Choices[0].Message.Content
	a.logger.Debug("Chat answer received",
		zap.String("provider", a.provider),
		zap.Int("answer_length", len(answer)),
	)
	return answer, nil
}

// isRetryable treats rate limits and server errors as transient; other API errors are final
func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	return true
}
