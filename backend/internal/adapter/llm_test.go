package adapter

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	apperrors "rabbithole/backend/pkg/errors"
)

type fakeCompleter struct {
	errs  []error
	reply string
	calls int
	last  openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.last = req
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return openai.ChatCompletionResponse{}, err
	}
	if f.reply == "" {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}},
		},
	}, nil
}

func newTestAdapter(fake *fakeCompleter) *LLMAdapter {
	return &LLMAdapter{
		client:   fake,
		provider: "perplexity",
		model:    "sonar",
		timeout:  time.Second,
		backoff:  time.Millisecond,
		logger:   zap.NewNop(),
	}
}

func TestLLMAdapter_Ask(t *testing.T) {
	fake := &fakeCompleter{reply: "Contrails are water ice."}
	a := newTestAdapter(fake)

	answer, err := a.Ask(context.Background(), "You explain conspiracy theories.", "What are chemtrails?")
	require.NoError(t, err)
	assert.Equal(t, "Contrails are water ice.", answer)
	assert.Equal(t, 1, fake.calls)
	require.Len(t, fake.last.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.last.Messages[0].Role)
	assert.Equal(t, "What are chemtrails?", fake.last.Messages[1].Content)
	assert.Equal(t, "sonar", fake.last.Model)
}

func TestLLMAdapter_RetriesServerErrors(t *testing.T) {
	fake := &fakeCompleter{
		errs:  []error{&openai.APIError{HTTPStatusCode: http.StatusBadGateway, Message: "upstream"}},
		reply: "ok",
	}
	a := newTestAdapter(fake)

	answer, err := a.Ask(context.Background(), "system", "question")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.Equal(t, 2, fake.calls)
}

func TestLLMAdapter_DoesNotRetryClientErrors(t *testing.T) {
	fake := &fakeCompleter{
		errs: []error{&openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}},
	}
	a := newTestAdapter(fake)

	_, err := a.Ask(context.Background(), "system", "question")
	require.Error(t, err)
	assert.Equal(t, 1, fake.calls)

	var chatErr *apperrors.ErrChatFailed
	require.True(t, errors.As(err, &chatErr))
	assert.False(t, chatErr.Retryable)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeChat))
}

func TestLLMAdapter_GivesUpAfterMaxRetries(t *testing.T) {
	boom := errors.New("connection reset")
	fake := &fakeCompleter{errs: []error{boom, boom, boom}}
	a := newTestAdapter(fake)

	_, err := a.Ask(context.Background(), "system", "question")
	require.Error(t, err)
	assert.Equal(t, maxRetries, fake.calls)
	assert.ErrorIs(t, err, boom)
	assert.True(t, apperrors.IsRetryable(err))
}

func TestLLMAdapter_NoChoices(t *testing.T) {
	a := newTestAdapter(&fakeCompleter{})

	_, err := a.Ask(context.Background(), "system", "question")
	assert.ErrorIs(t, err, apperrors.ErrChatNoAnswer)
}

// TestLLMAdapter_Live requires CHAT_API_KEY pointing at a real provider
func TestLLMAdapter_Live(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	apiKey := os.Getenv("CHAT_API_KEY")
	if apiKey == "" {
		t.Skip("CHAT_API_KEY not set")
	}

	a := NewLLMAdapter(os.Getenv("CHAT_BASE_URL"), apiKey, os.Getenv("CHAT_MODEL"), "live", 30*time.Second)
	answer, err := a.Ask(context.Background(), "You are a helpful assistant.", "Say hello in one sentence.")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer == "" {
		t.Error("Expected non-empty answer")
	}
}
