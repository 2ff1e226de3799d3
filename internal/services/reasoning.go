package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"talentlink/shortlist-engine/internal/config"
)

var (
	// ErrNotConfigured means no API key is present. Not an error state:
	// the shortlist service folds it into a fallback evaluation.
	ErrNotConfigured = errors.New("reasoning service not configured")

	// ErrReasoningUnavailable means all retry attempts were exhausted.
	ErrReasoningUnavailable = errors.New("reasoning service unavailable")
)

type ReasoningService interface {
	Enabled() bool
	Model() string
	// GenerateEvaluation sends the prompt to the chat-completion endpoint
	// and returns the raw content of the first choice. Transient failures
	// are retried with linear backoff; exhaustion yields
	// ErrReasoningUnavailable. Malformed JSON inside the content is not
	// this layer's concern.
	GenerateEvaluation(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type reasoningService struct {
	client      openai.Client
	model       string
	enabled     bool
	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
}

func NewReasoningService(cfg config.ReasoningConfig, maxAttempts int, retryDelay time.Duration) ReasoningService {
	if cfg.APIKey == "" {
		log.Println("⚠️  No reasoning API key configured. Running in fallback-only mode.")
		return &reasoningService{
			enabled: false,
			model:   "fallback-scorer",
		}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// The engine owns the retry policy; the SDK must not add its own.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &reasoningService{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		enabled:     true,
		timeout:     cfg.Timeout,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
	}
}

// Enabled implements ReasoningService.
func (r *reasoningService) Enabled() bool {
	return r.enabled
}

// Model implements ReasoningService.
func (r *reasoningService) Model() string {
	return r.model
}

// GenerateEvaluation implements ReasoningService.
func (r *reasoningService) GenerateEvaluation(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !r.enabled {
		return "", ErrNotConfigured
	}

	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		content, err := r.complete(ctx, systemPrompt, userPrompt)
		if err == nil {
			return content, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < r.maxAttempts {
			backoff := time.Duration(attempt) * r.retryDelay
			log.Printf("⚠️ Reasoning attempt %d failed: %v. Retrying in %s...\n", attempt, err, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			}
		}
	}

	return "", fmt.Errorf("%w: failed after %d attempts: %v", ErrReasoningUnavailable, r.maxAttempts, lastErr)
}

func (r *reasoningService) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: r.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:   openai.Int(2000),
		Temperature: openai.Float(0.3),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in response")
	}

	return content, nil
}
