package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/carein/call-summary/pkg/config"
)

// FallbackSummary is stored whenever the language model cannot produce a summary
const FallbackSummary = "Summary (mocked): This is a fallback summary because the OpenAI API is unavailable." +
	"Key points and actions from the transcript would appear here!"

const (
	systemPrompt = "You are a helpful assistant that summarizes dental office phone calls. " +
		"Focus on key points, patient concerns, and any actions needed."
	userPromptFormat = "Please summarize this dental office phone call transcript:\n\n%s"

	defaultModel       = openai.GPT3Dot5Turbo
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	defaultTimeout     = 30 * time.Second
)

var errEmptyCompletion = errors.New("empty completion from language model")

// Result is the outcome of one generation.
// Text is always safe to store: it holds the model output or FallbackSummary.
type Result struct {
	Text     string
	Fallback bool
	Err      error
}

// Summarizer produces summaries for call transcripts
type Summarizer interface {
	Generate(ctx context.Context, transcript string) Result
}

// OpenAISummarizer calls an OpenAI-compatible chat-completion endpoint
type OpenAISummarizer struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

// NewOpenAISummarizer creates the summarizer from config. BaseURL may point at any
// OpenAI-compatible provider such as Groq.
func NewOpenAISummarizer(cfg *config.OpenAIConfig, logger *zap.Logger) *OpenAISummarizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &OpenAISummarizer{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}
}

// Generate requests a summary. Failures never escape as errors: the fallback text is
// returned with Fallback set and the cause in Err.
func (s *OpenAISummarizer) Generate(ctx context.Context, transcript string) Result {
	start := time.Now()
	text, err := s.complete(ctx, transcript)
	if err != nil {
		s.logger.Warn("summary generation failed, using fallback",
			zap.String("model", s.model),
			zap.Int("transcript_len", len(transcript)),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return Result{Text: FallbackSummary, Fallback: true, Err: err}
	}

	s.logger.Debug("summary generated",
		zap.String("model", s.model),
		zap.Duration("latency", time.Since(start)),
	)
	return Result{Text: text}
}

func (s *OpenAISummarizer) complete(ctx context.Context, transcript string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(userPromptFormat, transcript),
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyCompletion
	}
	return text, nil
}
