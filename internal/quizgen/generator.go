// Package quizgen builds generation prompts and turns remote model
// responses into quiz data. One external call per quiz, no retries and
// no partial results. Any failure aborts the attempt and surfaces as a
// single error.
package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/koundinyapidaparthy2/CADMV/internal/llm"
	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
)

// Client generates quizzes through an llm.Provider.
type Client struct {
	provider llm.Provider
	config   Config
}

// New creates a Client. A nil provider is allowed and makes every
// generation attempt fail with ErrCredentialsMissing, which keeps the
// demo flow usable without any configured key.
func New(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, config: cfg}
}

// GenerateQuiz sends one generation request and parses the response
// into quiz data. Known failure modes map to typed errors:
// missing key → ErrCredentialsMissing, auth-shaped provider failures →
// ErrAuthFailed, no text → llm.ErrEmptyResponse, unparsable payload →
// llm.ErrInvalidResponse. Everything else propagates with its original
// message.
func (c *Client) GenerateQuiz(ctx context.Context, cfg quiz.Config, seenHashes []string) (*quiz.QuizData, error) {
	if c.provider == nil {
		return nil, &ErrCredentialsMissing{}
	}

	prompt := BuildPrompt(cfg, seenHashes)

	req := llm.Request{
		System: systemInstruction,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:         QuizSchema,
		MaxTokens:      c.config.MaxTokens,
		Temperature:    c.config.Temperature,
		ThinkingBudget: c.config.effortBudget(cfg.QuestionCount),
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, normalizeError(err)
	}

	var data quiz.QuizData
	if err := json.Unmarshal(resp.Content, &data); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse quiz payload: %w", err),
		}
	}

	// Answers are keyed by question ID, so a blank ID would make a
	// question unanswerable. Backfill any the model omitted.
	for i := range data.Questions {
		if data.Questions[i].QuestionID == "" {
			data.Questions[i].QuestionID = uuid.NewString()
		}
	}

	return &data, nil
}

// Model reports the configured provider's model identifier, or empty
// when no provider is available.
func (c *Client) Model() string {
	if c.provider == nil {
		return ""
	}
	return c.provider.ModelID()
}

// normalizeError folds authentication-shaped failures into ErrAuthFailed
// and lets everything else bubble with its original message.
func normalizeError(err error) error {
	var unauthenticated *llm.ErrUnauthenticated
	if errors.As(err, &unauthenticated) || looksLikeAuthError(err.Error()) {
		return &ErrAuthFailed{Err: err}
	}
	return fmt.Errorf("quiz generation failed: %w", err)
}
