// Package gateway is the boundary to the external language model used for
// general-question answering. The dialogue controller only sees the
// Generator interface, so the state machine tests run against a fake.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// DefaultTimeout bounds one generation call. There are no retries: a failed
// turn surfaces as conversation text and the next turn starts fresh.
const DefaultTimeout = 30 * time.Second

// Generator produces one assistant reply for a prompt message sequence.
type Generator interface {
	Generate(ctx context.Context, msgs []*schema.Message) (string, error)
}

// Config configures the chat-model backend. BaseURL points at any
// OpenAI-compatible server, e.g. a local LM Studio instance.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Model wraps an eino chat model with a bounded per-call timeout.
type Model struct {
	cm      model.BaseChatModel
	timeout time.Duration
}

// NewModel builds the OpenAI-compatible chat model from cfg.
func NewModel(ctx context.Context, cfg Config) (*Model, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return WrapModel(cm, cfg.Timeout), nil
}

// WrapModel adapts any eino chat model into a Generator.
func WrapModel(cm model.BaseChatModel, timeout time.Duration) *Model {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Model{cm: cm, timeout: timeout}
}

func (m *Model) Generate(ctx context.Context, msgs []*schema.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := m.cm.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return resp.Content, nil
}

var _ Generator = (*Model)(nil)
