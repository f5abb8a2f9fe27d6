package summarize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// CompletionClient is the boundary to the hosted language model: one prompt
// in, one text blob out, or an error.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey          string
	Model           string
	MaxOutputTokens int
	CallTimeout     time.Duration
	Logger          logr.Logger
}

type llmClient struct {
	llm       *openai.LLM
	log       logr.Logger
	maxTokens int
	to        time.Duration
}

// NewClient builds the OpenAI-backed completion client. The API key is
// resolved by the caller before construction; an empty key fails here,
// before any network use.
func NewClient(cfg Config) (CompletionClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required (set OPENAI_API_KEY)")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model name is required")
	}

	client, err := openai.New(openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model))
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &llmClient{llm: client, log: cfg.Logger, maxTokens: cfg.MaxOutputTokens, to: cfg.CallTimeout}, nil
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}

	var opts []llms.CallOption
	if c.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(c.maxTokens))
	}

	if c.log.V(1).Enabled() {
		c.log.V(1).Info("sending completion request", "prompt_chars", len(prompt))
	}
	resp, err := c.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", c.annotateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Content, nil
}

func (c *llmClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

func (c *llmClient) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("llm call timed out after %s: %w", c.to, err)
	}
	return err
}

var _ CompletionClient = (*llmClient)(nil)
