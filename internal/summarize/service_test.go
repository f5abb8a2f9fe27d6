package summarize

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/niklub/github-scraper/internal/prompt"
)

type stubClient struct {
	prompts []string
	reply   string
	err     error
}

func (s *stubClient) Complete(_ context.Context, p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestSummarizeSendsRenderedPrompt(t *testing.T) {
	client := &stubClient{reply: "## Summary"}
	svc := New(prompt.Default(), client, 0, logr.Discard())

	got, err := svc.Summarize(context.Background(), "+++ b/f.py\n+foo\n-bar\n+baz")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got != "## Summary" {
		t.Fatalf("unexpected reply %q", got)
	}
	if len(client.prompts) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(client.prompts))
	}
	if !strings.Contains(client.prompts[0], "+foo\n+baz") {
		t.Fatalf("prompt missing reduced diff: %q", client.prompts[0])
	}
	if strings.Contains(client.prompts[0], "-bar") {
		t.Fatalf("prompt contains removed line: %q", client.prompts[0])
	}
}

func TestSummarizeEmptyDiffStillPrompts(t *testing.T) {
	client := &stubClient{reply: "no changes"}
	svc := New(prompt.Default(), client, 0, logr.Discard())

	if _, err := svc.Summarize(context.Background(), ""); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(client.prompts) != 1 || client.prompts[0] == "" {
		t.Fatalf("expected a non-empty prompt for an empty diff")
	}
}

func TestSummarizeChunksOversizedDiff(t *testing.T) {
	oldEstimate := estimateTokens
	estimateTokens = func(text string) int { return len(text) / 4 }
	defer func() { estimateTokens = oldEstimate }()

	var lines []string
	for i := 0; i < 400; i++ {
		lines = append(lines, fmt.Sprintf("+added line %d", i))
	}
	diffText := strings.Join(lines, "\n")

	client := &stubClient{reply: "part"}
	svc := New(prompt.Default(), client, 100, logr.Discard())

	if _, err := svc.Summarize(context.Background(), diffText); err != nil {
		t.Fatalf("summarize: %v", err)
	}
	// at least two part calls plus the combining call
	if len(client.prompts) < 3 {
		t.Fatalf("expected chunked completion calls, got %d", len(client.prompts))
	}
	last := client.prompts[len(client.prompts)-1]
	if !strings.Contains(last, "part") {
		t.Fatalf("combining prompt missing partial summaries: %q", last)
	}
}

func TestSummarizeChunkFailurePropagates(t *testing.T) {
	oldEstimate := estimateTokens
	estimateTokens = func(text string) int { return len(text) / 4 }
	defer func() { estimateTokens = oldEstimate }()

	diffText := strings.Repeat("+line\n", 500)
	client := &stubClient{err: fmt.Errorf("boom")}
	svc := New(prompt.Default(), client, 50, logr.Discard())

	if _, err := svc.Summarize(context.Background(), diffText); err == nil {
		t.Fatalf("expected error from failing client")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{Model: "gpt-4o-mini"})
	if err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), "api key") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient(Config{APIKey: "sk-test"}); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
