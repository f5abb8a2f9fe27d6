package summarize

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/niklub/github-scraper/internal/diff"
	"github.com/niklub/github-scraper/internal/logging"
	"github.com/niklub/github-scraper/internal/prompt"
)

const approxCharsPerToken = 4

var estimateTokens = diff.EstimateTokens

// Service turns diff text into a Markdown summary: reduce to added lines,
// render the prompt template and send it to the completion client.
type Service struct {
	tmpl   prompt.Template
	client CompletionClient
	budget int // max prompt tokens for a single completion call; 0 disables chunking
	log    logging.Logger
}

func New(tmpl prompt.Template, client CompletionClient, budget int, base logr.Logger) *Service {
	return &Service{
		tmpl:   tmpl,
		client: client,
		budget: budget,
		log:    logging.New(base).WithName("summarize"),
	}
}

// Summarize returns the model's reply verbatim. An empty diff is not an
// error: the model still receives the rendered template.
func (s *Service) Summarize(ctx context.Context, diffText string) (string, error) {
	reduced, lines := diff.Reduce(diffText)
	tokens := estimateTokens(reduced)
	s.log.Info("reduced diff to added lines", "lines", lines, "tokens", tokens)

	if !s.tmpl.HasPlaceholder() {
		s.log.Info("prompt template has no placeholder token; diff content will be dropped",
			"placeholder", prompt.Placeholder)
	}

	if s.budget > 0 && tokens > s.budget {
		return s.summarizeChunked(ctx, reduced)
	}
	return s.client.Complete(ctx, s.tmpl.Render(reduced))
}

// summarizeChunked splits an oversized reduced diff, summarizes the parts
// sequentially and asks the model to merge the partial summaries.
func (s *Service) summarizeChunked(ctx context.Context, reduced string) (string, error) {
	targetTokens := s.budget * 3 / 4
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithSeparators([]string{"\n", ""}),
		textsplitter.WithChunkSize(targetTokens*approxCharsPerToken),
		textsplitter.WithChunkOverlap(targetTokens/8*approxCharsPerToken),
	)

	parts, err := splitter.SplitText(reduced)
	if err != nil || len(parts) == 0 {
		s.log.Error(err, "splitting reduced diff failed; sending full prompt")
		return s.client.Complete(ctx, s.tmpl.Render(reduced))
	}
	s.log.Info("diff exceeds context budget; summarizing in parts", "parts", len(parts))

	partials := make([]string, 0, len(parts))
	for i, part := range parts {
		s.log.Debug(fmt.Sprintf("summarizing part %d/%d", i+1, len(parts)))
		p := strings.ReplaceAll(chunkPromptTemplate, "{{.Index}}", strconv.Itoa(i+1))
		p = strings.ReplaceAll(p, "{{.Total}}", strconv.Itoa(len(parts)))
		p = strings.ReplaceAll(p, "{{.Text}}", part)
		out, err := s.client.Complete(ctx, p)
		if err != nil {
			return "", fmt.Errorf("summarize part %d/%d: %w", i+1, len(parts), err)
		}
		partials = append(partials, out)
	}

	combined := strings.ReplaceAll(combinePromptTemplate, "{{.Text}}", strings.Join(partials, "\n"))
	return s.client.Complete(ctx, combined)
}
