package diff

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/niklub/github-scraper/internal/gitrepo"
	"github.com/niklub/github-scraper/internal/logging"
)

// Producer materializes the diff between a fork branch and its upstream
// branch, either by cloning the fork locally or through the GitHub compare
// API.
type Producer struct {
	cfg Config
	log logging.Logger
}

func NewProducer(cfg Config) (*Producer, error) {
	if cfg.ForkURL == "" {
		return nil, fmt.Errorf("fork repository url is required")
	}
	if cfg.ForkBranch == "" {
		return nil, fmt.Errorf("fork branch is required")
	}
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = DefaultUpstreamURL
	}
	if cfg.UpstreamBranch == "" {
		cfg.UpstreamBranch = DefaultUpstreamBranch
	}
	return &Producer{cfg: cfg, log: logging.New(cfg.Logger).WithName("producer")}, nil
}

// Produce resolves both branches and returns the unified diff text restricted
// to the configured path filters. An empty diff is success, not an error.
func (p *Producer) Produce(ctx context.Context) (string, error) {
	if p.cfg.ViaAPI {
		return p.produceViaAPI(ctx)
	}
	return p.produceLocal(ctx)
}

func (p *Producer) produceLocal(ctx context.Context) (string, error) {
	tmpdir, err := os.MkdirTemp("", "forkdiff-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpdir)
	p.log.Debug("created temporary directory", "dir", tmpdir)

	repo := gitrepo.New(gitrepo.RepoConfig{
		URL:     p.cfg.ForkURL,
		Path:    filepath.Join(tmpdir, "forked"),
		Timeout: p.cfg.GitTimeout,
	})

	p.log.Info("cloning fork", "url", p.cfg.ForkURL, "branch", p.cfg.ForkBranch)
	if err := repo.CloneBranch(ctx, p.cfg.ForkBranch); err != nil {
		return "", fmt.Errorf("clone fork: %w", err)
	}
	p.log.Info("adding upstream remote", "url", p.cfg.UpstreamURL)
	if err := repo.AddRemote(ctx, "upstream", p.cfg.UpstreamURL); err != nil {
		return "", fmt.Errorf("add upstream remote: %w", err)
	}
	p.log.Info("fetching upstream branch", "branch", p.cfg.UpstreamBranch)
	if err := repo.FetchBranch(ctx, "upstream", p.cfg.UpstreamBranch); err != nil {
		return "", fmt.Errorf("fetch upstream branch: %w", err)
	}

	rangeSpec := fmt.Sprintf("upstream/%s...HEAD", p.cfg.UpstreamBranch)
	p.log.Debug("computing diff", "range", rangeSpec, "filters", len(p.cfg.Filters))
	out, err := repo.Diff(ctx, rangeSpec, p.cfg.Filters)
	if err != nil {
		return "", fmt.Errorf("compute diff: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		p.log.Info("no differences found between branches")
	}
	return out, nil
}
