package diff

import (
	"context"
	"fmt"
	"net/http"
	"time"

	vcsurl "github.com/gitsight/go-vcsurl"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

func NewGitHubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(&http.Client{Timeout: 30 * time.Second})
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = 30 * time.Second
	return github.NewClient(tc)
}

// produceViaAPI fetches the three-dot compare diff from the GitHub API
// instead of cloning the fork. Path filters are applied to the returned
// diff since the compare endpoint takes no pathspecs.
func (p *Producer) produceViaAPI(ctx context.Context) (string, error) {
	upstream, err := vcsurl.Parse(p.cfg.UpstreamURL)
	if err != nil {
		return "", fmt.Errorf("parse upstream url %s: %w", p.cfg.UpstreamURL, err)
	}
	fork, err := vcsurl.Parse(p.cfg.ForkURL)
	if err != nil {
		return "", fmt.Errorf("parse fork url %s: %w", p.cfg.ForkURL, err)
	}

	client := NewGitHubClient(p.cfg.GitHubToken)
	head := fmt.Sprintf("%s:%s", fork.Username, p.cfg.ForkBranch)
	p.log.Info("fetching compare diff", "repo", fmt.Sprintf("%s/%s", upstream.Username, upstream.Name),
		"base", p.cfg.UpstreamBranch, "head", head)

	raw, _, err := client.Repositories.CompareCommitsRaw(ctx, upstream.Username, upstream.Name,
		p.cfg.UpstreamBranch, head, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("compare %s...%s: %w", p.cfg.UpstreamBranch, head, err)
	}

	if len(p.cfg.Filters) == 0 {
		return raw, nil
	}
	patterns, err := CompilePatterns(p.cfg.Filters)
	if err != nil {
		return "", err
	}
	included, skipped := patterns.Filter(SplitFiles(raw, p.log))
	for _, f := range skipped {
		p.log.Debug("filtered file from diff", "path", f.Path)
	}
	return JoinFiles(included), nil
}
