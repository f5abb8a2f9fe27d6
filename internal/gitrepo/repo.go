package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type RepoConfig struct {
	URL     string
	Path    string
	Timeout time.Duration // default: 2m
}

type Repo struct {
	cfg    RepoConfig
	runner Runner
}

func New(cfg RepoConfig) *Repo {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Repo{cfg: cfg, runner: Runner{Timeout: cfg.Timeout}}
}

type Runner struct {
	Timeout time.Duration
}

func (r Runner) Git(ctx context.Context, dir string, args ...string) (string, error) {
	c := exec.CommandContext(ctx, "git", args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Start(); err != nil {
		return "", formatGitError(args, err, stderr.String())
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return "", formatGitError(args, err, stderr.String())
		}
		return stdout.String(), nil
	case <-time.After(r.Timeout):
		_ = c.Process.Kill()
		<-done
		return "", formatGitTimeoutError(args, r.Timeout, stderr.String())
	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		return "", formatGitContextError(args, ctx.Err(), stderr.String())
	}
}

func formatGitError(args []string, cause error, stderr string) error {
	cmd := strings.Join(args, " ")
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("git %s: %w: %s", cmd, cause, stderr)
	}
	return fmt.Errorf("git %s: %w", cmd, cause)
}

func formatGitTimeoutError(args []string, timeout time.Duration, stderr string) error {
	return formatGitError(args, fmt.Errorf("command timed out after %s", timeout), stderr)
}

func formatGitContextError(args []string, cause error, stderr string) error {
	if cause == nil {
		cause = errors.New("context canceled")
	}
	return formatGitError(args, cause, stderr)
}

// Run is a helper to execute arbitrary git subcommands in the repo path.
func (r *Repo) Run(ctx context.Context, args ...string) (string, error) {
	return r.runner.Git(ctx, r.cfg.Path, args...)
}

// CloneBranch clones the configured URL at the given branch into the repo path.
func (r *Repo) CloneBranch(ctx context.Context, branch string) error {
	_, err := r.runner.Git(ctx, "", "clone", "--branch", branch, r.cfg.URL, r.cfg.Path)
	return err
}

// AddRemote registers an additional named remote.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	_, err := r.runner.Git(ctx, r.cfg.Path, "remote", "add", name, url)
	return err
}

// FetchBranch fetches a single branch from the named remote.
func (r *Repo) FetchBranch(ctx context.Context, remote, branch string) error {
	_, err := r.runner.Git(ctx, r.cfg.Path, "fetch", remote, branch)
	return err
}

// Diff returns the unified diff for rangeSpec, optionally restricted to the
// given pathspecs. An empty diff is not an error.
func (r *Repo) Diff(ctx context.Context, rangeSpec string, pathspecs []string) (string, error) {
	args := []string{"diff", "--no-color", "--no-ext-diff", rangeSpec}
	if len(pathspecs) > 0 {
		args = append(args, "--")
		args = append(args, pathspecs...)
	}
	return r.runner.Git(ctx, r.cfg.Path, args...)
}

// HeadSHA resolves the current HEAD commit.
func (r *Repo) HeadSHA(ctx context.Context) (string, error) {
	out, err := r.runner.Git(ctx, r.cfg.Path, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
