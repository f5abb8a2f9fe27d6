package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/niklub/github-scraper/internal/config"
	"github.com/niklub/github-scraper/internal/diff"
	"github.com/niklub/github-scraper/internal/logging"
	"github.com/niklub/github-scraper/internal/output"
	"github.com/niklub/github-scraper/internal/prompt"
	"github.com/niklub/github-scraper/internal/summarize"
)

// forkreport runs the whole pipeline in one process: produce the diff
// artifact, verify it exists, then summarize it.
func main() {
	var (
		originalURL    string
		originalBranch string
		diffFile       string
		filters        []string
		filtersFile    string
		viaAPI         bool
		promptPath     string
		outputPath     string
		verbose        bool
	)

	root := &cobra.Command{
		Use:   "forkreport <fork_url> <fork_branch>",
		Short: "Produce a fork-vs-upstream diff and summarize it in one run",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := logging.FromVerbosity(verbose).WithName("forkreport")
			logger := logging.New(base)

			resolved, err := resolveFilters(cmd, filters, filtersFile)
			if err != nil {
				return err
			}

			gitTimeout, err := time.ParseDuration(config.GitTimeout())
			if err != nil {
				return fmt.Errorf("invalid git_timeout: %w", err)
			}
			callTimeout, err := time.ParseDuration(config.LLMCallTimeout())
			if err != nil {
				return fmt.Errorf("invalid llm_call_timeout: %w", err)
			}

			// Build the summarizer first so a missing credential fails
			// before any git or network work.
			tmpl, err := loadTemplate(cmd, promptPath)
			if err != nil {
				return err
			}
			client, err := summarize.NewClient(summarize.Config{
				APIKey:          config.APIKey(),
				Model:           config.ModelName(),
				MaxOutputTokens: config.MaxOutputTokens(),
				CallTimeout:     callTimeout,
				Logger:          base,
			})
			if err != nil {
				return err
			}

			producer, err := diff.NewProducer(diff.Config{
				ForkURL:        args[0],
				ForkBranch:     args[1],
				UpstreamURL:    originalURL,
				UpstreamBranch: originalBranch,
				Filters:        resolved,
				ViaAPI:         viaAPI,
				GitHubToken:    config.GitHubToken(),
				GitTimeout:     gitTimeout,
				Logger:         base,
			})
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			text, err := producer.Produce(ctx)
			if err != nil {
				return err
			}
			writer := output.New(logger)
			if err := writer.Write(diffFile, text); err != nil {
				return err
			}
			if _, err := os.Stat(diffFile); err != nil {
				return fmt.Errorf("diff artifact %s was not produced: %w", diffFile, err)
			}
			additions, deletions := diff.Stats(text)
			logger.Info("diff artifact ready", "path", diffFile, "additions", additions, "deletions", deletions)

			svc := summarize.New(tmpl, client, config.MaxContextTokens(), base)
			summary, err := svc.Summarize(ctx, text)
			if err != nil {
				return err
			}
			return writer.Write(outputPath, summary)
		},
	}

	root.Flags().StringVar(&originalURL, "original_url", diff.DefaultUpstreamURL, "URL of the original repository")
	root.Flags().StringVar(&originalBranch, "original_branch", diff.DefaultUpstreamBranch, "Branch in the original repository")
	root.Flags().StringVar(&diffFile, "output_file", diff.DefaultOutputFile, "Path to the plain text file to save the diff output")
	root.Flags().StringSliceVarP(&filters, "file-filters", "f", nil, "File filters to apply to the diff (e.g. *.py)")
	root.Flags().StringVar(&filtersFile, "filters-file", "", "YAML file with a list of file filters")
	root.Flags().BoolVar(&viaAPI, "via-api", false, "Fetch the diff through the GitHub compare API instead of cloning")
	root.Flags().StringVar(&promptPath, "prompt", "prompt.txt", "Path to the prompt template")
	root.Flags().StringVar(&outputPath, "output", "output", "Path to save the summary; empty writes to the console")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("forkreport: %v", err)
	}
}

func resolveFilters(cmd *cobra.Command, flagFilters []string, filtersFile string) ([]string, error) {
	if cmd.Flags().Changed("file-filters") {
		return flagFilters, nil
	}
	if filtersFile != "" {
		return diff.LoadFilterFile(filtersFile)
	}
	return diff.DefaultFilters(), nil
}

func loadTemplate(cmd *cobra.Command, path string) (prompt.Template, error) {
	tmpl, err := prompt.Load(path)
	if err == nil {
		return tmpl, nil
	}
	if !cmd.Flags().Changed("prompt") && errors.Is(err, os.ErrNotExist) {
		return prompt.Default(), nil
	}
	return prompt.Template{}, err
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()
	return ctx, cancel
}
