package main

import (
	"context"
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
)

func main() {
	var (
		originalURL    string
		originalBranch string
		outputFile     string
		filters        []string
		filtersFile    string
		viaAPI         bool
		verbose        bool
	)

	root := &cobra.Command{
		Use:   "getdiff <fork_url> <fork_branch>",
		Short: "Collect code differences between a fork and its original repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := logging.FromVerbosity(verbose).WithName("getdiff")
			logger := logging.New(base)

			resolved, err := resolveFilters(cmd, filters, filtersFile)
			if err != nil {
				return err
			}

			gitTimeout, err := time.ParseDuration(config.GitTimeout())
			if err != nil {
				return fmt.Errorf("invalid git_timeout: %w", err)
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

			if err := output.New(logger).Write(outputFile, text); err != nil {
				return err
			}

			additions, deletions := diff.Stats(text)
			if outputFile != "" {
				fmt.Printf("Diff output saved to: %s\n", outputFile)
			}
			fmt.Printf("Summary: %d additions, %d deletions.\n", additions, deletions)
			return nil
		},
	}

	root.Flags().StringVar(&originalURL, "original_url", diff.DefaultUpstreamURL, "URL of the original repository")
	root.Flags().StringVar(&originalBranch, "original_branch", diff.DefaultUpstreamBranch, "Branch in the original repository")
	root.Flags().StringVar(&outputFile, "output_file", diff.DefaultOutputFile, "Path to the plain text file to save the diff output")
	root.Flags().StringSliceVarP(&filters, "file-filters", "f", nil, "File filters to apply to the diff (e.g. *.py)")
	root.Flags().StringVar(&filtersFile, "filters-file", "", "YAML file with a list of file filters")
	root.Flags().BoolVar(&viaAPI, "via-api", false, "Fetch the diff through the GitHub compare API instead of cloning")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("getdiff: %v", err)
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

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()
	return ctx, cancel
}
