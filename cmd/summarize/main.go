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
	"github.com/niklub/github-scraper/internal/logging"
	"github.com/niklub/github-scraper/internal/output"
	"github.com/niklub/github-scraper/internal/prompt"
	"github.com/niklub/github-scraper/internal/summarize"
)

func main() {
	var (
		promptPath string
		outputPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "summarize <diff_file>",
		Short: "Summarize a diff file with a hosted language model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := logging.FromVerbosity(verbose).WithName("summarize")
			logger := logging.New(base)

			diffPath := args[0]
			data, err := os.ReadFile(diffPath)
			if err != nil {
				return fmt.Errorf("read diff file %s: %w", diffPath, err)
			}

			tmpl, err := loadTemplate(cmd, promptPath)
			if err != nil {
				return err
			}

			callTimeout, err := time.ParseDuration(config.LLMCallTimeout())
			if err != nil {
				return fmt.Errorf("invalid llm_call_timeout: %w", err)
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

			svc := summarize.New(tmpl, client, config.MaxContextTokens(), base)

			ctx, cancel := signalContext()
			defer cancel()

			summary, err := svc.Summarize(ctx, string(data))
			if err != nil {
				return err
			}
			return output.New(logger).Write(outputPath, summary)
		},
	}

	root.Flags().StringVar(&promptPath, "prompt", "prompt.txt", "Path to the prompt template")
	root.Flags().StringVar(&outputPath, "output", "output", "Path to save the summary; empty writes to the console")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("summarize: %v", err)
	}
}

// loadTemplate resolves the prompt template. An explicitly requested path
// must exist; the default prompt.txt falls back to the built-in template
// when absent.
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
