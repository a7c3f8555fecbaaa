package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-checker/internal/config"
	"github.com/jonathan/cv-checker/internal/db"
	"github.com/jonathan/cv-checker/internal/fetch"
	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/observability"
	"github.com/jonathan/cv-checker/internal/pipeline"
	"github.com/jonathan/cv-checker/internal/scoring"
	"github.com/jonathan/cv-checker/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV against a job posting",
	Long:  "Analyze a CV (markdown) against a job posting (text file or URL) and print a graded compatibility report.",
	RunE:  runAnalyze,
}

var (
	analyzeCVFile     string
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeConfigFile string
	analyzeAPIKey     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVFile, "cv", "", "Path to CV markdown file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for JavaScript-rendered job boards")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		CV:         analyzeCVFile,
		Job:        analyzeJobFile,
		JobURL:     analyzeJobURL,
		APIKey:     analyzeAPIKey,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	}

	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.CV == "" {
		return fmt.Errorf("--cv is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	logger, err := observability.NewLogger(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	cvBytes, err := os.ReadFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	jobText, err := loadJobText(ctx, cfg, logger)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	orchestrator, err := pipeline.New(client, scoring.DefaultWeights(), logger)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	result, err := orchestrator.Run(ctx, jobText, string(cvBytes), func(event types.ProgressEvent) {
		printer.PrintProgress(event)
	})
	if err != nil {
		return err
	}

	printer.PrintResult(result)

	if cfg.DatabaseURL != "" {
		if err := saveAnalysis(ctx, cfg.DatabaseURL, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save analysis: %v\n", err)
		} else {
			fmt.Fprintf(os.Stdout, "\nSaved analysis %s\n", result.ID)
		}
	}

	return nil
}

func loadJobText(ctx context.Context, cfg config.Config, logger *zap.Logger) (string, error) {
	if cfg.Job != "" {
		jobBytes, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(jobBytes), nil
	}

	fetcher := fetch.New(&fetch.Options{UseBrowser: cfg.UseBrowser}, logger)
	return fetcher.JobPosting(ctx, cfg.JobURL)
}

func saveAnalysis(ctx context.Context, databaseURL string, result *types.AnalysisResult) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	return database.SaveAnalysis(ctx, result)
}
