package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-checker/internal/config"
	"github.com/jonathan/cv-checker/internal/db"
	"github.com/jonathan/cv-checker/internal/fetch"
	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/observability"
	"github.com/jonathan/cv-checker/internal/pipeline"
	"github.com/jonathan/cv-checker/internal/scoring"
	"github.com/jonathan/cv-checker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server exposing analyze, streaming analyze, and stored-analysis endpoints.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveAPIKey     string
	serveDBURL      string
	serveCORSOrigin string
	serveUseBrowser bool
	serveJSONLogs   bool
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for result storage (overrides DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveCORSOrigin, "cors-origin", "", "Allowed CORS origin (default *)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for JavaScript-rendered job boards")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		APIKey:      serveAPIKey,
		DatabaseURL: serveDBURL,
		CORSOrigin:  serveCORSOrigin,
		UseBrowser:  serveUseBrowser,
		JSONLogs:    serveJSONLogs,
		Verbose:     serveVerbose,
	}

	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = config.DefaultPort
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

	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	orchestrator, err := pipeline.New(client, scoring.DefaultWeights(), logger)
	if err != nil {
		return err
	}

	// Result storage is optional: without DATABASE_URL the server still
	// analyzes, it just cannot list or replay past results.
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return err
		}
	}

	fetcher := fetch.New(&fetch.Options{UseBrowser: cfg.UseBrowser}, logger)

	srv := server.New(server.Config{
		Port:       cfg.Port,
		CORSOrigin: cfg.CORSOrigin,
	}, orchestrator, database, fetcher, logger)

	return srv.Start()
}
