package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/agents"
	"github.com/deepnoodle-ai/brief/config"
	"github.com/deepnoodle-ai/brief/llm"
	"github.com/deepnoodle-ai/brief/postgres"
	"github.com/deepnoodle-ai/brief/rag"
	"github.com/deepnoodle-ai/brief/server"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "brief",
	Short: "Generate structured content briefs with a multi-agent LLM pipeline",
	Long: `brief runs a fixed sequence of specialized LLM agents that turn a
short marketing prompt into a complete content brief: post type,
copy, captions, visual direction, video script and data-backed
optimization advice.`,
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a content brief from a prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve brief generation over HTTP",
	RunE:  runServe,
}

var (
	flagLanguage string
	flagOutput   string
	flagFormat   string
	flagLogsDir  string
	flagNoRAG    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	generateCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "force output language (en or es)")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the brief to a file instead of stdout")
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "json", "output format: json or yaml")
	generateCmd.Flags().StringVar(&flagLogsDir, "logs", "", "directory for per-run stage logs")
	generateCmd.Flags().BoolVar(&flagNoRAG, "no-rag", false, "disable benchmark retrieval")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() *slog.Logger {
	if verbose {
		return brief.NewLogger()
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildClient assembles the provider chain from configuration. Gemini
// is preferred; Groq serves as fallback when both are configured.
func buildClient(cfg *config.Config) (llm.Client, string, error) {
	var clients []llm.Client
	model := ""
	if key := cfg.Providers.Gemini.APIKey; key != "" {
		client, err := llm.NewGeminiClient(llm.GeminiOptions{
			APIKey: key,
			Model:  cfg.Providers.Gemini.Model,
		})
		if err != nil {
			return nil, "", err
		}
		clients = append(clients, client)
		model = cfg.Providers.Gemini.Model
	}
	if key := cfg.Providers.Groq.APIKey; key != "" {
		client, err := llm.NewGroqClient(llm.GroqOptions{
			APIKey: key,
			Model:  cfg.Providers.Groq.Model,
		})
		if err != nil {
			return nil, "", err
		}
		clients = append(clients, client)
		if model == "" {
			model = cfg.Providers.Groq.Model
		}
	}
	if len(clients) == 0 {
		return nil, "", fmt.Errorf("no provider configured; set BRIEF_PROVIDERS_GEMINI_API_KEY or BRIEF_PROVIDERS_GROQ_API_KEY")
	}
	if len(clients) == 1 {
		return clients[0], model, nil
	}
	return llm.NewFallback(clients...), model, nil
}

// buildRetriever opens the benchmark store and seeds it on first use.
// Retrieval degrades to keyword scoring when no Gemini key is
// available for embeddings.
func buildRetriever(ctx context.Context, cfg *config.Config, logger *slog.Logger) (rag.Retriever, func(), error) {
	if !cfg.RAG.Enabled || flagNoRAG {
		return nil, func() {}, nil
	}
	var embedder rag.Embedder
	if key := cfg.Providers.Gemini.APIKey; key != "" {
		e, err := rag.NewGenAIEmbedder(ctx, rag.GenAIEmbedderOptions{
			APIKey: key,
			Model:  cfg.RAG.EmbeddingModel,
		})
		if err != nil {
			logger.Warn("embedder unavailable, using keyword retrieval", "error", err)
		} else {
			embedder = e
		}
	}
	store, err := rag.NewStore(rag.StoreOptions{
		Path:     cfg.RAG.Path,
		Embedder: embedder,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open benchmark store: %w", err)
	}
	if err := store.Seed(ctx, rag.DefaultBenchmarks()); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to seed benchmarks: %w", err)
	}
	return store, func() { store.Close() }, nil
}

func buildPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger, callbacks brief.RunCallbacks) (*brief.Pipeline, func(), error) {
	client, model, err := buildClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	retriever, cleanup, err := buildRetriever(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var runLogger brief.RunLogger
	if flagLogsDir != "" {
		runLogger = brief.NewFileRunLogger(flagLogsDir)
	}

	pipeline, err := brief.NewPipeline(brief.PipelineOptions{
		Stages:       agents.DefaultStages(client, retriever),
		Model:        model,
		Logger:       logger,
		RunLogger:    runLogger,
		Callbacks:    callbacks,
		MaxRetries:   cfg.Pipeline.MaxRetries,
		BaseWait:     cfg.Pipeline.BaseWait,
		StageTimeout: cfg.Pipeline.StageTimeout,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return pipeline, cleanup, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, cleanup, err := buildPipeline(ctx, cfg, logger, brief.NewConsoleFormatter())
	if err != nil {
		return err
	}
	defer cleanup()

	lang := flagLanguage
	if lang == "" {
		lang = cfg.Pipeline.Language
	}
	result, err := pipeline.Run(ctx, brief.Request{
		Prompt:   args[0],
		Language: lang,
	})
	if err != nil {
		color.Red("Generation failed: %v", err)
		if result != nil {
			for _, msg := range result.Errors {
				color.Red("  %s", msg)
			}
		}
		return err
	}

	var data []byte
	switch strings.ToLower(flagFormat) {
	case "json":
		data, err = brief.ExportJSON(result.Brief)
	case "yaml", "yml":
		data, err = brief.ExportYAML(result.Brief)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", flagFormat)
	}
	if err != nil {
		return err
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", flagOutput, err)
		}
		color.Green("Brief written to %s", flagOutput)
		return nil
	}
	fmt.Println(string(data))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, cleanup, err := buildPipeline(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	var store server.RunStore
	if dsn := cfg.Postgres.DSN; dsn != "" {
		pgStore, err := postgres.NewStore(ctx, dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pgStore.Close()
		store = pgStore
		color.Blue("Run history: postgres")
	}

	srv, err := server.New(server.Options{
		Runner: pipeline,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Addr)
	}()
	color.Green("Listening on %s", cfg.Server.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
