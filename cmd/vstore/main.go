// Package main provides the vstore CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ducnh/vstore/internal/config"
	"github.com/ducnh/vstore/internal/openai"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	// verboseOutput enables debug logging to stderr
	verboseOutput bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vstore",
	Short: "Agent-first hosted vector store and RAG CLI",
	Long: `vstore is an agent-first CLI for hosted vector stores.

Core features:
  - Vector store lifecycle (create, list, get, delete)
  - File ingestion from local paths and URLs with chunking control
  - Attribute-based file lookup and metadata updates
  - Semantic retrieval of ranked snippets
  - Grounded question answering with citations over indexed files
  - Multi-turn chat via server-side conversations

All commands output JSON by default for AI agent integration.
Use --human flag for human-readable output.

Environment Variables:
  OPENAI_API_KEY  Your OpenAI API key (required)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for OPENAI_API_KEY)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&verboseOutput, "verbose", false, "Enable debug logging to stderr")
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			exitWithError(ExitConfigError, "%v\n\nSet OPENAI_API_KEY in the environment or a .env file, or add api_key to %s.", err, config.Path())
		}
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if cfg.Verbose {
		verboseOutput = true
	}
	return cfg
}

// newLogger builds the CLI logger. Quiet by default so JSON output on
// stdout stays machine-parseable; --verbose turns on debug logs to stderr.
func newLogger() *zap.Logger {
	if !verboseOutput {
		return zap.NewNop()
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newBackend builds the API client from loaded configuration.
func newBackend(cfg *config.Config, logger *zap.Logger) *openai.Client {
	opts := []openai.ClientOption{
		openai.WithAPIKey(cfg.APIKey),
		openai.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	return openai.NewClient(opts...)
}
