package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-agent/internal/config"
	"github.com/jonathan/interview-agent/internal/evaluator"
	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/store"
)

// loadSettings resolves the effective configuration: config file values,
// overlaid with environment variables and CLI flags (flags win).
func loadSettings() (config.Config, error) {
	var cfg config.Config

	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return cfg, err
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if flagBank != "" {
		cfg.BankFile = flagBank
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

// openBank opens the configured bank document, surfacing a warning when
// prior persisted state was discarded as unreadable.
func openBank(cfg config.Config) *store.Store {
	bank := store.Open(cfg.BankFile)
	if warning := bank.LoadWarning(); warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	return bank
}

// newEvaluator builds the response evaluator: hybrid when an API key is
// configured, rule-based otherwise. The returned closer is always safe to call.
func newEvaluator(ctx context.Context, cfg config.Config) (*evaluator.Evaluator, func(), error) {
	if cfg.APIKey == "" {
		return evaluator.New(nil), func() {}, nil
	}

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return evaluator.New(client), func() { _ = client.Close() }, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(output))
	return nil
}
