package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the bank with the starter question set",
	Long:  "Creates the curated starter questions in the bank through the normal create path. Safe to run against a non-empty bank; ids continue from the current maximum.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	created := 0
	for _, q := range store.SeedQuestions() {
		if _, err := bank.Create(q); err != nil {
			return fmt.Errorf("failed to seed question %q: %w", q.Question, err)
		}
		created++
	}

	_, _ = fmt.Fprintf(os.Stdout, "Seeded %d questions into %s\n", created, bank.Path())
	return nil
}
