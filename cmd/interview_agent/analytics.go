package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/observability"
	"github.com/jonathan/interview-agent/internal/store"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Report question bank statistics",
	Long:  "Reports bank-wide usage, effectiveness averages, category and difficulty distributions, and the top questions by effectiveness.",
	RunE:  runAnalytics,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	report, err := bank.Analytics()
	if err != nil {
		var empty *store.EmptyStoreError
		if errors.As(err, &empty) {
			return fmt.Errorf("question bank %s is empty; run 'interview_agent seed' first", bank.Path())
		}
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalytics(report)
	}

	return printJSON(report)
}
