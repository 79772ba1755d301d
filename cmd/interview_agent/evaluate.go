package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/feedback"
	"github.com/jonathan/interview-agent/internal/observability"
	"github.com/jonathan/interview-agent/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one candidate response",
	Long:  "Scores a candidate response against a bank question, records the result in the question's performance history, and prints the feedback record.",
	RunE:  runEvaluate,
}

var (
	evaluateID       int64
	evaluateResponse string
	evaluateOutcome  string
)

func init() {
	evaluateCmd.Flags().Int64VarP(&evaluateID, "id", "i", 0, "Question id (required)")
	evaluateCmd.Flags().StringVarP(&evaluateResponse, "response", "a", "", "Candidate response text (required)")
	evaluateCmd.Flags().StringVar(&evaluateOutcome, "outcome", "", "Hiring outcome signal (hired or not_hired)")

	if err := evaluateCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}
	if err := evaluateCmd.MarkFlagRequired("response"); err != nil {
		panic(fmt.Sprintf("failed to mark response flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	question, found := bank.Get(evaluateID)
	if !found {
		return fmt.Errorf("question %d not found in %s", evaluateID, bank.Path())
	}

	eval, closeEval, err := newEvaluator(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeEval()

	record, err := feedback.NewGenerator(eval, bank).ScoreResponse(cmd.Context(), question, evaluateResponse, evaluateOutcome)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("question %d disappeared from the bank before the score was recorded", evaluateID)
		}
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintFeedback(record)
	}

	return printJSON(record)
}
