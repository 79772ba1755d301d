package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bestQuestionsCmd = &cobra.Command{
	Use:   "best-questions",
	Short: "Show the most effective questions for a role",
	Long:  "Selects the most effective role-matching questions, balanced across difficulty tiers with the top two per tier taken first.",
	RunE:  runBestQuestions,
}

var (
	bestQuestionsRole  string
	bestQuestionsCount int
)

func init() {
	bestQuestionsCmd.Flags().StringVarP(&bestQuestionsRole, "role", "r", "", "Candidate role (required)")
	bestQuestionsCmd.Flags().IntVarP(&bestQuestionsCount, "count", "n", 6, "Number of questions to return")

	if err := bestQuestionsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(bestQuestionsCmd)
}

func runBestQuestions(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	return printJSON(bank.BestForRole(bestQuestionsRole, bestQuestionsCount))
}
