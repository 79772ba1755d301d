package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List bank questions matching criteria",
	Long:  "Lists bank questions matching the given filters, most effective first.",
	RunE:  runQuestions,
}

var (
	questionsCategory         string
	questionsDifficulty       string
	questionsRole             string
	questionsMinEffectiveness float64
	questionsLimit            int
)

func init() {
	questionsCmd.Flags().StringVar(&questionsCategory, "category", "", "Filter by category")
	questionsCmd.Flags().StringVar(&questionsDifficulty, "difficulty", "", "Filter by difficulty (basic, intermediate, advanced)")
	questionsCmd.Flags().StringVar(&questionsRole, "role", "", "Filter by target role")
	questionsCmd.Flags().Float64Var(&questionsMinEffectiveness, "min-effectiveness", 0, "Minimum effectiveness score")
	questionsCmd.Flags().IntVar(&questionsLimit, "limit", 0, "Maximum number of questions to return")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	matched := bank.Query(store.Filter{
		Category:         questionsCategory,
		Difficulty:       types.Difficulty(questionsDifficulty),
		Role:             questionsRole,
		MinEffectiveness: questionsMinEffectiveness,
		Limit:            questionsLimit,
	})

	return printJSON(matched)
}
