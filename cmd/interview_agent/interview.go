package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/config"
	"github.com/jonathan/interview-agent/internal/feedback"
	"github.com/jonathan/interview-agent/internal/generator"
	"github.com/jonathan/interview-agent/internal/observability"
	"github.com/jonathan/interview-agent/internal/selection"
	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Assemble an interview session for a role",
	Long:  "Assembles a difficulty-balanced session of questions for a candidate role, persisting newly generated questions into the bank. With --responses, also evaluates the candidate's answers and records the scores.",
	RunE:  runInterview,
}

var (
	interviewRole      string
	interviewCount     int
	interviewResponses string
	interviewOutcome   string
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewRole, "role", "r", "", "Candidate role: finance, operations or data_analytics (required)")
	interviewCmd.Flags().IntVarP(&interviewCount, "count", "n", 6, "Number of questions in the session")
	interviewCmd.Flags().StringVar(&interviewResponses, "responses", "", "Path to a JSON file of candidate responses to evaluate")
	interviewCmd.Flags().StringVar(&interviewOutcome, "outcome", "", "Hiring outcome to correlate onto asked questions (hired or not_hired)")

	if err := interviewCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(interviewCmd)
}

// sessionResponse is one entry in the --responses file.
type sessionResponse struct {
	QuestionID int64  `json:"question_id"`
	Response   string `json:"response"`
}

func runInterview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	selector := selection.NewSelector(bank, generator.New(generator.BaseTemplates()))
	session := selector.Assemble(interviewRole, interviewCount)

	// Generated questions become durable once they enter a session.
	for _, q := range session.Questions {
		if _, found := bank.Get(q.ID); found {
			continue
		}
		if len(q.TargetRoles) == 0 {
			q.TargetRoles = []string{interviewRole}
		}
		if _, err := bank.Create(q); err != nil {
			return fmt.Errorf("failed to store generated question: %w", err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSession(session)
	}

	if interviewResponses == "" {
		return printJSON(session)
	}

	records, err := evaluateSession(cmd, cfg, bank, session)
	if err != nil {
		return err
	}

	return printJSON(struct {
		Session  *selection.Session `json:"session"`
		Feedback []*feedback.Record `json:"feedback"`
	}{session, records})
}

func evaluateSession(cmd *cobra.Command, cfg config.Config, bank *store.Store, session *selection.Session) ([]*feedback.Record, error) {
	content, err := os.ReadFile(interviewResponses)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %s: %w", interviewResponses, err)
	}

	var responses []sessionResponse
	if err := json.Unmarshal(content, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse responses JSON: %w", err)
	}

	byID := make(map[int64]*types.Question, len(session.Questions))
	for _, q := range session.Questions {
		byID[q.ID] = q
	}

	pairs := make([]feedback.QA, 0, len(responses))
	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			stored, found := bank.Get(r.QuestionID)
			if !found {
				return nil, fmt.Errorf("response references unknown question %d", r.QuestionID)
			}
			q = stored
		}
		pairs = append(pairs, feedback.QA{Question: q, Response: r.Response, Outcome: interviewOutcome})
	}

	eval, closeEval, err := newEvaluator(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	defer closeEval()

	records, err := feedback.NewGenerator(eval, bank).ScoreSession(cmd.Context(), pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate session: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, record := range records {
			printer.PrintFeedback(record)
		}
	}

	return records, nil
}
