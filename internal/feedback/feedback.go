// Package feedback turns evaluations into candidate-facing records and feeds
// scores back into the question bank.
package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-agent/internal/evaluator"
	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

// Keyword coverage bands override the blended score: full coverage is a
// strong answer regardless of phrasing, zero coverage a weak one.
const (
	bandNone    = 20.0
	bandPartial = 50.0
	bandMost    = 75.0
	bandFull    = 100.0
)

// Record is the feedback for one question-response pair.
type Record struct {
	ID           uuid.UUID `json:"id"`
	QuestionID   int64     `json:"question_id"`
	Question     string    `json:"question"`
	Response     string    `json:"candidate_response"`
	Score        float64   `json:"score"`
	Feedback     string    `json:"feedback"`
	Strengths    []string  `json:"strengths,omitempty"`
	Improvements []string  `json:"improvements,omitempty"`
	Source       string    `json:"evaluation_source"`
	Timestamp    time.Time `json:"timestamp"`
}

// QA pairs a question with the candidate's response to it. Outcome is the
// optional downstream hiring signal for this candidate.
type QA struct {
	Question *types.Question
	Response string
	Outcome  string
}

// Generator evaluates responses and writes the results back to the bank.
type Generator struct {
	evaluator *evaluator.Evaluator
	store     *store.Store
}

// NewGenerator creates a feedback Generator.
func NewGenerator(eval *evaluator.Evaluator, st *store.Store) *Generator {
	return &Generator{evaluator: eval, store: st}
}

// ScoreResponse evaluates one response, applies the keyword-band override,
// records the score (and the optional hiring outcome) against the question
// and returns the feedback record.
// Returns *store.NotFoundError when the question is not in the bank.
func (g *Generator) ScoreResponse(ctx context.Context, q *types.Question, response, outcome string) (*Record, error) {
	evaluation := g.evaluator.Evaluate(ctx, q, response)
	applyKeywordBands(q, response, evaluation)
	if outcome != "" {
		evaluation.Outcome = outcome
	}

	if err := g.store.UpdatePerformance(q.ID, evaluation.Score, evaluation.Outcome); err != nil {
		return nil, err
	}

	return &Record{
		ID:           uuid.New(),
		QuestionID:   q.ID,
		Question:     q.Question,
		Response:     response,
		Score:        evaluation.Score,
		Feedback:     evaluation.Feedback,
		Strengths:    evaluation.Strengths,
		Improvements: evaluation.Improvements,
		Source:       evaluation.Source,
		Timestamp:    time.Now(),
	}, nil
}

// ScoreSession evaluates a whole session. Evaluations run concurrently; bank
// updates are applied sequentially in input order afterwards, so the store's
// single-writer discipline holds and records come back in input order.
func (g *Generator) ScoreSession(ctx context.Context, pairs []QA) ([]*Record, error) {
	evaluations := make([]*types.Evaluation, len(pairs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		i, pair := i, pair
		eg.Go(func() error {
			evaluation := g.evaluator.Evaluate(ctx, pair.Question, pair.Response)
			applyKeywordBands(pair.Question, pair.Response, evaluation)
			if pair.Outcome != "" {
				evaluation.Outcome = pair.Outcome
			}
			evaluations[i] = evaluation
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(pairs))
	for i, pair := range pairs {
		evaluation := evaluations[i]
		if err := g.store.UpdatePerformance(pair.Question.ID, evaluation.Score, evaluation.Outcome); err != nil {
			return records, err
		}
		records = append(records, &Record{
			ID:           uuid.New(),
			QuestionID:   pair.Question.ID,
			Question:     pair.Question.Question,
			Response:     pair.Response,
			Score:        evaluation.Score,
			Feedback:     evaluation.Feedback,
			Strengths:    evaluation.Strengths,
			Improvements: evaluation.Improvements,
			Source:       evaluation.Source,
			Timestamp:    time.Now(),
		})
	}
	return records, nil
}

// applyKeywordBands replaces the score with the coverage band when the
// question carries keywords.
func applyKeywordBands(q *types.Question, response string, evaluation *types.Evaluation) {
	if len(q.Keywords) == 0 {
		return
	}

	ratio := float64(evaluator.MatchedKeywords(q.Keywords, response)) / float64(len(q.Keywords))
	switch {
	case ratio == 0:
		evaluation.Score = bandNone
	case ratio < 0.5:
		evaluation.Score = bandPartial
	case ratio < 1:
		evaluation.Score = bandMost
	default:
		evaluation.Score = bandFull
	}
	evaluation.Source = types.EvaluationSourceKeyword
}
