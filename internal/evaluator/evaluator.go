// Package evaluator scores candidate responses against bank questions.
//
// Scoring is hybrid: a deterministic rule-based score always applies, and
// when an LLM client is configured its judgment is blended in and its
// free-text feedback attached. Any LLM failure degrades to rule-only scoring
// rather than failing the evaluation.
package evaluator

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/types"
)

const (
	// keywordPortion is the share of the rule-based score driven by keyword
	// matches; difficultyPortion is the share driven by question difficulty.
	keywordPortion    = 80.0
	difficultyPortion = 20.0

	// neutralScore applies when a question carries no keywords to match.
	neutralScore = 50.0

	// aiBlendWeight is the AI share of the blended score.
	aiBlendWeight = 0.5

	defaultFeedback = "Good attempt, check details."
)

var difficultyWeights = map[types.Difficulty]float64{
	types.DifficultyBasic:        0.3,
	types.DifficultyIntermediate: 0.6,
	types.DifficultyAdvanced:     1.0,
}

// Evaluator scores responses. A nil client means rule-based scoring only.
type Evaluator struct {
	client llm.Client
}

// New creates an Evaluator. Pass nil for offline, rule-only evaluation.
func New(client llm.Client) *Evaluator {
	return &Evaluator{client: client}
}

// Evaluate scores one response on a 0-100 scale. Never returns an error:
// LLM failures fall back to the rule-based score.
func (e *Evaluator) Evaluate(ctx context.Context, q *types.Question, response string) *types.Evaluation {
	ruleScore := RuleScore(q, response)

	evaluation := &types.Evaluation{
		Score:     round1(ruleScore),
		Feedback:  defaultFeedback,
		Source:    types.EvaluationSourceRule,
		Timestamp: time.Now(),
	}

	if e.client == nil {
		return evaluation
	}

	ai, err := e.aiFeedback(ctx, q, response)
	if err != nil {
		return evaluation
	}

	evaluation.Score = round1(ruleScore*(1-aiBlendWeight) + ai.Score*aiBlendWeight)
	if ai.Feedback != "" {
		evaluation.Feedback = ai.Feedback
	}
	evaluation.Strengths = ai.Strengths
	evaluation.Improvements = ai.Improvements
	evaluation.Source = types.EvaluationSourceHybrid
	return evaluation
}

// RuleScore computes the deterministic score: keyword matches earn up to
// keywordPortion points and the question's difficulty adds up to
// difficultyPortion points. Questions without keywords score neutralScore.
func RuleScore(q *types.Question, response string) float64 {
	if len(q.Keywords) == 0 {
		return neutralScore
	}

	matched := MatchedKeywords(q.Keywords, response)
	keywordScore := float64(matched) / float64(len(q.Keywords)) * keywordPortion

	weight, ok := difficultyWeights[q.Difficulty]
	if !ok {
		weight = difficultyWeights[types.DifficultyBasic]
	}
	difficultyScore := weight * difficultyPortion

	return math.Min(keywordScore+difficultyScore, 100)
}

// MatchedKeywords counts the question keywords appearing in the response,
// case-insensitive substring matching.
func MatchedKeywords(keywords []string, response string) int {
	responseLower := strings.ToLower(response)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(responseLower, strings.ToLower(kw)) {
			matched++
		}
	}
	return matched
}

func round1(score float64) float64 {
	return math.Round(score*10) / 10
}
