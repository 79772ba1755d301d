package evaluator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/interview-agent/internal/types"
)

// aiResult is the JSON shape the critic is asked to return.
type aiResult struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

const feedbackPromptTemplate = `You are an expert interviewer evaluating a candidate's answer.

Question (%s, %s difficulty):
%s

Candidate answer:
%s

Return a JSON object with exactly these fields:
- "score": number from 0 to 100 judging correctness and depth
- "feedback": one short paragraph of overall feedback
- "strengths": array of short strings
- "improvements": array of short strings

Return only the JSON object.`

func (e *Evaluator) aiFeedback(ctx context.Context, q *types.Question, response string) (*aiResult, error) {
	prompt := fmt.Sprintf(feedbackPromptTemplate, q.Type, q.Difficulty, q.Question, response)

	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to get AI feedback: %w", err)
	}

	var result aiResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI feedback JSON: %w", err)
	}

	if result.Score < 0 || result.Score > 100 {
		return nil, fmt.Errorf("AI score %f out of range", result.Score)
	}

	return &result, nil
}
