package types

import "time"

// Evaluation source tags.
const (
	EvaluationSourceRule    = "rule_based"
	EvaluationSourceHybrid  = "ai+rule_based"
	EvaluationSourceKeyword = "keyword_based"
)

// Evaluation is the result of scoring one candidate response against a
// question. Score is on a 0-100 scale; the free-text fields come from the AI
// critic when one is configured.
type Evaluation struct {
	Score        float64   `json:"score"`
	Feedback     string    `json:"feedback"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	Source       string    `json:"source"`
	Outcome      string    `json:"outcome,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
