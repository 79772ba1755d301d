// Package types provides type definitions for structured data used throughout the interview-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// QuestionType classifies a question as asking for a formula or a concept.
type QuestionType string

// Question types.
const (
	QuestionTypeFormula QuestionType = "formula"
	QuestionTypeConcept QuestionType = "concept"
)

// Difficulty is the tier a question belongs to, used both for classification
// and for session balancing.
type Difficulty string

// Difficulty tiers, in progression order.
const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyProgression lists the tiers in the fixed order session assembly
// walks them.
var DifficultyProgression = []Difficulty{
	DifficultyBasic,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Candidate role tags.
const (
	RoleFinance       = "finance"
	RoleOperations    = "operations"
	RoleDataAnalytics = "data_analytics"
)

// Interview outcome signals correlated back onto asked questions.
const (
	OutcomeHired    = "hired"
	OutcomeNotHired = "not_hired"
)

// PerformanceRecord is one evaluation result recorded against a question.
// Records are append-only; history is never mutated or reordered.
type PerformanceRecord struct {
	Score     float64   `json:"score"`
	Outcome   string    `json:"outcome,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Question is a bank item: immutable content fields plus accumulated
// performance statistics. Performance fields are owned by the store and only
// change through its performance-update operation.
type Question struct {
	ID         int64        `json:"id"`
	Question   string       `json:"question" validate:"required,min=1"`
	Type       QuestionType `json:"type" validate:"omitempty,oneof=formula concept"`
	Category   string       `json:"category" validate:"required,min=1"`
	Difficulty Difficulty   `json:"difficulty" validate:"required,oneof=basic intermediate advanced"`
	Keywords   []string     `json:"keywords"`
	// TargetRoles must be non-empty for a question to be reachable by
	// role-based selection.
	TargetRoles []string `json:"target_roles"`

	UsageCount         int                 `json:"usage_count"`
	AvgScore           float64             `json:"avg_score"`
	SuccessRate        float64             `json:"success_rate"`
	EffectivenessScore float64             `json:"effectiveness_score"`
	CreatedDate        time.Time           `json:"created_date"`
	PerformanceHistory []PerformanceRecord `json:"performance_history"`

	// Generated marks template-produced questions that have not been curated.
	Generated bool `json:"generated,omitempty"`
}

// ValidateContent validates the required content fields of a question before
// it is admitted to the bank.
func (q *Question) ValidateContent() error {
	validate := validator.New()
	return validate.Struct(q)
}

// TargetsRole reports whether role appears in the question's target roles.
func (q *Question) TargetsRole(role string) bool {
	for _, r := range q.TargetRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the question so callers cannot mutate
// store-owned state through returned values.
func (q *Question) Clone() *Question {
	c := *q
	c.Keywords = append([]string(nil), q.Keywords...)
	c.TargetRoles = append([]string(nil), q.TargetRoles...)
	c.PerformanceHistory = append([]PerformanceRecord(nil), q.PerformanceHistory...)
	return &c
}
