package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-agent/internal/types"
)

// stubClient returns a canned JSON payload or an error.
type stubClient struct {
	payload string
	err     error
}

func (c *stubClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return c.payload, c.err
}

func (c *stubClient) Close() error { return nil }

func lookupQuestion() *types.Question {
	return &types.Question{
		ID:         1,
		Question:   "Explain the difference between VLOOKUP and INDEX-MATCH.",
		Category:   "lookup_functions",
		Difficulty: types.DifficultyAdvanced,
		Type:       types.QuestionTypeConcept,
		Keywords:   []string{"VLOOKUP", "INDEX", "MATCH", "flexible"},
	}
}

func TestRuleScore_NoKeywords(t *testing.T) {
	q := &types.Question{Question: "Describe a pivot table.", Difficulty: types.DifficultyIntermediate}
	assert.Equal(t, neutralScore, RuleScore(q, "anything at all"))
}

func TestRuleScore_KeywordAndDifficultyPortions(t *testing.T) {
	q := lookupQuestion()

	// 2 of 4 keywords plus the full advanced difficulty bonus.
	score := RuleScore(q, "I would use vlookup or index depending on the layout")
	assert.InDelta(t, 0.5*keywordPortion+1.0*difficultyPortion, score, 1e-9)

	// All keywords on a basic question.
	q.Difficulty = types.DifficultyBasic
	score = RuleScore(q, "INDEX and MATCH are more flexible than VLOOKUP")
	assert.InDelta(t, keywordPortion+0.3*difficultyPortion, score, 1e-9)

	// Nothing matched still earns the difficulty portion.
	score = RuleScore(q, "no idea")
	assert.InDelta(t, 0.3*difficultyPortion, score, 1e-9)
}

func TestRuleScore_UnknownDifficultyFallsBackToBasic(t *testing.T) {
	q := lookupQuestion()
	q.Difficulty = "impossible"

	score := RuleScore(q, "no idea")
	assert.InDelta(t, 0.3*difficultyPortion, score, 1e-9)
}

func TestMatchedKeywords_CaseInsensitive(t *testing.T) {
	matched := MatchedKeywords([]string{"SUM", "AVERAGE"}, "use sum() then Average()")
	assert.Equal(t, 2, matched)

	matched = MatchedKeywords([]string{"SUMIF"}, "plain sum only")
	assert.Equal(t, 0, matched)
}

func TestEvaluate_RuleOnlyWithoutClient(t *testing.T) {
	eval := New(nil)
	q := lookupQuestion()

	result := eval.Evaluate(context.Background(), q, "no idea")
	assert.Equal(t, types.EvaluationSourceRule, result.Source)
	assert.Equal(t, defaultFeedback, result.Feedback)
	assert.Equal(t, 20.0, result.Score)
	assert.False(t, result.Timestamp.IsZero())
}

func TestEvaluate_BlendsAIScore(t *testing.T) {
	eval := New(&stubClient{payload: `{
		"score": 90,
		"feedback": "Solid grasp of lookup tradeoffs.",
		"strengths": ["clear comparison"],
		"improvements": ["mention XLOOKUP"]
	}`})
	q := lookupQuestion()

	result := eval.Evaluate(context.Background(), q, "no idea")
	// Rule score 20 blended half-and-half with the AI's 90.
	assert.Equal(t, 55.0, result.Score)
	assert.Equal(t, types.EvaluationSourceHybrid, result.Source)
	assert.Equal(t, "Solid grasp of lookup tradeoffs.", result.Feedback)
	assert.Equal(t, []string{"clear comparison"}, result.Strengths)
	assert.Equal(t, []string{"mention XLOOKUP"}, result.Improvements)
}

func TestEvaluate_FallsBackOnClientError(t *testing.T) {
	eval := New(&stubClient{err: errors.New("quota exceeded")})
	q := lookupQuestion()

	result := eval.Evaluate(context.Background(), q, "no idea")
	assert.Equal(t, types.EvaluationSourceRule, result.Source)
	assert.Equal(t, 20.0, result.Score)
}

func TestEvaluate_FallsBackOnMalformedJSON(t *testing.T) {
	eval := New(&stubClient{payload: "not json"})

	result := eval.Evaluate(context.Background(), lookupQuestion(), "no idea")
	assert.Equal(t, types.EvaluationSourceRule, result.Source)
}

func TestEvaluate_FallsBackOnOutOfRangeScore(t *testing.T) {
	eval := New(&stubClient{payload: `{"score": 250, "feedback": "x"}`})

	result := eval.Evaluate(context.Background(), lookupQuestion(), "no idea")
	assert.Equal(t, types.EvaluationSourceRule, result.Source)
	assert.Equal(t, 20.0, result.Score)
}

func TestEvaluate_EmptyAIFeedbackKeepsDefault(t *testing.T) {
	eval := New(&stubClient{payload: `{"score": 60, "feedback": ""}`})
	q := lookupQuestion()

	result := eval.Evaluate(context.Background(), q, "no idea")
	assert.Equal(t, types.EvaluationSourceHybrid, result.Source)
	assert.Equal(t, defaultFeedback, result.Feedback)
	assert.Equal(t, 40.0, result.Score)
}
