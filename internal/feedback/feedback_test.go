package feedback

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-agent/internal/evaluator"
	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

func newTestGenerator(t *testing.T) (*Generator, *store.Store) {
	t.Helper()
	bank := store.Open(filepath.Join(t.TempDir(), "bank.json"))
	return NewGenerator(evaluator.New(nil), bank), bank
}

func keywordQuestion(t *testing.T, bank *store.Store) *types.Question {
	t.Helper()
	id, err := bank.Create(&types.Question{
		Question:   "Explain the difference between VLOOKUP and INDEX-MATCH.",
		Category:   "lookup_functions",
		Difficulty: types.DifficultyAdvanced,
		Keywords:   []string{"VLOOKUP", "INDEX", "MATCH", "flexible"},
	})
	require.NoError(t, err)
	q, found := bank.Get(id)
	require.True(t, found)
	return q
}

func TestScoreResponse_KeywordBands(t *testing.T) {
	gen, bank := newTestGenerator(t)
	q := keywordQuestion(t, bank)

	cases := []struct {
		response string
		score    float64
	}{
		{"no clue", 20},
		{"something about vlookup", 50},
		{"index and match are more flexible", 75},
		{"INDEX with MATCH beats VLOOKUP, it is more flexible", 100},
	}

	for _, tc := range cases {
		record, err := gen.ScoreResponse(context.Background(), q, tc.response, "")
		require.NoError(t, err)
		assert.Equal(t, tc.score, record.Score, "response %q", tc.response)
		assert.Equal(t, types.EvaluationSourceKeyword, record.Source)
		assert.Equal(t, q.ID, record.QuestionID)
		assert.Equal(t, tc.response, record.Response)
		assert.NotEmpty(t, record.Feedback)
	}
}

func TestScoreResponse_NoKeywordsKeepsEvaluatorScore(t *testing.T) {
	gen, bank := newTestGenerator(t)
	id, err := bank.Create(&types.Question{
		Question:   "Describe how you would structure a monthly report.",
		Category:   "scenario_based",
		Difficulty: types.DifficultyIntermediate,
	})
	require.NoError(t, err)
	q, _ := bank.Get(id)

	record, err := gen.ScoreResponse(context.Background(), q, "some answer", "")
	require.NoError(t, err)
	assert.Equal(t, 50.0, record.Score)
	assert.Equal(t, types.EvaluationSourceRule, record.Source)
}

func TestScoreResponse_RecordsPerformance(t *testing.T) {
	gen, bank := newTestGenerator(t)
	q := keywordQuestion(t, bank)

	_, err := gen.ScoreResponse(context.Background(), q, "vlookup and index", types.OutcomeHired)
	require.NoError(t, err)

	updated, found := bank.Get(q.ID)
	require.True(t, found)
	assert.Equal(t, 1, updated.UsageCount)
	assert.Equal(t, 50.0, updated.AvgScore)
	assert.Equal(t, 1.0, updated.SuccessRate)
	require.Len(t, updated.PerformanceHistory, 1)
	assert.Equal(t, types.OutcomeHired, updated.PerformanceHistory[0].Outcome)
}

func TestScoreResponse_UnknownQuestion(t *testing.T) {
	gen, _ := newTestGenerator(t)
	ghost := &types.Question{
		ID:         404,
		Question:   "Gone.",
		Category:   "basic_formulas",
		Difficulty: types.DifficultyBasic,
	}

	_, err := gen.ScoreResponse(context.Background(), ghost, "answer", "")
	var notFound *store.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(404), notFound.ID)
}

func TestScoreSession_OrderAndUpdates(t *testing.T) {
	gen, bank := newTestGenerator(t)

	var pairs []QA
	for i := 0; i < 4; i++ {
		id, err := bank.Create(&types.Question{
			Question:   "Walk through a SUMIF example.",
			Category:   "advanced_formulas",
			Difficulty: types.DifficultyIntermediate,
			Keywords:   []string{"SUMIF"},
		})
		require.NoError(t, err)
		q, _ := bank.Get(id)
		pairs = append(pairs, QA{Question: q, Response: "sumif adds matching cells", Outcome: types.OutcomeHired})
	}

	records, err := gen.ScoreSession(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i, record := range records {
		assert.Equal(t, pairs[i].Question.ID, record.QuestionID)
		assert.Equal(t, 100.0, record.Score)

		updated, found := bank.Get(record.QuestionID)
		require.True(t, found)
		assert.Equal(t, 1, updated.UsageCount)
		assert.Equal(t, 1.0, updated.SuccessRate)
	}
}

func TestScoreSession_Empty(t *testing.T) {
	gen, _ := newTestGenerator(t)

	records, err := gen.ScoreSession(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
