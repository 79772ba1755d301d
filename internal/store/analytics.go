package store

import (
	"math"
	"sort"

	"github.com/jonathan/interview-agent/internal/types"
)

// topQuestionCount is how many leaders the analytics report includes.
const topQuestionCount = 5

// questionPreviewLen bounds the question text echoed in the report.
const questionPreviewLen = 50

// Analytics summarizes the state of the whole bank.
type Analytics struct {
	TotalQuestions         int            `json:"total_questions"`
	TotalUsage             int            `json:"total_usage"`
	AverageEffectiveness   float64        `json:"average_effectiveness"`
	CategoryDistribution   map[string]int `json:"category_distribution"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	TopQuestions           []TopQuestion  `json:"top_questions"`
}

// TopQuestion is a leaderboard entry in the analytics report.
type TopQuestion struct {
	ID            int64   `json:"id"`
	Question      string  `json:"question"`
	Effectiveness float64 `json:"effectiveness"`
}

// Analytics reports bank-wide usage and effectiveness statistics.
// Returns *EmptyStoreError when the bank holds no questions.
func (s *Store) Analytics() (*Analytics, error) {
	if len(s.questions) == 0 {
		return nil, &EmptyStoreError{}
	}

	report := &Analytics{
		TotalQuestions:         len(s.questions),
		CategoryDistribution:   make(map[string]int),
		DifficultyDistribution: make(map[string]int),
	}

	totalEffectiveness := 0.0
	for _, q := range s.questions {
		report.TotalUsage += q.UsageCount
		totalEffectiveness += q.EffectivenessScore
		report.CategoryDistribution[q.Category]++
		report.DifficultyDistribution[string(q.Difficulty)]++
	}
	avg := totalEffectiveness / float64(len(s.questions))
	report.AverageEffectiveness = math.Round(avg*1000) / 1000

	leaders := make([]*types.Question, len(s.questions))
	copy(leaders, s.questions)
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].EffectivenessScore > leaders[j].EffectivenessScore
	})
	if len(leaders) > topQuestionCount {
		leaders = leaders[:topQuestionCount]
	}

	report.TopQuestions = make([]TopQuestion, 0, len(leaders))
	for _, q := range leaders {
		report.TopQuestions = append(report.TopQuestions, TopQuestion{
			ID:            q.ID,
			Question:      previewText(q.Question),
			Effectiveness: q.EffectivenessScore,
		})
	}

	return report, nil
}

func previewText(text string) string {
	if len(text) <= questionPreviewLen {
		return text
	}
	return text[:questionPreviewLen] + "..."
}
