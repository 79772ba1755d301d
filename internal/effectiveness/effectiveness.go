// Package effectiveness computes the derived quality signal for bank questions.
package effectiveness

import (
	"math"

	"github.com/jonathan/interview-agent/internal/types"
)

// Weights for the effectiveness components.
const (
	discriminationWeight = 0.4
	reliabilityWeight    = 0.3
	predictiveWeight     = 0.3
)

const (
	// neutralMidpoint is the average score of a question that separates
	// strong from weak candidates the least.
	neutralMidpoint = 70.0
	midpointSpread  = 30.0

	// reliabilitySaturation is the usage count at which the reliability
	// component reaches 1.0.
	reliabilitySaturation = 50.0

	// MinReliableUsage is the usage count below which effectiveness is not
	// considered meaningful.
	MinReliableUsage = 3

	// DefaultScore is the sentinel for questions with too little history.
	DefaultScore = 0.5
)

// Score computes the effectiveness of a question from its current performance
// fields. Questions with fewer than MinReliableUsage recorded uses get
// DefaultScore. The result is always in [0, 1].
//
// The heuristic: averages far from a middling baseline suggest the question
// discriminates between candidates, heavier usage makes its statistics more
// trustworthy, and correlation with hiring outcomes gives it predictive value.
func Score(q *types.Question) float64 {
	if q.UsageCount < MinReliableUsage {
		return DefaultScore
	}

	discrimination := math.Abs(q.AvgScore-neutralMidpoint) / midpointSpread
	reliability := math.Min(float64(q.UsageCount)/reliabilitySaturation, 1.0)
	predictive := q.SuccessRate

	score := discriminationWeight*discrimination +
		reliabilityWeight*reliability +
		predictiveWeight*predictive

	return math.Min(math.Max(score, 0.0), 1.0)
}
