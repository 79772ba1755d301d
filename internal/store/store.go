// Package store owns the persistent question bank and its performance bookkeeping.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jonathan/interview-agent/internal/effectiveness"
	"github.com/jonathan/interview-agent/internal/types"
)

// Store is an in-process question bank backed by a single JSON document.
// Every mutating operation rewrites the whole document. Single-writer only;
// concurrent processes targeting the same file will lose updates.
type Store struct {
	path        string
	questions   []*types.Question
	loadWarning string

	// maxID is the highest id ever observed, so deleting the newest
	// question cannot cause its id to be handed out again.
	maxID int64
}

// bankDocument is the wrapped on-disk form some earlier banks used. Loading
// accepts both this and a bare array; saving always writes the bare array.
type bankDocument struct {
	Questions []*types.Question `json:"questions"`
}

// Open loads the question bank at path. A missing file yields an empty bank.
// An unreadable file also yields an empty bank rather than an error, trading
// data-loss risk for availability; LoadWarning reports when that happened.
func Open(path string) *Store {
	s := &Store{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.loadWarning = fmt.Sprintf("failed to read question bank %s, starting empty: %v", path, err)
		}
		return s
	}

	if err := json.Unmarshal(content, &s.questions); err == nil {
		s.trackIDs()
		return s
	}

	var doc bankDocument
	if err := json.Unmarshal(content, &doc); err == nil {
		s.questions = doc.Questions
		s.trackIDs()
		return s
	}

	s.loadWarning = fmt.Sprintf("question bank %s is corrupt, starting empty", path)
	s.questions = nil
	return s
}

func (s *Store) trackIDs() {
	for _, q := range s.questions {
		if q.ID > s.maxID {
			s.maxID = q.ID
		}
	}
}

// Path returns the location of the bank document.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of questions in the bank.
func (s *Store) Len() int {
	return len(s.questions)
}

// LoadWarning returns a non-empty message when prior persisted state was
// discarded during Open.
func (s *Store) LoadWarning() string {
	return s.loadWarning
}

// Create admits a question to the bank. An id is assigned when absent
// (max existing id + 1; deleted ids are never reused). Performance fields are
// reset to their defaults regardless of input. Returns the assigned id.
func (s *Store) Create(q *types.Question) (int64, error) {
	if err := q.ValidateContent(); err != nil {
		return 0, &ValidationError{Message: "missing required content fields", Cause: err}
	}

	entry := q.Clone()
	if entry.ID == 0 {
		entry.ID = s.maxID + 1
	} else if _, found := s.find(entry.ID); found {
		return 0, &ValidationError{Message: fmt.Sprintf("id %d already exists", entry.ID)}
	}
	if entry.ID > s.maxID {
		s.maxID = entry.ID
	}

	entry.UsageCount = 0
	entry.AvgScore = 0
	entry.SuccessRate = 0
	entry.EffectivenessScore = effectiveness.DefaultScore
	entry.CreatedDate = time.Now()
	entry.PerformanceHistory = []types.PerformanceRecord{}

	s.questions = append(s.questions, entry)
	if err := s.save(); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// Get returns a copy of the question with the given id.
func (s *Store) Get(id int64) (*types.Question, bool) {
	q, found := s.find(id)
	if !found {
		return nil, false
	}
	return q.Clone(), true
}

// Delete removes a question by id. Returns true when a question was removed.
// The id is not reused by later creates.
func (s *Store) Delete(id int64) (bool, error) {
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			if err := s.save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// UpdatePerformance records one evaluation result against a question: bumps
// the usage count, folds score into the running mean, adjusts the success
// rate for hired/not_hired outcomes (any other outcome leaves it unchanged),
// appends to the performance history and recomputes effectiveness.
// Returns *NotFoundError when the id is unknown.
func (s *Store) UpdatePerformance(id int64, score float64, outcome string) error {
	q, found := s.find(id)
	if !found {
		return &NotFoundError{ID: id}
	}

	q.UsageCount++
	n := float64(q.UsageCount)
	q.AvgScore = (q.AvgScore*(n-1) + score) / n

	switch outcome {
	case types.OutcomeHired:
		q.SuccessRate = (q.SuccessRate*(n-1) + 1) / n
	case types.OutcomeNotHired:
		q.SuccessRate = (q.SuccessRate * (n - 1)) / n
	}

	q.PerformanceHistory = append(q.PerformanceHistory, types.PerformanceRecord{
		Score:     score,
		Outcome:   outcome,
		Timestamp: time.Now(),
	})

	q.EffectivenessScore = effectiveness.Score(q)

	return s.save()
}

// Filter narrows a Query. Zero values mean "no constraint".
type Filter struct {
	Category         string
	Difficulty       types.Difficulty
	Role             string
	MinEffectiveness float64
	Limit            int
}

// Query returns copies of the questions matching every provided filter,
// sorted by effectiveness descending (ties keep bank order), truncated to
// Limit when positive. A shortfall against Limit is not an error.
func (s *Store) Query(f Filter) []*types.Question {
	matched := make([]*types.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if f.Category != "" && q.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && q.Difficulty != f.Difficulty {
			continue
		}
		if f.Role != "" && !q.TargetsRole(f.Role) {
			continue
		}
		if f.MinEffectiveness > 0 && q.EffectivenessScore < f.MinEffectiveness {
			continue
		}
		matched = append(matched, q)
	}

	sortByEffectiveness(matched)

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	out := make([]*types.Question, len(matched))
	for i, q := range matched {
		out[i] = q.Clone()
	}
	return out
}

// BestForRole picks up to count of the most effective questions targeting
// role, taking the top 2 per difficulty tier first (basic, intermediate,
// advanced) and backfilling remaining slots with the best leftover
// role-matching questions.
func (s *Store) BestForRole(role string, count int) []*types.Question {
	roleQuestions := make([]*types.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.TargetsRole(role) {
			roleQuestions = append(roleQuestions, q)
		}
	}

	const perTier = 2

	selected := make([]*types.Question, 0, count)
	picked := make(map[int64]bool)

	for _, tier := range types.DifficultyProgression {
		tierQuestions := make([]*types.Question, 0, len(roleQuestions))
		for _, q := range roleQuestions {
			if q.Difficulty == tier {
				tierQuestions = append(tierQuestions, q)
			}
		}
		sortByEffectiveness(tierQuestions)

		for i := 0; i < len(tierQuestions) && i < perTier; i++ {
			selected = append(selected, tierQuestions[i])
			picked[tierQuestions[i].ID] = true
		}
	}

	if len(selected) < count {
		remaining := make([]*types.Question, 0, len(roleQuestions))
		for _, q := range roleQuestions {
			if !picked[q.ID] {
				remaining = append(remaining, q)
			}
		}
		sortByEffectiveness(remaining)

		for _, q := range remaining {
			if len(selected) >= count {
				break
			}
			selected = append(selected, q)
		}
	}

	if len(selected) > count {
		selected = selected[:count]
	}

	out := make([]*types.Question, len(selected))
	for i, q := range selected {
		out[i] = q.Clone()
	}
	return out
}

// All returns copies of every question in bank order.
func (s *Store) All() []*types.Question {
	out := make([]*types.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}

func (s *Store) find(id int64) (*types.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

// save rewrites the whole bank document. The on-disk form is always the bare
// question array.
func (s *Store) save() error {
	content, err := json.MarshalIndent(s.questions, "", "  ")
	if err != nil {
		return &SaveError{Path: s.path, Cause: err}
	}
	if s.questions == nil {
		content = []byte("[]")
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		return &SaveError{Path: s.path, Cause: err}
	}
	return nil
}

func sortByEffectiveness(questions []*types.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].EffectivenessScore > questions[j].EffectivenessScore
	})
}
