package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-agent/internal/types"
)

// UpsertQuestion writes one question row, replacing any existing row with the
// same id.
func (db *DB) UpsertQuestion(ctx context.Context, q *types.Question) error {
	keywords, err := json.Marshal(q.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}
	roles, err := json.Marshal(q.TargetRoles)
	if err != nil {
		return fmt.Errorf("failed to marshal target roles: %w", err)
	}
	history, err := json.Marshal(q.PerformanceHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal performance history: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO questions (id, question, type, category, difficulty, keywords, target_roles,
		                        usage_count, avg_score, success_rate, effectiveness_score,
		                        created_date, performance_history)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
		   question = $2, type = $3, category = $4, difficulty = $5, keywords = $6,
		   target_roles = $7, usage_count = $8, avg_score = $9, success_rate = $10,
		   effectiveness_score = $11, created_date = $12, performance_history = $13`,
		q.ID, q.Question, string(q.Type), q.Category, string(q.Difficulty), keywords, roles,
		q.UsageCount, q.AvgScore, q.SuccessRate, q.EffectivenessScore,
		q.CreatedDate, history,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert question %d: %w", q.ID, err)
	}
	return nil
}

// SaveBank mirrors the whole bank and removes rows for questions no longer in
// it.
func (db *DB) SaveBank(ctx context.Context, questions []*types.Question) error {
	keep := make([]int64, 0, len(questions))
	for _, q := range questions {
		if err := db.UpsertQuestion(ctx, q); err != nil {
			return err
		}
		keep = append(keep, q.ID)
	}

	_, err := db.pool.Exec(ctx, `DELETE FROM questions WHERE NOT (id = ANY($1))`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune removed questions: %w", err)
	}
	return nil
}

// GetQuestion retrieves one question by id. Returns nil without error when
// the id is absent.
func (db *DB) GetQuestion(ctx context.Context, id int64) (*types.Question, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, question, type, category, difficulty, keywords, target_roles,
		        usage_count, avg_score, success_rate, effectiveness_score,
		        created_date, performance_history
		 FROM questions WHERE id = $1`, id)

	q, err := scanQuestion(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return q, nil
}

// ListQuestions retrieves the mirrored bank ordered by effectiveness
// descending.
func (db *DB) ListQuestions(ctx context.Context) ([]*types.Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, question, type, category, difficulty, keywords, target_roles,
		        usage_count, avg_score, success_rate, effectiveness_score,
		        created_date, performance_history
		 FROM questions ORDER BY effectiveness_score DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []*types.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// DeleteQuestion removes a mirrored question. Returns true when a row was
// deleted.
func (db *DB) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return result.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*types.Question, error) {
	var q types.Question
	var keywords, roles, history []byte

	err := row.Scan(&q.ID, &q.Question, &q.Type, &q.Category, &q.Difficulty, &keywords, &roles,
		&q.UsageCount, &q.AvgScore, &q.SuccessRate, &q.EffectivenessScore,
		&q.CreatedDate, &history)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(keywords, &q.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	if err := json.Unmarshal(roles, &q.TargetRoles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal target roles: %w", err)
	}
	if err := json.Unmarshal(history, &q.PerformanceHistory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal performance history: %w", err)
	}
	return &q, nil
}
