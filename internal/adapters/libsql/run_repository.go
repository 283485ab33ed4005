package libsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fairai-labs/fairctl/internal/domain"
)

// RunRepository is the libsql implementation of ports.RunRepository.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a repository over an open database.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts one evaluation run.
func (r *RunRepository) Create(ctx context.Context, run *domain.EvaluationRun) error {
	const q = `
INSERT INTO evaluation_runs (id, kind, model_file, threshold, status, message, metrics, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	metrics := run.Metrics
	if metrics == "" {
		metrics = "{}"
	}
	_, err := r.db.ExecContext(ctx, q,
		run.ID, run.Kind, run.ModelFile, run.Threshold,
		run.Status, run.Message, metrics,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation run: %w", err)
	}
	return nil
}

// GetByID fetches one run. Returns (nil, nil) when it does not exist.
func (r *RunRepository) GetByID(ctx context.Context, id string) (*domain.EvaluationRun, error) {
	const q = `
SELECT id, kind, model_file, threshold, status, message, metrics, created_at
FROM evaluation_runs WHERE id = ?`

	run, err := scanRun(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int64) ([]*domain.EvaluationRun, error) {
	const q = `
SELECT id, kind, model_file, threshold, status, message, metrics, created_at
FROM evaluation_runs ORDER BY created_at DESC, id LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluation runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.EvaluationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*domain.EvaluationRun, error) {
	var run domain.EvaluationRun
	var createdAt string
	if err := s.Scan(&run.ID, &run.Kind, &run.ModelFile, &run.Threshold,
		&run.Status, &run.Message, &run.Metrics, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = t
	return &run, nil
}
