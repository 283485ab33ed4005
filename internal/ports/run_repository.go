package ports

import (
	"context"

	"github.com/fairai-labs/fairctl/internal/domain"
)

// RunRepository stores the local evaluation history.
type RunRepository interface {
	Create(ctx context.Context, run *domain.EvaluationRun) error
	GetByID(ctx context.Context, id string) (*domain.EvaluationRun, error)
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int64) ([]*domain.EvaluationRun, error)
}
