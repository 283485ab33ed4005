package ports

import (
	"context"
	"time"
)

// MetricsExporter exports client-side evaluation metrics to an external
// observability system.
type MetricsExporter interface {
	// RecordEvaluation exports stats for one evaluation request.
	RecordEvaluation(ctx context.Context, s *EvaluationStats) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// EvaluationStats describes one evaluation request from the client's side.
type EvaluationStats struct {
	Kind        string
	Status      string
	Duration    time.Duration
	UploadBytes int64
}
