package domain

import "time"

// Evaluation kinds recorded in the local history.
const (
	RunKindLoan = "loan"
	RunKindFace = "face"
)

// Run statuses. RunStatusError covers server-reported evaluation failures
// (the "needs review" branch); transport failures are never recorded.
const (
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// EvaluationRun is one submitted evaluation, as stored in the local history.
// Metrics holds the backend's metrics object as raw JSON so it can be
// re-rendered later without recomputation.
type EvaluationRun struct {
	ID        string
	Kind      string
	ModelFile string
	Threshold float64
	Status    string
	Message   string
	Metrics   string
	CreatedAt time.Time
}
