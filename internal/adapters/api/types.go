package api

import "github.com/fairai-labs/fairctl/internal/domain"

// AuthResponse is the envelope returned by /api/auth/signup and
// /api/auth/login.
type AuthResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// MeResponse is the envelope returned by /api/auth/me.
type MeResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// VerifyResponse is the envelope returned by /api/auth/verify.
type VerifyResponse struct {
	IsValid bool         `json:"isValid"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// HealthResponse is the envelope returned by /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// LoanOverall holds the whole-dataset metrics of a loan evaluation.
type LoanOverall struct {
	TotalRecords int     `json:"total_records"`
	ApprovalRate float64 `json:"approval_rate"`
	Accuracy     float64 `json:"accuracy"`
}

// LoanMetrics is the metrics object of a loan evaluation response.
type LoanMetrics struct {
	Overall         LoanOverall                   `json:"overall"`
	ByGroup         map[string]map[string]float64 `json:"by_group,omitempty"`
	FairnessMetrics map[string]float64            `json:"fairness_metrics"`
	Flags           []string                      `json:"flags,omitempty"`
}

// LoanResult is the full /api/loan/evaluate response. Error responses reuse
// the same envelope with Status "error" and an optional server traceback.
type LoanResult struct {
	Status          string            `json:"status"`
	Message         string            `json:"message,omitempty"`
	Traceback       string            `json:"traceback,omitempty"`
	Metrics         LoanMetrics       `json:"metrics"`
	Visualizations  map[string]string `json:"visualizations,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Predictions     string            `json:"predictions,omitempty"`
}

// FaceRates holds FMR/FNMR/accuracy for one slice of face pairs.
type FaceRates struct {
	FMR      float64 `json:"FMR"`
	FNMR     float64 `json:"FNMR"`
	Accuracy float64 `json:"accuracy"`
}

// FaceReport is the per-slice breakdown of a face evaluation.
type FaceReport struct {
	Overall        FaceRates            `json:"overall"`
	ByGroup        map[string]FaceRates `json:"by_group,omitempty"`
	ByAugmentation map[string]FaceRates `json:"by_augmentation,omitempty"`
}

// FaceMetrics is the metrics object of a face evaluation response. Bias is
// the absolute FMR gap between demographic groups; zero means no detected
// bias.
type FaceMetrics struct {
	Accuracy        float64    `json:"accuracy"`
	Bias            float64    `json:"bias"`
	DetailedMetrics FaceReport `json:"detailed_metrics"`
}

// FaceResult is the full /api/face/evaluate response.
type FaceResult struct {
	Status            string            `json:"status"`
	Message           string            `json:"message,omitempty"`
	Traceback         string            `json:"traceback,omitempty"`
	Metrics           FaceMetrics       `json:"metrics"`
	Visualizations    map[string]string `json:"visualizations,omitempty"`
	Recommendations   []string          `json:"recommendations,omitempty"`
	UsedAugmentations []string          `json:"used_augmentations,omitempty"`
	ModelUsed         string            `json:"model_used,omitempty"`
}

// Response statuses used by the backend.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
