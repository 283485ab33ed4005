package render

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
)

func TestWriteLoanResult_Success(t *testing.T) {
	res := &api.LoanResult{
		Status: api.StatusSuccess,
		Metrics: api.LoanMetrics{
			Overall: api.LoanOverall{TotalRecords: 614, ApprovalRate: 0.73, Accuracy: 0.8123},
			FairnessMetrics: map[string]float64{
				"demographic_parity_difference": 0.12,
				"disparate_impact":              0.78,
			},
		},
		Recommendations: []string{"Review disparate impact"},
	}

	var buf bytes.Buffer
	WriteLoanResult(&buf, res, false)
	out := buf.String()

	if !strings.Contains(out, "73.00%") {
		t.Errorf("approval rate should render as 73.00%%, got:\n%s", out)
	}
	if !strings.Contains(out, "614") {
		t.Error("total records missing")
	}
	if !strings.Contains(out, "demographic_parity_difference") || !strings.Contains(out, "0.1200") {
		t.Error("fairness metrics not rendered verbatim")
	}
	if !strings.Contains(out, "disparate_impact") || !strings.Contains(out, "0.7800") {
		t.Error("disparate impact missing")
	}
	if !strings.Contains(out, "Review disparate impact") {
		t.Error("recommendations missing")
	}
	if strings.Contains(out, "Needs Review") {
		t.Error("success result must not hit the error branch")
	}
}

func TestWriteLoanResult_ErrorBranch(t *testing.T) {
	res := &api.LoanResult{
		Status:    api.StatusError,
		Message:   "Evaluation failed: bad model",
		Traceback: "Traceback (most recent call last) ...",
	}

	var buf bytes.Buffer
	WriteLoanResult(&buf, res, false)
	out := buf.String()

	if !strings.Contains(out, "Needs Review") {
		t.Errorf("expected needs-review panel, got:\n%s", out)
	}
	if !strings.Contains(out, "Evaluation failed: bad model") {
		t.Error("server message missing")
	}
	if strings.Contains(out, "Traceback") {
		t.Error("traceback should be hidden unless verbose")
	}
	if strings.Contains(out, "Loan Fairness Evaluation") {
		t.Error("error result must not render the success header")
	}

	buf.Reset()
	WriteLoanResult(&buf, res, true)
	if !strings.Contains(buf.String(), "Traceback") {
		t.Error("verbose output should include the traceback")
	}
}

func TestWriteFaceResult_NoBiasCaption(t *testing.T) {
	res := &api.FaceResult{
		Status: api.StatusSuccess,
		Metrics: api.FaceMetrics{
			Accuracy: 0.9,
			Bias:     0,
			DetailedMetrics: api.FaceReport{
				Overall: api.FaceRates{FMR: 0.01, FNMR: 0.05, Accuracy: 0.9},
			},
		},
	}

	var buf bytes.Buffer
	WriteFaceResult(&buf, res, false)
	if !strings.Contains(buf.String(), NoBiasCaption) {
		t.Errorf("expected %q caption, got:\n%s", NoBiasCaption, buf.String())
	}
}

func TestWriteFaceResult_BiasScore(t *testing.T) {
	res := &api.FaceResult{
		Status: api.StatusSuccess,
		Metrics: api.FaceMetrics{
			Accuracy: 0.9,
			Bias:     0.1234,
			DetailedMetrics: api.FaceReport{
				ByGroup: map[string]api.FaceRates{
					"female": {FMR: 0.03, FNMR: 0.07, Accuracy: 0.85},
					"male":   {FMR: 0.01, FNMR: 0.05, Accuracy: 0.9},
				},
			},
		},
		UsedAugmentations: []string{"flip", "blur"},
		ModelUsed:         "custom",
	}

	var buf bytes.Buffer
	WriteFaceResult(&buf, res, false)
	out := buf.String()

	if strings.Contains(out, NoBiasCaption) {
		t.Error("non-zero bias must not show the no-bias caption")
	}
	if !strings.Contains(out, "0.1234") {
		t.Error("bias score missing")
	}
	if !strings.Contains(out, "female") || !strings.Contains(out, "male") {
		t.Error("group breakdown missing")
	}
	if !strings.Contains(out, "flip, blur") {
		t.Error("used augmentations missing")
	}
}

func TestDecodeVisualization(t *testing.T) {
	payload := []byte("png-bytes")
	encoded := base64.StdEncoding.EncodeToString(payload)

	for _, in := range []string{encoded, "data:image/png;base64," + encoded} {
		got, err := DecodeVisualization(in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if string(got) != string(payload) {
			t.Errorf("decoded %q, want %q", got, payload)
		}
	}

	if _, err := DecodeVisualization("%%%not-base64%%%"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestSaveVisualizations(t *testing.T) {
	dir := t.TempDir()
	encoded := base64.StdEncoding.EncodeToString([]byte("img"))

	paths, err := SaveVisualizations(dir, map[string]string{
		"approval_rate_by_group.png": "data:image/png;base64," + encoded,
		"../escape.png":              encoded,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %d", len(paths))
	}
	for _, p := range paths {
		if filepath.Dir(p) != dir {
			t.Errorf("file %s escaped the output directory", p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("file %s not written: %v", p, err)
		}
	}
}
