package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/domain"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestCheckLoanColumns(t *testing.T) {
	path := writeTempCSV(t, "Gender,Race,Loan_Status\nMale,A,Y\n")

	if err := checkLoanColumns(path, []string{"Gender", "Race"}, "Loan_Status"); err != nil {
		t.Fatalf("expected columns to validate, got %v", err)
	}

	err := checkLoanColumns(path, []string{"Gender", "Income"}, "Loan_Status")
	if err == nil || !strings.Contains(err.Error(), "Income") {
		t.Fatalf("expected missing feature error naming Income, got %v", err)
	}

	err = checkLoanColumns(path, []string{"Gender"}, "Approved")
	if err == nil || !strings.Contains(err.Error(), "Approved") {
		t.Fatalf("expected missing target error naming Approved, got %v", err)
	}
}

func TestNewRunSerializesMetrics(t *testing.T) {
	metrics := api.LoanMetrics{
		Overall:         api.LoanOverall{TotalRecords: 100, ApprovalRate: 0.73, Accuracy: 0.9},
		FairnessMetrics: map[string]float64{"statistical_parity": 0.12},
	}

	run := newRun(domain.RunKindLoan, "model.pkl", 0.65, api.StatusSuccess, "", metrics)

	if run.ID == "" {
		t.Fatal("expected a generated run id")
	}
	if run.Kind != domain.RunKindLoan || run.ModelFile != "model.pkl" {
		t.Fatalf("unexpected run fields: %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped at creation")
	}
	if !strings.Contains(run.Metrics, `"approval_rate":0.73`) {
		t.Fatalf("expected metrics JSON to carry approval_rate, got %s", run.Metrics)
	}
}

func TestMarshalMetricsFallsBackToEmptyObject(t *testing.T) {
	if got := marshalMetrics(func() {}); got != "{}" {
		t.Fatalf("expected {} for unmarshalable value, got %s", got)
	}
}

func TestFileSize(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n")
	if got := fileSize(path); got != int64(len("a,b\n1,2\n")) {
		t.Fatalf("unexpected size %d", got)
	}
	if got := fileSize(""); got != 0 {
		t.Fatalf("expected 0 for empty path, got %d", got)
	}
	if got := fileSize(filepath.Join(t.TempDir(), "missing")); got != 0 {
		t.Fatalf("expected 0 for missing file, got %d", got)
	}
}
