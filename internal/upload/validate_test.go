package upload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestCheckModelFile_DisallowedExtension(t *testing.T) {
	path := writeFile(t, "model.txt", 16)
	err := CheckModelFile(path, MaxLoanModelSize)
	if err == nil {
		t.Fatal("expected error for .txt model file")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "model_file" {
		t.Errorf("expected field model_file, got %s", verr.Field)
	}
}

func TestCheckModelFile_AllowedExtensions(t *testing.T) {
	for _, ext := range ModelExtensions {
		path := writeFile(t, "model"+ext, 16)
		if err := CheckModelFile(path, MaxLoanModelSize); err != nil {
			t.Errorf("CheckModelFile(%s): unexpected error: %v", ext, err)
		}
	}
}

func TestCheckModelFile_Oversized(t *testing.T) {
	path := writeFile(t, "model.pkl", 64)
	err := CheckModelFile(path, 32)
	if err == nil {
		t.Fatal("expected error for oversized model file")
	}
}

func TestCheckModelFile_Missing(t *testing.T) {
	if err := CheckModelFile(filepath.Join(t.TempDir(), "missing.pkl"), MaxLoanModelSize); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCheckDatasetCSV(t *testing.T) {
	if err := CheckDatasetCSV(writeFile(t, "data.csv", 8)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckDatasetCSV(writeFile(t, "data.zip", 8)); err == nil {
		t.Error("expected error for .zip passed as CSV dataset")
	}
}

func TestCheckDatasetZip(t *testing.T) {
	if err := CheckDatasetZip(writeFile(t, "faces.zip", 8)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckDatasetZip(writeFile(t, "faces.tar", 8)); err == nil {
		t.Error("expected error for non-zip dataset override")
	}
}

func TestCheckConfigFile(t *testing.T) {
	for _, ext := range ConfigExtensions {
		if err := CheckConfigFile(writeFile(t, "cfg"+ext, 8)); err != nil {
			t.Errorf("CheckConfigFile(%s): unexpected error: %v", ext, err)
		}
	}
	if err := CheckConfigFile(writeFile(t, "cfg.toml", 8)); err == nil {
		t.Error("expected error for .toml config")
	}
	if err := CheckConfigFile(writeFile(t, "cfg.json", MaxConfigSize+1)); err == nil {
		t.Error("expected error for oversized config")
	}
}

func TestCheckThreshold(t *testing.T) {
	if err := CheckThreshold(0.5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckThreshold(-0.1); err == nil {
		t.Error("expected error for negative threshold")
	}
	if err := CheckThreshold(1.5); err == nil {
		t.Error("expected error for threshold above 1")
	}
}

func TestCheckLoanParams(t *testing.T) {
	if err := CheckLoanParams([]string{"income", "credit_history"}, "Loan_Status"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckLoanParams(nil, "Loan_Status"); err == nil {
		t.Error("expected error for empty feature set")
	}
	if err := CheckLoanParams([]string{"income"}, ""); err == nil {
		t.Error("expected error for missing target column")
	}
	if err := CheckLoanParams([]string{"  "}, "Loan_Status"); err == nil {
		t.Error("expected error for blank feature name")
	}
}

func TestCheckAugmentations(t *testing.T) {
	if err := CheckAugmentations([]string{"flip", "blur"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckAugmentations([]string{"sepia"}); err == nil {
		t.Error("expected error for unknown augmentation")
	}
}
