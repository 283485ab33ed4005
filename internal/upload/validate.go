// Package upload validates files before they are submitted to the backend.
// All checks run locally: a file that fails here never produces a request.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fairai-labs/fairctl/internal/util"
)

// Size ceilings enforced before upload.
const (
	MaxLoanModelSize = 100 << 20
	MaxFaceModelSize = 200 << 20
	MaxConfigSize    = 5 << 20
)

// ModelExtensions is the allow-list of trained-model file extensions.
var ModelExtensions = []string{".pkl", ".joblib", ".onnx", ".pt", ".pth", ".h5"}

// ConfigExtensions is the allow-list of evaluator config file extensions.
var ConfigExtensions = []string{".json", ".yaml", ".yml"}

// ValidationError reports a single client-side validation failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func hasExtension(path string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

func statRegular(field, path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: fmt.Sprintf("cannot read file: %v", err)}
	}
	if info.IsDir() {
		return nil, &ValidationError{Field: field, Reason: "is a directory, expected a file"}
	}
	return info, nil
}

// CheckModelFile validates a trained-model file against the extension
// allow-list and the given size ceiling.
func CheckModelFile(path string, maxSize int64) error {
	if !hasExtension(path, ModelExtensions) {
		return &ValidationError{
			Field:  "model_file",
			Reason: fmt.Sprintf("extension %q not allowed, expected one of %s", filepath.Ext(path), strings.Join(ModelExtensions, ", ")),
		}
	}
	info, err := statRegular("model_file", path)
	if err != nil {
		return err
	}
	if info.Size() > maxSize {
		return &ValidationError{
			Field:  "model_file",
			Reason: fmt.Sprintf("file is %s, limit is %s", util.FormatBytes(info.Size()), util.FormatBytes(maxSize)),
		}
	}
	return nil
}

// CheckDatasetCSV validates a loan dataset file.
func CheckDatasetCSV(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return &ValidationError{Field: "dataset", Reason: "dataset must be a .csv file"}
	}
	_, err := statRegular("dataset", path)
	return err
}

// CheckDatasetZip validates a face dataset override archive.
func CheckDatasetZip(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".zip" {
		return &ValidationError{Field: "dataset_zip", Reason: "dataset override must be a .zip archive"}
	}
	_, err := statRegular("dataset_zip", path)
	return err
}

// CheckConfigFile validates an evaluator config file.
func CheckConfigFile(path string) error {
	if !hasExtension(path, ConfigExtensions) {
		return &ValidationError{
			Field:  "config_file",
			Reason: fmt.Sprintf("extension %q not allowed, expected one of %s", filepath.Ext(path), strings.Join(ConfigExtensions, ", ")),
		}
	}
	info, err := statRegular("config_file", path)
	if err != nil {
		return err
	}
	if info.Size() > MaxConfigSize {
		return &ValidationError{
			Field:  "config_file",
			Reason: fmt.Sprintf("file is %s, limit is %s", util.FormatBytes(info.Size()), util.FormatBytes(int64(MaxConfigSize))),
		}
	}
	return nil
}

// CheckThreshold validates a decision threshold.
func CheckThreshold(v float64) error {
	if v < 0 || v > 1 {
		return &ValidationError{Field: "threshold", Reason: fmt.Sprintf("must be between 0.0 and 1.0, got %v", v)}
	}
	return nil
}

// CheckLoanParams validates the loan evaluation configuration: at least one
// feature column and a non-empty target column.
func CheckLoanParams(features []string, target string) error {
	if len(features) == 0 {
		return &ValidationError{Field: "features", Reason: "at least one feature column is required"}
	}
	for _, f := range features {
		if strings.TrimSpace(f) == "" {
			return &ValidationError{Field: "features", Reason: "feature names must not be empty"}
		}
	}
	if strings.TrimSpace(target) == "" {
		return &ValidationError{Field: "target_column", Reason: "a target column is required"}
	}
	return nil
}

// Augmentations understood by the face evaluator.
var Augmentations = []string{"flip", "rotation", "brightness", "blur", "occlusion", "noise", "shift"}

// CheckAugmentations validates augmentation names against the known set.
func CheckAugmentations(names []string) error {
	for _, n := range names {
		known := false
		for _, a := range Augmentations {
			if n == a {
				known = true
				break
			}
		}
		if !known {
			return &ValidationError{
				Field:  "augment",
				Reason: fmt.Sprintf("unknown augmentation %q, expected one of %s", n, strings.Join(Augmentations, ", ")),
			}
		}
	}
	return nil
}
