package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/dataset"
	"github.com/fairai-labs/fairctl/internal/domain"
	"github.com/fairai-labs/fairctl/internal/ports"
	"github.com/fairai-labs/fairctl/internal/render"
	"github.com/fairai-labs/fairctl/internal/upload"
	"github.com/fairai-labs/fairctl/internal/util"
)

var (
	loanModelPath string
	loanFeatures  []string
	loanTarget    string
	loanThreshold float64
	loanDataset   string
	loanOutputDir string
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Loan-approval fairness evaluations",
}

var loanEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Upload a loan model and evaluate it for demographic fairness",
	Long: `Uploads a trained loan-approval model and runs the fairness evaluation
against the backend's reference dataset.

Example:

  fairctl loan evaluate --model model.pkl \
      --features Gender,Race --target Loan_Status --threshold 0.65`,
	RunE: runLoanEvaluate,
}

func init() {
	rootCmd.AddCommand(loanCmd)
	loanCmd.AddCommand(loanEvaluateCmd)

	loanEvaluateCmd.Flags().StringVarP(&loanModelPath, "model", "m", "", "Trained model file (.pkl, .joblib, .onnx, .pt, .pth, .h5)")
	loanEvaluateCmd.Flags().StringSliceVarP(&loanFeatures, "features", "f", nil, "Protected feature columns to audit")
	loanEvaluateCmd.Flags().StringVarP(&loanTarget, "target", "t", "", "Target column the model predicts")
	loanEvaluateCmd.Flags().Float64Var(&loanThreshold, "threshold", 0.5, "Decision threshold between 0 and 1")
	loanEvaluateCmd.Flags().StringVar(&loanDataset, "dataset", "", "Local CSV used to sanity-check column names before upload")
	loanEvaluateCmd.Flags().StringVarP(&loanOutputDir, "output", "o", "results", "Directory for visualizations and predictions")
	loanEvaluateCmd.MarkFlagRequired("model")
	loanEvaluateCmd.MarkFlagRequired("features")
	loanEvaluateCmd.MarkFlagRequired("target")
}

func runLoanEvaluate(cmd *cobra.Command, args []string) error {
	if err := upload.CheckModelFile(loanModelPath, upload.MaxLoanModelSize); err != nil {
		return err
	}
	if err := upload.CheckLoanParams(loanFeatures, loanTarget); err != nil {
		return err
	}
	if err := upload.CheckThreshold(loanThreshold); err != nil {
		return err
	}
	if loanDataset != "" {
		if err := checkLoanColumns(loanDataset, loanFeatures, loanTarget); err != nil {
			return err
		}
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	exporter := newMetricsExporter(ctx, app.Logger)
	defer exporter.Close(ctx)

	fmt.Printf("Evaluating %s (%s) ...\n", loanModelPath, util.FormatBytes(fileSize(loanModelPath)))

	start := time.Now()
	res, err := app.Client.EvaluateLoan(ctx, &api.LoanRequest{
		ModelPath:    loanModelPath,
		Features:     loanFeatures,
		TargetColumn: loanTarget,
		Threshold:    loanThreshold,
	})
	elapsed := time.Since(start)

	var srvErr *api.ServerError
	if errors.As(err, &srvErr) {
		res = &api.LoanResult{
			Status:    api.StatusError,
			Message:   srvErr.Message,
			Traceback: srvErr.Traceback,
		}
		err = nil
	}
	if err != nil {
		return err
	}

	run := newRun(domain.RunKindLoan, loanModelPath, loanThreshold, res.Status, res.Message, res.Metrics)
	recordRun(ctx, app, run)
	reportEvaluation(ctx, app, exporter, &ports.EvaluationStats{
		Kind:        run.Kind,
		Status:      run.Status,
		Duration:    elapsed,
		UploadBytes: fileSize(loanModelPath),
	})

	render.WriteLoanResult(os.Stdout, res, verbose)

	if res.Status == api.StatusSuccess {
		saveArtifacts(app, loanOutputDir, res.Visualizations, res.Predictions)
		fmt.Printf("\nRun %s recorded.\n", run.ID)
	}
	return nil
}

// checkLoanColumns verifies the requested columns against a local copy of the
// dataset before anything is uploaded.
func checkLoanColumns(path string, features []string, target string) error {
	if err := upload.CheckDatasetCSV(path); err != nil {
		return err
	}
	preview, err := dataset.Read(path, 1)
	if err != nil {
		return fmt.Errorf("reading dataset %s: %w", path, err)
	}
	for _, f := range features {
		if !preview.HasColumn(f) {
			return fmt.Errorf("dataset %s has no column %q", path, f)
		}
	}
	if !preview.HasColumn(target) {
		return fmt.Errorf("dataset %s has no column %q", path, target)
	}
	return nil
}

func newRun(kind string, modelPath string, threshold float64, status, message string, metrics any) *domain.EvaluationRun {
	return &domain.EvaluationRun{
		ID:        uuid.NewString(),
		Kind:      kind,
		ModelFile: modelPath,
		Threshold: threshold,
		Status:    status,
		Message:   message,
		Metrics:   marshalMetrics(metrics),
		CreatedAt: time.Now().UTC(),
	}
}

func marshalMetrics(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func reportEvaluation(ctx context.Context, app *AppContext, exporter ports.MetricsExporter, stats *ports.EvaluationStats) {
	if err := exporter.RecordEvaluation(ctx, stats); err != nil {
		app.Logger.Debug("recording evaluation metrics failed", "error", err)
	}
}

func saveArtifacts(app *AppContext, dir string, visualizations map[string]string, predictions string) {
	paths, err := render.SaveVisualizations(dir, visualizations)
	if err != nil {
		app.Logger.Warn("saving visualizations failed", "error", err)
	}
	for _, p := range paths {
		fmt.Printf("Saved %s\n", p)
	}
	if predictions != "" {
		p, err := render.SavePredictions(dir, predictions)
		if err != nil {
			app.Logger.Warn("saving predictions failed", "error", err)
		} else {
			fmt.Printf("Saved %s\n", p)
		}
	}
}
