package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/domain"
	"github.com/fairai-labs/fairctl/internal/ports"
	"github.com/fairai-labs/fairctl/internal/render"
	"github.com/fairai-labs/fairctl/internal/upload"
	"github.com/fairai-labs/fairctl/internal/util"
)

var (
	faceModelPath     string
	faceConfigPath    string
	faceDatasetPath   string
	faceThreshold     float64
	faceAugmentations []string
	faceUseDefault    bool
	faceOutputDir     string
)

var faceCmd = &cobra.Command{
	Use:   "face",
	Short: "Facial-recognition fairness evaluations",
}

var faceEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a face-recognition model across demographic groups",
	Long: `Runs a facial-recognition fairness evaluation, either against an uploaded
model or the backend's pretrained default.

Example:

  fairctl face evaluate --use-default-model --augment flip,blur
  fairctl face evaluate --model facenet.pt --dataset pairs.zip --threshold 0.4`,
	RunE: runFaceEvaluate,
}

func init() {
	rootCmd.AddCommand(faceCmd)
	faceCmd.AddCommand(faceEvaluateCmd)

	faceEvaluateCmd.Flags().StringVarP(&faceModelPath, "model", "m", "", "Trained model file (.pkl, .joblib, .onnx, .pt, .pth, .h5)")
	faceEvaluateCmd.Flags().StringVarP(&faceConfigPath, "config", "c", "", "Optional model config (.json, .yaml, .yml)")
	faceEvaluateCmd.Flags().StringVarP(&faceDatasetPath, "dataset", "d", "", "Optional face-pair dataset archive (.zip)")
	faceEvaluateCmd.Flags().Float64Var(&faceThreshold, "threshold", 0.5, "Match threshold between 0 and 1")
	faceEvaluateCmd.Flags().StringSliceVar(&faceAugmentations, "augment", nil, "Augmentations to apply (flip, rotation, brightness, blur, occlusion, noise, shift)")
	faceEvaluateCmd.Flags().BoolVar(&faceUseDefault, "use-default-model", false, "Evaluate the backend's pretrained model instead of uploading one")
	faceEvaluateCmd.Flags().StringVarP(&faceOutputDir, "output", "o", "results", "Directory for visualizations")
}

func runFaceEvaluate(cmd *cobra.Command, args []string) error {
	if faceModelPath == "" && !faceUseDefault {
		return fmt.Errorf("either --model or --use-default-model is required")
	}
	if faceModelPath != "" {
		if err := upload.CheckModelFile(faceModelPath, upload.MaxFaceModelSize); err != nil {
			return err
		}
	}
	if faceConfigPath != "" {
		if err := upload.CheckConfigFile(faceConfigPath); err != nil {
			return err
		}
	}
	if faceDatasetPath != "" {
		if err := upload.CheckDatasetZip(faceDatasetPath); err != nil {
			return err
		}
	}
	if err := upload.CheckThreshold(faceThreshold); err != nil {
		return err
	}
	if err := upload.CheckAugmentations(faceAugmentations); err != nil {
		return err
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	exporter := newMetricsExporter(ctx, app.Logger)
	defer exporter.Close(ctx)

	if faceUseDefault {
		fmt.Println("Evaluating the backend's pretrained model ...")
	} else {
		fmt.Printf("Evaluating %s (%s) ...\n", faceModelPath, util.FormatBytes(fileSize(faceModelPath)))
	}

	start := time.Now()
	res, err := app.Client.EvaluateFace(ctx, &api.FaceRequest{
		ModelPath:       faceModelPath,
		ConfigPath:      faceConfigPath,
		DatasetZipPath:  faceDatasetPath,
		Threshold:       faceThreshold,
		Augmentations:   faceAugmentations,
		UseDefaultModel: faceUseDefault,
	})
	elapsed := time.Since(start)

	var srvErr *api.ServerError
	if errors.As(err, &srvErr) {
		res = &api.FaceResult{
			Status:    api.StatusError,
			Message:   srvErr.Message,
			Traceback: srvErr.Traceback,
		}
		err = nil
	}
	if err != nil {
		return err
	}

	modelLabel := faceModelPath
	if modelLabel == "" {
		modelLabel = res.ModelUsed
	}
	run := newRun(domain.RunKindFace, modelLabel, faceThreshold, res.Status, res.Message, res.Metrics)
	recordRun(ctx, app, run)
	reportEvaluation(ctx, app, exporter, &ports.EvaluationStats{
		Kind:        run.Kind,
		Status:      run.Status,
		Duration:    elapsed,
		UploadBytes: fileSize(faceModelPath) + fileSize(faceConfigPath) + fileSize(faceDatasetPath),
	})

	render.WriteFaceResult(os.Stdout, res, verbose)

	if res.Status == api.StatusSuccess {
		saveArtifacts(app, faceOutputDir, res.Visualizations, "")
		fmt.Printf("\nRun %s recorded.\n", run.ID)
	}
	return nil
}
