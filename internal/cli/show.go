package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairai-labs/fairctl/internal/adapters/api"
	"github.com/fairai-labs/fairctl/internal/adapters/libsql"
	"github.com/fairai-labs/fairctl/internal/domain"
	"github.com/fairai-labs/fairctl/internal/render"
	"github.com/fairai-labs/fairctl/internal/util"
)

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Re-render a recorded evaluation run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := libsql.Open(ctx, app.Config.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	run, err := libsql.NewRunRepository(db).GetByID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("no run with id %s", args[0])
	}

	fmt.Printf("%-12s %s\n", "Run:", run.ID)
	fmt.Printf("%-12s %s\n", "Kind:", run.Kind)
	fmt.Printf("%-12s %s\n", "Model:", run.ModelFile)
	fmt.Printf("%-12s %.2f\n", "Threshold:", run.Threshold)
	fmt.Printf("%-12s %s\n\n", "Created:", util.FormatDateTime(run.CreatedAt))

	switch run.Kind {
	case domain.RunKindLoan:
		res := &api.LoanResult{Status: run.Status, Message: run.Message}
		if err := json.Unmarshal([]byte(run.Metrics), &res.Metrics); err != nil {
			return fmt.Errorf("decoding stored metrics: %w", err)
		}
		render.WriteLoanResult(os.Stdout, res, verbose)
	case domain.RunKindFace:
		res := &api.FaceResult{Status: run.Status, Message: run.Message}
		if err := json.Unmarshal([]byte(run.Metrics), &res.Metrics); err != nil {
			return fmt.Errorf("decoding stored metrics: %w", err)
		}
		render.WriteFaceResult(os.Stdout, res, verbose)
	default:
		return fmt.Errorf("unknown run kind %q", run.Kind)
	}
	return nil
}
