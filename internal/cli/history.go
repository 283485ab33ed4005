package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairai-labs/fairctl/internal/adapters/libsql"
	"github.com/fairai-labs/fairctl/internal/util"
)

var historyLimit int64

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past evaluation runs, newest first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int64VarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	runs, err := libsql.NewRunRepository(db).List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No evaluation runs recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-5s  %-8s  %-9s  %-19s  %s\n", "ID", "KIND", "STATUS", "THRESHOLD", "CREATED", "MODEL")
	for _, run := range runs {
		fmt.Printf("%-36s  %-5s  %-8s  %-9.2f  %-19s  %s\n",
			run.ID, run.Kind, run.Status, run.Threshold,
			util.FormatDateTime(run.CreatedAt), run.ModelFile)
	}
	return nil
}
