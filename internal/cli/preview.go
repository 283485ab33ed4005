package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fairai-labs/fairctl/internal/dataset"
	"github.com/fairai-labs/fairctl/internal/upload"
)

var previewRows int

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect local datasets before upload",
}

var datasetPreviewCmd = &cobra.Command{
	Use:   "preview <file.csv>",
	Short: "Print the columns and first rows of a CSV dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetPreview,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetPreviewCmd)
	datasetPreviewCmd.Flags().IntVarP(&previewRows, "rows", "r", dataset.DefaultPreviewRows, "Number of rows to show")
}

func runDatasetPreview(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := upload.CheckDatasetCSV(path); err != nil {
		return err
	}

	preview, err := dataset.Read(path, previewRows)
	if err != nil {
		return fmt.Errorf("reading dataset %s: %w", path, err)
	}

	fmt.Printf("Columns (%d): %s\n\n", len(preview.Columns), strings.Join(preview.Columns, ", "))
	for i, row := range preview.Rows {
		values := make([]string, len(preview.Columns))
		for j, col := range preview.Columns {
			values[j] = row[col]
		}
		fmt.Printf("%4d  %s\n", i+1, strings.Join(values, " | "))
	}
	return nil
}
