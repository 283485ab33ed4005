package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fairai-labs/fairctl/internal/adapters/libsql"
	"github.com/fairai-labs/fairctl/internal/viewer"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Browse the local evaluation history over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8787, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := libsql.Open(ctx, app.Config.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	srv := viewer.NewServer(libsql.NewRunRepository(db), app.Logger, servePort)
	fmt.Printf("Serving evaluation history on http://localhost:%d\n", servePort)
	return srv.Start(ctx)
}
