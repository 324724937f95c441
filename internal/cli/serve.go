package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/ufcompare/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison web page",
	Long: `Start the local web server with the comparison page and JSON API.

Examples:
  ufcompare serve                          # Start on UFC_PORT or 8080
  ufcompare serve --port 3000              # Start on port 3000
  ufcompare serve --data ./fighters.csv    # Use another dataset`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on (overrides UFC_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewAppContext(ctx, true)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nShutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	port := app.Config.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	server := web.NewServer(app.Engine, port, app.Logger, app.Metrics).
		WithShutdownTimeout(app.Config.ShutdownTimeout)
	return server.Start(ctx)
}
