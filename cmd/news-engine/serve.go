package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/news-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve ranked search over HTTP",
	Long: `Serve loads the index artifacts and answers GET /search?q=...&k=5 with
blended scores for the top-k documents. The embeddings client sits behind a
circuit breaker so a failing upstream degrades fast instead of hanging every
request.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "listen address (default 127.0.0.1)")
	serveCmd.Flags().Int("port", 0, "listen port (default 8000)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.Server.Host = v
	}
	if v, _ := cmd.Flags().GetInt("port"); v > 0 {
		cfg.Server.Port = v
	}

	engine, err := loadEngine(cfg, true)
	if err != nil {
		return err
	}
	srv := server.New(cfg.Server, engine, version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	fmt.Fprintf(os.Stderr, "Serving on http://%s\n", srv.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
