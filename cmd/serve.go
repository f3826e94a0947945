package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/chordgrid/config"
	"github.com/jsphweid/chordgrid/export"
	"github.com/jsphweid/chordgrid/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("export", "", "rewrite a printable page here after every edit")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the editor over HTTP",
	Long:  `Serves one editing session over HTTP. The session is seeded from config and lives in memory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if path, _ := cmd.Flags().GetString("export"); path != "" {
			cfg.ExportPath = path
		}
		return serve(cmd.Context(), cfg, logger)
	},
}

// NewServer wires a seeded session to the HTTP handlers. When c.ExportPath
// is set the returned exporter rewrites the printable page after every edit;
// otherwise it is nil.
func NewServer(c *config.Config, l *zap.Logger) (*server.Server, *export.AutoExporter) {
	g := NewGrid(c, l)
	srv := server.New(g, server.Config{CORSOrigins: c.CORSOrigins}, l)
	if c.ExportPath == "" {
		return srv, nil
	}

	exporter := export.NewAutoExporter(c.ExportPath, c.ExportDebounce, srv.Snapshot, l)
	g.OnChange(exporter.Trigger)
	exporter.Trigger()
	return srv, exporter
}

func serve(ctx context.Context, c *config.Config, l *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, exporter := NewServer(c, l)
	httpServer := &http.Server{
		Addr:              c.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("listening", zap.String("addr", c.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		l.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	if exporter != nil {
		return exporter.Flush()
	}
	return nil
}
