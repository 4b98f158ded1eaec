package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/django-nerd/folio/internal/server"
)

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local fixture backend for development",
	Long: `Serves the portfolio resource endpoints from a YAML content file, so the
client can be exercised without the real backend. With --watch, edits to
the content file are picked up live and pushed to websocket subscribers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The fixture server always logs, verbose or not.
		log.SetOutput(os.Stderr)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := server.LoadContent(cfg.Fixture.File)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:        cfg.Fixture.Port,
			ContentFile: cfg.Fixture.File,
			Watch:       serveWatch,
		}, data)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "reload the content file on change")
	rootCmd.AddCommand(serveCmd)
}
