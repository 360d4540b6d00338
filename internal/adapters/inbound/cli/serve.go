package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/adapters/inbound/httpapi"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/docconv"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/validation"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/workspace"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP backend",
		Long: "Serve the transformation backend: health, streaming transform, document conversion, spec saving, " +
			"report rendering and Prometheus metrics.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.ListenAddr
			}

			router := httpapi.NewRouter(httpapi.Deps{
				Renders:     a.renders,
				Transforms:  a.transforms(false),
				Decoder:     a.store,
				Validator:   validation.New(),
				Converter:   docconv.New(),
				Saves:       workspace.New(""),
				ArtifactDir: a.cfg.WorkspaceDir,
				Log:         a.log,
			})
			srv := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				a.log.WithField("addr", addr).Info("backend listening")
				fmt.Fprintf(cmd.OutOrStdout(), "Transformation backend listening on %s\n", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to listen_addr)")

	return cmd
}
