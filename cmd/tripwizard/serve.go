package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/tripwizard"
	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/internal/presentation/tui"
	httpAdapter "github.com/aretw0/tripwizard/pkg/adapters/http"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the read-only HTTP preview",
		Long:  `Serves the current session summary, the catalog and Prometheus metrics over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.wizard(cmd.Context(), cli.BuildOptions{})
			if err != nil {
				return err
			}

			handler := httpAdapter.NewHandler(rt.Wizard.Aggregator(),
				httpAdapter.WithCatalog(rt.Wizard.Catalog()),
				httpAdapter.WithGatherer(rt.Registry),
				httpAdapter.WithLogger(rt.Logger),
				httpAdapter.WithVersion(tripwizard.Version()),
			)

			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			out := cmd.OutOrStdout()
			if isTerminal(out) {
				tui.PrintBanner(out)
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				fmt.Fprintf(out, "Starting Tripwizard preview on %s\n", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			sigCtx := cli.NewSignalContext(cmd.Context())
			defer sigCtx.Cancel()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)

			case <-sigCtx.Done():
				fmt.Fprintf(out, "\nStart shutdown... Signal: %v\n", sigCtx.Signal())

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					_ = srv.Close()
					return fmt.Errorf("graceful shutdown did not complete: %w", err)
				}
				fmt.Fprintln(out, "Tripwizard preview stopped gracefully")
				return nil
			}
		},
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	return serveCmd
}
