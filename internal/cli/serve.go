package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-navfilter/components/suggestions"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sample user and project suggestion endpoints",
		Long: `serve answers /api/users/search and /api/resources/search with the
embedded sample catalogues, using the same paged envelope as a live server.
Point --base-url at it to try remote filters offline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mux, err := a.suggestionMux()
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              a.settings.Addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			return a.listen(cmd.Context(), srv)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8080)")
	_ = a.v.BindPFlag(keyAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) suggestionMux() (*http.ServeMux, error) {
	resources, err := suggestions.DefaultResources()
	if err != nil {
		return nil, fmt.Errorf("cli: load sample resources: %w", err)
	}
	mux := http.NewServeMux()
	components := []*suggestions.Component{
		suggestions.New(suggestions.WithRoutePath("/api/users/search")),
		suggestions.New(suggestions.WithRoutePath("/api/resources/search"), suggestions.WithItems(resources)),
	}
	for _, c := range components {
		pattern, err := c.RegisterRoutes(mux, "/")
		if err != nil {
			return nil, fmt.Errorf("cli: register routes: %w", err)
		}
		a.logger.Info("route registered", "pattern", pattern)
	}
	return mux, nil
}

func (a *app) listen(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("serving suggestions", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
