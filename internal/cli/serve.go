package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexway/lexway/internal/httpapi"
	"github.com/lexway/lexway/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string
	cacheDir      string
	redisAddr     string
	redisPassword string
	redisDB       int
}

func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve <ruleset.toml>",
		Short: "Serve a compiled ruleset over HTTP",
		Long: `Serve compiles the ruleset once and exposes it over HTTP:

  POST /parse      {"input": "..."}  → classified result
  POST /batch      {"inputs": [...]} → batch report
  GET  /stats                        → graph size
  GET  /graph.dot                    → Graphviz export
  GET  /healthz                      → liveness

Parse results can be cached in a directory (--cache-dir) or in Redis
(--redis-addr); the cache key includes a fingerprint of the ruleset file, so
editing the file invalidates old entries. The graph itself is never cached
or persisted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			_, g, raw, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}
			fingerprint := cache.Hash(raw)

			c, err := buildCache(ctx, opts)
			if err != nil {
				return err
			}
			defer c.Close()

			api := httpapi.NewServer(g, fingerprint, c, logger)
			srv := &http.Server{Addr: opts.addr, Handler: api.Handler()}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", opts.addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for the file-based result cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address for the shared result cache")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")

	return cmd
}

// buildCache picks the result-cache backend from flags: redis when an
// address is given, otherwise a directory cache, otherwise none.
func buildCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.redisAddr != "":
		c, err := cache.NewRedisCache(ctx, opts.redisAddr, opts.redisPassword, opts.redisDB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return c, nil
	case opts.cacheDir != "":
		c, err := cache.NewFileCache(opts.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("open cache dir: %w", err)
		}
		return c, nil
	default:
		return cache.NewNullCache(), nil
	}
}
