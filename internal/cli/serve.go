package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chenzc24/padring/internal/api"
	"github.com/chenzc24/padring/pkg/buildinfo"
	"github.com/chenzc24/padring/pkg/cache"
	"github.com/chenzc24/padring/pkg/pipeline"
)

// serveOptions collects the serve command flags.
type serveOptions struct {
	addr      string
	redisAddr string
	redisDB   int
	prefix    string
	noCache   bool
}

// serveCommand creates the serve command for running the placement API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the placement HTTP API",
		Long: `Run the placement HTTP API.

The serve command exposes the placement pipeline over HTTP: POST /v1/layouts
resolves a spec into a layout artifact, GET /v1/presets lists the process
presets. Resolved layouts are cached on disk by default; point --redis at a
Redis instance to share the cache across replicas. The Redis password is
read from PADRING_REDIS_PASSWORD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared cache (host:port)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&opts.prefix, "cache-prefix", "", "cache key prefix when sharing a cache between projects")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOptions) error {
	logger := loggerFromContext(ctx)

	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	var keyer cache.Keyer
	if opts.prefix != "" {
		keyer = cache.NewScopedKeyer(nil, opts.prefix)
	}

	runner := pipeline.NewRunner(store, keyer, logger)
	defer runner.Close()

	server := api.NewServer(runner, logger)
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("listening", "addr", opts.addr, "version", buildinfo.Version)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// serveCache builds the cache backend from the serve flags.
func (c *CLI) serveCache(ctx context.Context, opts serveOptions) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, opts.redisAddr, os.Getenv("PADRING_REDIS_PASSWORD"), opts.redisDB)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", opts.redisAddr, err)
		}
		c.Logger.Info("using redis cache", "addr", opts.redisAddr, "db", opts.redisDB)
		return store, nil
	}
	return newCache(false)
}
