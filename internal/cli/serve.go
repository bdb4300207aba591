package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kitplan/kitplan/internal/server"
	"github.com/kitplan/kitplan/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	backend   string // cache backend: none, file, redis
	cachePath string // directory for the file backend
	redisAddr string // address for the redis backend
}

// newServeCmd creates the serve command, running the kit generation
// HTTP API.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		backend:   "file",
		redisAddr: "localhost:6379",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the kit generation HTTP server",
		Long: `Serve exposes kit generation over HTTP: POST a TOML kit definition to
/generate and receive the rendered plan. Responses are cached; choose
the backend with --cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "artifact cache backend: none, file, redis")
	cmd.Flags().StringVar(&opts.cachePath, "cache-dir", "", "cache directory for the file backend")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address for the redis backend")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	artifactCache, err := newCache(ctx, opts)
	if err != nil {
		return err
	}
	defer artifactCache.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.New(logger, artifactCache).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr, "cache", opts.backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newCache builds the artifact cache selected by --cache.
func newCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.backend {
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		dir := opts.cachePath
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, fmt.Errorf("get cache dir: %w", err)
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	default:
		return nil, fmt.Errorf("invalid cache backend: %s (must be 'none', 'file', or 'redis')", opts.backend)
	}
}
