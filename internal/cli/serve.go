package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permute/internal/server"
	"github.com/matzehuels/permute/pkg/cache"
	"github.com/matzehuels/permute/pkg/enumstore"
	"github.com/matzehuels/permute/pkg/pipeline"
)

// mongoDatabase is the database name used for enumeration cursors.
const mongoDatabase = "permute"

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the enumeration HTTP API",
		Long: `Run the enumeration HTTP API.

The server exposes one-shot enumeration under /v1/permutations and
resumable, cursor-based enumerations under /v1/enumerations. By default
results are cached on the local filesystem and cursors live in process
memory; point --redis-url and --mongo-uri at real backends to share
state between replicas.`,
		Example: `  permute serve
  permute serve --addr :9090
  permute serve --redis-url redis://localhost:6379 --mongo-uri mongodb://localhost:27017`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := c.Conf().Serve
			if addr == "" {
				addr = conf.Addr
			}
			if redisURL == "" {
				redisURL = conf.RedisURL
			}
			if mongoURI == "" {
				mongoURI = conf.MongoURI
			}
			return c.runServe(cmd.Context(), addr, redisURL, mongoURI, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "redis URL for the result cache (default local file cache)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "mongodb URI for enumeration cursors (default in-memory)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

// runServe assembles the backends and serves until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, addr, redisURL, mongoURI string, noCache bool) error {
	store, closeStore, err := c.newStore(ctx, mongoURI)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer closeStore()

	cch, err := c.newServeCache(ctx, redisURL, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(cch, c.Logger)
	defer runner.Close()

	srv := server.New(runner, store, c.Logger)
	return srv.ListenAndServe(ctx, addr)
}

// newStore picks the enumeration store backend.
func (c *CLI) newStore(ctx context.Context, mongoURI string) (enumstore.Store, func(), error) {
	if mongoURI == "" {
		c.Logger.Debug("using in-memory enumeration store")
		return enumstore.NewMemStore(), func() {}, nil
	}
	mongo, err := enumstore.NewMongoStore(ctx, mongoURI, mongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Info("using mongodb enumeration store", "database", mongoDatabase)
	closeStore := func() {
		if err := mongo.Close(context.Background()); err != nil {
			c.Logger.Error("closing mongodb store", "error", err)
		}
	}
	return mongo, closeStore, nil
}

// newServeCache picks the result cache backend for the server.
func (c *CLI) newServeCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		c.Logger.Info("using redis result cache")
		rc, err := cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, err
		}
		// Keep keys out of the way of anything else on a shared instance.
		return cache.Scoped(rc, appName+":"), nil
	}
	return c.newCache(false)
}
