package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squarespiral/internal/server"
	"github.com/matzehuels/squarespiral/pkg/config"
	"github.com/matzehuels/squarespiral/pkg/store"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		storeKind string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Layouts are kept in memory by default. Set server.store to "file" or
"mongo" in the config file (or SQUARESPIRAL_MONGO_URI) to persist them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			if cmd.Flags().Changed("store") {
				c.Config.Server.Store = storeKind
			}
			if err := c.Config.Validate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&storeKind, "store", "", "layout store: memory, file, mongo")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, noCache bool) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(context.Background())

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(server.Options{
		Runner:   runner,
		Store:    st,
		Logger:   c.Logger,
		Defaults: c.Config.PipelineOptions(),
	})

	printInfo("Serving on %s", StyleHighlight.Render(c.Config.Server.Addr))
	printKeyValue("store", c.Config.Server.Store)
	printKeyValue("cache", c.cacheBackend(noCache))
	return srv.ListenAndServe(ctx, c.Config.Server.Addr)
}

// newStore opens the configured layout store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config.Server
	switch cfg.Store {
	case config.StoreFile:
		return store.NewFileStore(cfg.StoreDir)
	case config.StoreMongo:
		return store.NewMongoStore(ctx, store.MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.Database,
			Collection: cfg.Collection,
		})
	default:
		return store.NewMemoryStore(), nil
	}
}

func (c *CLI) cacheBackend(noCache bool) string {
	if noCache {
		return config.CacheNone
	}
	return c.Config.Cache.Backend
}
