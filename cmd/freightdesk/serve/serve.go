// Package servecmder provides the serve command that runs the freightdesk API server.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/api"
	"github.com/haulflow/freightdesk/pkg/agent"
	"github.com/haulflow/freightdesk/pkg/config"
	embeddingutils "github.com/haulflow/freightdesk/pkg/embeddings/utils"
	"github.com/haulflow/freightdesk/pkg/eventstream"
	"github.com/haulflow/freightdesk/pkg/eventstream/kafka"
	"github.com/haulflow/freightdesk/pkg/eventstream/nop"
	"github.com/haulflow/freightdesk/pkg/geo"
	"github.com/haulflow/freightdesk/pkg/llm"
	"github.com/haulflow/freightdesk/pkg/logger"
	"github.com/haulflow/freightdesk/pkg/quote"
	"github.com/haulflow/freightdesk/pkg/storage"
	"github.com/haulflow/freightdesk/pkg/storage/inmemory"
	"github.com/haulflow/freightdesk/pkg/storage/postgres"
	"github.com/haulflow/freightdesk/pkg/storage/sqlite"
	"github.com/haulflow/freightdesk/pkg/vector/sqlitevec"
	"github.com/haulflow/freightdesk/pkg/worker"
)

const serveLongDesc string = `Run the freightdesk API server.

The server exposes the streaming chat endpoint, knowledge-base search
and ingestion, and quote lookups. Configuration resolves from flags,
FREIGHTDESK_ environment variables, config.toml, and defaults, in that
order.`

const serveShortDesc string = "Run the freightdesk API server"

type ServeCommander struct {
	listen        string
	storageDriver string
	sqlitePath    string
	postgresDSN   string
	provider      string
	model         string
	llmTarget     string
	embedProv     string
	embedTarget   string
	embedModel    string
	embedDims     uint
	vectorSQLite  string
	geocodeURL    string
	routeURL      string
	wordDelayMs   uint

	debug  bool
	logger *zap.Logger
}

// serveFlagKeys are the registry keys bound on the serve command.
var serveFlagKeys = []string{
	config.FlagListen,
	config.FlagStorageDriver,
	config.FlagSQLite,
	config.FlagPostgresDSN,
	config.FlagProvider,
	config.FlagModel,
	config.FlagLLMTarget,
	config.FlagEmbeddingProv,
	config.FlagEmbeddingTgt,
	config.FlagEmbeddingModel,
	config.FlagEmbeddingDims,
	config.FlagVectorSQLite,
	config.FlagGeocodeURL,
	config.FlagRouteURL,
	config.FlagWordDelay,
}

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			configDir, err := cmd.Flags().GetString("config-dir")
			if err != nil {
				return fmt.Errorf("could not get config-dir flag: %v", err)
			}

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, config.ServeFlags, serveFlagKeys)

			return cmder.run(config.FromViper(v))
		},
	}

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagListen, &cmder.listen)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagStorageDriver, &cmder.storageDriver)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagPostgresDSN, &cmder.postgresDSN)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagProvider, &cmder.provider)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagModel, &cmder.model)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagLLMTarget, &cmder.llmTarget)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagEmbeddingProv, &cmder.embedProv)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagEmbeddingTgt, &cmder.embedTarget)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagEmbeddingModel, &cmder.embedModel)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagEmbeddingDims, &cmder.embedDims)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagVectorSQLite, &cmder.vectorSQLite)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagGeocodeURL, &cmder.geocodeURL)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagRouteURL, &cmder.routeURL)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagWordDelay, &cmder.wordDelayMs)

	return cmd
}

func (c *ServeCommander) run(cfg *config.Config) error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	// Quote store
	quotes, err := c.newQuoteStore(cfg)
	if err != nil {
		return err
	}
	defer quotes.Close()

	// Knowledge base: vector store + embedder
	vectorDriver, err := sqlitevec.NewDriver(sqlitevec.Config{
		DBPath:     cfg.VectorStore.SQLitePath,
		Dimensions: cfg.Embedding.Dimensions,
	}, c.logger)
	if err != nil {
		return fmt.Errorf("creating vector store: %w", err)
	}
	defer vectorDriver.Close()

	embedder, err := embeddingutils.NewEmbedder(&embeddingutils.NewEmbedderOpts{
		ProviderType: cfg.Embedding.Provider,
		TargetURL:    cfg.Embedding.Target,
		Model:        cfg.Embedding.Model,
		APIKey:       os.Getenv("OPENAI_API_KEY"),
	})
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}
	defer embedder.Close()

	// Completion caller
	call, err := llm.NewCaller(llm.CallerConfig{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.Target,
	})
	if err != nil {
		return fmt.Errorf("creating completion caller: %w", err)
	}

	// Geocoding and routing
	geoClient := geo.NewClient(geo.ClientConfig{
		GeocodeURL: cfg.Geo.GeocodeURL,
		RouteURL:   cfg.Geo.RouteURL,
		UserAgent:  cfg.Geo.UserAgent,
	})

	// Quote event publisher
	publisher, err := c.newPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	machine := quote.NewMachine(quote.Config{
		Geocoder:  geoClient,
		Router:    geoClient,
		Quotes:    quotes,
		Publisher: publisher,
		Logger:    c.logger,
	})

	router := agent.NewRouter(call, c.logger)
	coordinator := agent.NewCoordinator(router, []agent.Agent{
		agent.NewQuoteAgent(machine),
		agent.NewDocsAgent(call, embedder, vectorDriver, c.logger),
		agent.NewSupportAgent(call, embedder, vectorDriver, c.logger),
		agent.NewShipmentsAgent(call, c.logger),
	}, c.logger)

	// Background document ingestion
	pool, err := worker.NewPool(&worker.Config{
		Embedder:     embedder,
		VectorDriver: vectorDriver,
		Logger:       c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating ingestion pool: %w", err)
	}

	server := api.NewServer(api.Config{
		ListenAddr:   cfg.API.Listen,
		WordDelay:    time.Duration(cfg.Chat.WordDelayMs) * time.Millisecond,
		Embedder:     embedder,
		VectorDriver: vectorDriver,
	}, coordinator, quotes, pool, c.logger)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		pool.Close()
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			c.logger.Warn("server shutdown failed", zap.Error(err))
		}
		// Drain in-flight ingestion before releasing the stores.
		pool.Close()
		return nil
	}
}

func (c *ServeCommander) newQuoteStore(cfg *config.Config) (storage.QuoteStore, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite quote store: %w", err)
		}
		c.logger.Info("using SQLite quote storage", zap.String("path", cfg.Storage.SQLitePath))
		return store, nil

	case "postgres":
		store, err := postgres.NewStore(context.Background(), cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("creating postgres quote store: %w", err)
		}
		c.logger.Info("using Postgres quote storage")
		return store, nil

	case "inmemory":
		c.logger.Info("using in-memory quote storage")
		return inmemory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

func (c *ServeCommander) newPublisher(cfg *config.Config) (eventstream.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nop.NewPublisher(), nil
	}

	publisher, err := kafka.NewPublisher(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("creating kafka publisher: %w", err)
	}

	c.logger.Info("publishing quote events to kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
	)
	return publisher, nil
}
