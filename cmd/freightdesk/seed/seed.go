// Package seedcmder provides the seed command that loads the built-in
// freight knowledge base into the vector store.
package seedcmder

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haulflow/freightdesk/pkg/config"
	embeddingutils "github.com/haulflow/freightdesk/pkg/embeddings/utils"
	"github.com/haulflow/freightdesk/pkg/logger"
	"github.com/haulflow/freightdesk/pkg/vector"
	"github.com/haulflow/freightdesk/pkg/vector/sqlitevec"
)

const seedLongDesc string = `Seed the knowledge base into the vector store.

Embeds the built-in freight reference documents and writes them to the
sqlite vector database the docs and support agents search at runtime.
Re-running updates documents in place.

Examples:
  freightdesk seed
  freightdesk seed --vector-sqlite ./freightdesk-kb.db
  freightdesk seed --embedding-provider openai --embedding-model text-embedding-3-small`

const seedShortDesc string = "Seed the knowledge base"

type seedCommander struct {
	vectorSQLite string
	embedProv    string
	embedTarget  string
	embedModel   string
	embedDims    uint
}

// seedFlagKeys are the registry keys bound on the seed command.
var seedFlagKeys = []string{
	config.FlagVectorSQLite,
	config.FlagEmbeddingProv,
	config.FlagEmbeddingTgt,
	config.FlagEmbeddingModel,
	config.FlagEmbeddingDims,
}

func NewSeedCmd() *cobra.Command {
	cmder := &seedCommander{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: seedShortDesc,
		Long:  seedLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, err := cmd.Flags().GetString("config-dir")
			if err != nil {
				return fmt.Errorf("could not get config-dir flag: %v", err)
			}

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, config.ServeFlags, seedFlagKeys)

			return cmder.run(cmd.Context(), config.FromViper(v))
		},
	}

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagVectorSQLite, &cmder.vectorSQLite)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagEmbeddingProv, &cmder.embedProv)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagEmbeddingTgt, &cmder.embedTarget)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagEmbeddingModel, &cmder.embedModel)
	config.AddUintFlag(cmd, config.ServeFlags, config.FlagEmbeddingDims, &cmder.embedDims)

	return cmd
}

func (c *seedCommander) run(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(false)
	defer log.Sync()

	driver, err := sqlitevec.NewDriver(sqlitevec.Config{
		DBPath:     cfg.VectorStore.SQLitePath,
		Dimensions: cfg.Embedding.Dimensions,
	}, log)
	if err != nil {
		return fmt.Errorf("creating vector store: %w", err)
	}
	defer driver.Close()

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

	docs := make([]vector.Document, 0, len(seedDocuments))
	for _, sd := range seedDocuments {
		embedding, err := embedder.Embed(ctx, sd.Content)
		if err != nil {
			return fmt.Errorf("embedding %q: %w", sd.Title, err)
		}

		docs = append(docs, vector.Document{
			ID:        sd.ID,
			Title:     sd.Title,
			Content:   sd.Content,
			Embedding: embedding,
		})
		fmt.Printf("embedded %s\n", sd.Title)
	}

	if err := driver.Add(ctx, docs); err != nil {
		return fmt.Errorf("storing documents: %w", err)
	}

	fmt.Printf("\nseeded %d documents into %s\n", len(docs), cfg.VectorStore.SQLitePath)
	return nil
}
