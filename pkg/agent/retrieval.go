package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/haulflow/freightdesk/pkg/embeddings"
	"github.com/haulflow/freightdesk/pkg/sse"
	"github.com/haulflow/freightdesk/pkg/vector"
)

// similarityThreshold is the minimum cosine similarity for a retrieved
// document to ground an answer.
const similarityThreshold = 0.7

// retrieve embeds the query, searches the knowledge base, and keeps the
// hits above the similarity threshold.
func retrieve(ctx context.Context, embedder embeddings.Embedder, store vector.Driver, query string, topK int) ([]vector.QueryResult, error) {
	embedding, err := embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := store.Query(ctx, embedding, topK)
	if err != nil {
		return nil, fmt.Errorf("querying knowledge base: %w", err)
	}

	matched := results[:0]
	for _, result := range results {
		if result.Score >= similarityThreshold {
			matched = append(matched, result)
		}
	}
	return matched, nil
}

func sourcesOf(results []vector.QueryResult) []sse.Source {
	if len(results) == 0 {
		return nil
	}
	sources := make([]sse.Source, 0, len(results))
	for _, result := range results {
		sources = append(sources, sse.Source{
			ID:    result.ID,
			Title: result.Title,
			Score: result.Score,
		})
	}
	return sources
}

// contextBlock renders retrieved documents as a reference section for
// the completion prompt.
func contextBlock(results []vector.QueryResult) string {
	if len(results) == 0 {
		return "No reference material matched this question."
	}

	var sb strings.Builder
	sb.WriteString("Reference material:\n")
	for _, result := range results {
		fmt.Fprintf(&sb, "\n## %s\n%s\n", result.Title, result.Content)
	}
	return sb.String()
}
