package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/embeddings"
	"github.com/haulflow/freightdesk/pkg/llm"
	"github.com/haulflow/freightdesk/pkg/vector"
)

// docsTopK is the retrieval depth for documentation answers.
const docsTopK = 5

// DocsAgent answers product and documentation questions grounded on the
// embedded knowledge base. It is also the router's fallback, so it must
// handle arbitrary messages gracefully.
type DocsAgent struct {
	call     llm.CallFunc
	embedder embeddings.Embedder
	docs     vector.Driver
	logger   *zap.Logger
}

// NewDocsAgent creates a documentation agent.
func NewDocsAgent(call llm.CallFunc, embedder embeddings.Embedder, docs vector.Driver, logger *zap.Logger) *DocsAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocsAgent{call: call, embedder: embedder, docs: docs, logger: logger}
}

func (a *DocsAgent) Kind() Kind { return KindDocs }

// Process retrieves matching documents and answers grounded on them.
// Retrieval failure degrades to an ungrounded answer rather than an
// error.
func (a *DocsAgent) Process(ctx context.Context, req *Request) (*Response, error) {
	var results []vector.QueryResult
	if a.embedder != nil && a.docs != nil {
		var err error
		results, err = retrieve(ctx, a.embedder, a.docs, req.Message, docsTopK)
		if err != nil {
			a.logger.Warn("docs retrieval failed", zap.Error(err))
		}
	}

	messages := append(llm.RecentWindow(req.History), llm.NewUserMessage(req.Message))
	text, err := a.call(ctx, llm.CallRequest{
		System:      docsSystemPrompt + "\n\n" + contextBlock(results),
		Messages:    messages,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, err
	}

	resp := newAssistantResponse(KindDocs, text)
	resp.Sources = sourcesOf(results)
	return resp, nil
}
