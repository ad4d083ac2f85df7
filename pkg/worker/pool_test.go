package worker

import (
	"context"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/haulflow/freightdesk/pkg/vector"
)

type fakeEmbedder struct {
	err error

	// block, when set, stalls Embed until it is closed.
	block chan struct{}
}

func (e *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if e.block != nil {
		<-e.block
	}
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 0.5}, nil
}

func (e *fakeEmbedder) Close() error { return nil }

// memoryDriver is a minimal vector.Driver recording added documents.
type memoryDriver struct {
	mu   sync.Mutex
	docs map[string]vector.Document
}

func newMemoryDriver() *memoryDriver {
	return &memoryDriver{docs: make(map[string]vector.Document)}
}

func (d *memoryDriver) Add(_ context.Context, docs []vector.Document) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, doc := range docs {
		d.docs[doc.ID] = doc
	}
	return nil
}

func (d *memoryDriver) Query(_ context.Context, _ []float32, _ int) ([]vector.QueryResult, error) {
	return nil, nil
}

func (d *memoryDriver) Get(_ context.Context, ids []string) ([]vector.Document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []vector.Document
	for _, id := range ids {
		if doc, ok := d.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (d *memoryDriver) Delete(_ context.Context, _ []string) error { return nil }
func (d *memoryDriver) Close() error                               { return nil }

func (d *memoryDriver) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.docs)
}

var _ = Describe("Pool", func() {
	var driver *memoryDriver

	BeforeEach(func() {
		driver = newMemoryDriver()
	})

	newTestPool := func(embedErr error) *Pool {
		wp, err := NewPool(&Config{
			Embedder:     &fakeEmbedder{err: embedErr},
			VectorDriver: driver,
		})
		Expect(err).NotTo(HaveOccurred())
		return wp
	}

	It("requires an embedder and a vector driver", func() {
		_, err := NewPool(&Config{})
		Expect(err).To(HaveOccurred())
	})

	It("embeds and stores enqueued documents", func() {
		wp := newTestPool(nil)

		ok := wp.Enqueue(Job{ID: "d1", Title: "Pallets", Content: "Max 24 pallets per FTL."})
		Expect(ok).To(BeTrue())
		wp.Enqueue(Job{ID: "d2", Title: "Billing", Content: "Invoices are monthly."})

		// Close drains the queue before returning.
		wp.Close()

		Expect(driver.count()).To(Equal(2))
		docs, err := driver.Get(context.Background(), []string{"d1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(1))
		Expect(docs[0].Embedding).NotTo(BeEmpty())
	})

	It("skips documents with no content", func() {
		wp := newTestPool(nil)
		wp.Enqueue(Job{ID: "empty"})
		wp.Close()

		Expect(driver.count()).To(BeZero())
	})

	It("drops documents whose embedding fails without stopping the pool", func() {
		wp := newTestPool(fmt.Errorf("embedder unreachable"))
		wp.Enqueue(Job{ID: "d1", Content: "some text"})
		wp.Close()

		Expect(driver.count()).To(BeZero())
	})

	It("reports a full queue instead of blocking", func() {
		release := make(chan struct{})
		wp, err := NewPool(&Config{
			Embedder:     &fakeEmbedder{block: release},
			VectorDriver: driver,
			NumWorkers:   1,
			QueueSize:    1,
		})
		Expect(err).NotTo(HaveOccurred())

		// With the single worker stalled, pushing past capacity must
		// eventually report a drop rather than block.
		dropped := false
		for i := 0; i < 10; i++ {
			if !wp.Enqueue(Job{ID: fmt.Sprintf("d%d", i), Content: "x"}) {
				dropped = true
				break
			}
		}
		Expect(dropped).To(BeTrue())

		close(release)
		wp.Close()
	})
})
