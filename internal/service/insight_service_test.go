package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyst struct {
	mu      sync.Mutex
	calls   int
	started chan struct{} // closed when the first call arrives
	release chan struct{} // first call blocks until this closes
	err     error
}

func (a *stubAnalyst) Summarize(ctx context.Context, products []model.Product, sales []model.Sale) (string, error) {
	a.mu.Lock()
	a.calls++
	n := a.calls
	a.mu.Unlock()

	if a.err != nil {
		return "", a.err
	}
	if n == 1 {
		if a.started != nil {
			close(a.started)
		}
		if a.release != nil {
			<-a.release
		}
		return "stale summary", nil
	}
	return "fresh summary", nil
}

func newInsightEnv(t *testing.T, analyst *stubAnalyst) (*testEnv, *InsightService) {
	t.Helper()
	env := newTestEnv(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return env, NewInsightService(analyst, env.products, env.sales, log)
}

func TestInsightInitialSummary(t *testing.T) {
	_, insight := newInsightEnv(t, &stubAnalyst{})
	assert.Equal(t, InitialSummary, insight.Summary())
}

func TestInsightAppliesAnalystResult(t *testing.T) {
	_, insight := newInsightEnv(t, &stubAnalyst{})

	insight.Refresh()
	insight.Wait()
	assert.Equal(t, "stale summary", insight.Summary())
}

func TestInsightFallsBackWhenAnalystFails(t *testing.T) {
	_, insight := newInsightEnv(t, &stubAnalyst{err: errors.New("gateway timeout")})

	insight.Refresh()
	insight.Wait()
	assert.Equal(t, FallbackSummary, insight.Summary())
}

func TestInsightDiscardsStaleResult(t *testing.T) {
	analyst := &stubAnalyst{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	_, insight := newInsightEnv(t, analyst)

	// First request goes out and hangs in flight.
	insight.Refresh()
	<-analyst.started

	// A newer request supersedes it and completes immediately.
	insight.Refresh()

	// Now let the stale first response land; it must be discarded.
	close(analyst.release)
	insight.Wait()

	require.Equal(t, "fresh summary", insight.Summary())
}

// snapshotAnalyst echoes the snapshot it was given, so tests can tell which
// state each summary was built from.
type snapshotAnalyst struct{}

func (snapshotAnalyst) Summarize(ctx context.Context, products []model.Product, sales []model.Sale) (string, error) {
	return fmt.Sprintf("tracking %d products", len(products)), nil
}

// gatedProductRepo stalls the first FindAll after it has read its result,
// simulating a refresh whose snapshot is slow to come back.
type gatedProductRepo struct {
	repository.ProductRepository

	mu      sync.Mutex
	calls   int
	entered chan struct{} // closed once the first read has completed
	release chan struct{} // first FindAll returns only after this closes
}

func (r *gatedProductRepo) FindAll() ([]model.Product, error) {
	products, err := r.ProductRepository.FindAll()

	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()

	if first {
		close(r.entered)
		<-r.release
	}
	return products, err
}

func TestInsightSlowSnapshotCannotOvertakeNewerState(t *testing.T) {
	env := newTestEnv(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	gated := &gatedProductRepo{
		ProductRepository: env.products,
		entered:           make(chan struct{}),
		release:           make(chan struct{}),
	}
	insight := NewInsightService(snapshotAnalyst{}, gated, env.sales, log)

	env.createProduct(t, "Bags of Rice (50kg)", 1000, 100)

	// First refresh reads the single-product state, then stalls.
	var refreshes sync.WaitGroup
	refreshes.Add(1)
	go func() {
		defer refreshes.Done()
		insight.Refresh()
	}()
	<-gated.entered

	// State moves on while that snapshot is still outstanding, and a second
	// refresh is issued over the newer state.
	env.createProduct(t, "NPK Fertilizer", 250, 50)
	refreshes.Add(1)
	go func() {
		defer refreshes.Done()
		insight.Refresh()
	}()

	close(gated.release)
	refreshes.Wait()
	insight.Wait()

	// The refresh that saw both products must win, regardless of which
	// snapshot came back first.
	require.Equal(t, "tracking 2 products", insight.Summary())
}
