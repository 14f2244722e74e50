package service

import (
	"context"
	"sync"
	"time"

	"agrostock-backend/internal/ai"
	"agrostock-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	// InitialSummary is shown until the first analyst call returns.
	InitialSummary = "Loading AI business insights..."
	// FallbackSummary replaces the narrative whenever the analyst is
	// unreachable or returns garbage. The rest of the system keeps working.
	FallbackSummary = "Intelligence services are currently offline. Please check back later."
)

// InsightService maintains the current narrative business summary. Each
// Refresh snapshots products and sales, bumps a generation counter, and
// fetches a new summary in the background; a result is applied only if no
// newer request was issued while it was in flight, so a stale summary can
// never overwrite one built from fresher state.
type InsightService struct {
	mu      sync.Mutex
	gen     uint64
	summary string

	// refreshMu serializes snapshot + generation assignment so that a
	// refresh never pairs an older snapshot with a newer generation.
	refreshMu sync.Mutex

	analyst     ai.Analyst
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	log         *logrus.Logger
	timeout     time.Duration

	// wg lets tests wait for in-flight fetches.
	wg sync.WaitGroup
}

func NewInsightService(
	analyst ai.Analyst,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	log *logrus.Logger,
) *InsightService {
	return &InsightService{
		summary:     InitialSummary,
		analyst:     analyst,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		log:         log,
		timeout:     30 * time.Second,
	}
}

// Summary returns the latest applied summary.
func (s *InsightService) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Refresh issues a new summary request over the current state snapshot.
// Safe to call after every mutation; superseded requests are discarded.
func (s *InsightService) Refresh() {
	s.refreshMu.Lock()

	products, err := s.productRepo.FindAll()
	if err != nil {
		s.refreshMu.Unlock()
		s.log.WithError(err).Warn("insight refresh: product snapshot failed")
		return
	}
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		s.refreshMu.Unlock()
		s.log.WithError(err).Warn("insight refresh: sales snapshot failed")
		return
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()
	s.refreshMu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		text, err := s.analyst.Summarize(ctx, products, sales)
		if err != nil {
			s.log.WithError(err).Warn("analyst unavailable, using fallback summary")
			text = FallbackSummary
		}
		s.apply(gen, text)
	}()
}

func (s *InsightService) apply(gen uint64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer request superseded this one while it was in flight.
		return
	}
	s.summary = text
}

// Wait blocks until all in-flight fetches finish.
func (s *InsightService) Wait() {
	s.wg.Wait()
}
