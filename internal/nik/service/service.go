package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Regions

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"nikgen/internal/nik"
	"nikgen/internal/nik/metrics"
	"nikgen/internal/platform/logger"
	"nikgen/internal/region/models"
)

// Regions is the slice of the region store the service depends on.
// *region.Store satisfies it.
type Regions interface {
	ListProvinces() []models.Entry
	ListRegencies(ctx context.Context, provinceCode string) ([]models.Entry, error)
	ListDistricts(ctx context.Context, provinceCode, regencyCode string) ([]models.Entry, error)
}

// Service generates and validates NIKs against the region hierarchy.
type Service struct {
	regions Regions
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	rand    *lockedRand
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock sets the clock used for the two-digit-year century rule.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand makes random choices reproducible. The generator is guarded by a
// mutex, so one *rand.Rand may back concurrent calls.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) {
		s.rand = &lockedRand{r: r}
	}
}

func New(regions Regions, opts ...Option) (*Service, error) {
	if regions == nil {
		return nil, errors.New("regions store is required")
	}

	svc := &Service{
		regions: regions,
		logger:  logger.Discard(),
		now:     time.Now,
		rand:    &lockedRand{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Decode parses nik using the service clock. See nik.DecodeAt.
func (s *Service) Decode(nikString string) nik.ParsedIdentity {
	return nik.DecodeAt(nikString, s.now())
}

// lockedRand serializes access to an injected *rand.Rand and falls back to
// the concurrency-safe top-level functions otherwise.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// IntN returns a uniform integer in [0, n).
func (l *lockedRand) IntN(n int) int {
	if l.r == nil {
		return rand.IntN(n)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	if l.r == nil {
		rand.Shuffle(n, swap)
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// Between returns a uniform integer in [lo, hi].
func (l *lockedRand) Between(lo, hi int) int {
	return lo + l.IntN(hi-lo+1)
}
