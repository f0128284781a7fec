package region

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"nikgen/internal/platform/logger"
	"nikgen/internal/region/cache"
	"nikgen/internal/region/metrics"
	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

const (
	levelRegency  = "regency"
	levelDistrict = "district"

	defaultWarmConcurrency = 8
)

// Store resolves the administrative hierarchy. Provinces are loaded once at
// construction; regency and district lists are loaded from the source on
// first use and memoized in the cache for the lifetime of the store.
type Store struct {
	source    Source
	cache     Cache
	provinces []models.Entry
	group     singleflight.Group
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	warmLimit int
}

type Option func(*Store)

// WithCache replaces the default in-memory cache.
func WithCache(c Cache) Option {
	return func(s *Store) {
		if c != nil {
			s.cache = c
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Store) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithWarmConcurrency bounds how many provinces Warm resolves at once.
func WithWarmConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.warmLimit = n
		}
	}
}

// New builds a store over source and loads the province table eagerly.
func New(ctx context.Context, source Source, opts ...Option) (*Store, error) {
	if source == nil {
		return nil, errors.New("region source is required")
	}

	s := &Store{
		source:    source,
		cache:     cache.NewInMemoryCache(),
		logger:    logger.Discard(),
		tracer:    otel.Tracer("nikgen/internal/region"),
		warmLimit: defaultWarmConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	provinces, err := source.Provinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load provinces: %w", err)
	}
	s.provinces = slices.Clone(provinces)
	s.logger.DebugContext(ctx, "region store ready", "provinces", len(s.provinces))
	return s, nil
}

// ListProvinces returns the province table. It never blocks and never fails.
func (s *Store) ListProvinces() []models.Entry {
	return slices.Clone(s.provinces)
}

// ListRegencies returns the regencies of a province. Any failure to resolve
// the list, including an unknown province, is a *DataError of kind
// RegencyNotFound.
func (s *Store) ListRegencies(ctx context.Context, provinceCode string) ([]models.Entry, error) {
	cached, err := s.cache.FindRegencies(ctx, provinceCode)
	if err == nil {
		s.metrics.RecordCacheHit(levelRegency)
		return cached, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, &DataError{Kind: RegencyNotFound, ProvinceCode: provinceCode, Err: err}
	}
	s.metrics.RecordCacheMiss(levelRegency)

	entries, err := s.shared(ctx, levelRegency+":"+provinceCode, func(ctx context.Context) ([]models.Entry, error) {
		entries, err := s.load(ctx, levelRegency, provinceCode, func(ctx context.Context) ([]models.Entry, error) {
			return s.source.Regencies(ctx, provinceCode)
		})
		if err != nil {
			return nil, err
		}
		if err := s.cache.SaveRegencies(ctx, provinceCode, entries); err != nil {
			s.logger.WarnContext(ctx, "caching regencies failed", "province", provinceCode, "error", err)
		}
		return entries, nil
	})
	if err != nil {
		return nil, &DataError{Kind: RegencyNotFound, ProvinceCode: provinceCode, Err: err}
	}
	return entries, nil
}

// ListDistricts returns the districts of a (province, regency) pair. Any
// failure to resolve the list is a *DataError of kind DistrictNotFound.
func (s *Store) ListDistricts(ctx context.Context, provinceCode, regencyCode string) ([]models.Entry, error) {
	cached, err := s.cache.FindDistricts(ctx, provinceCode, regencyCode)
	if err == nil {
		s.metrics.RecordCacheHit(levelDistrict)
		return cached, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, &DataError{Kind: DistrictNotFound, ProvinceCode: provinceCode, RegencyCode: regencyCode, Err: err}
	}
	s.metrics.RecordCacheMiss(levelDistrict)

	key := provinceCode + "." + regencyCode
	entries, err := s.shared(ctx, levelDistrict+":"+key, func(ctx context.Context) ([]models.Entry, error) {
		entries, err := s.load(ctx, levelDistrict, key, func(ctx context.Context) ([]models.Entry, error) {
			return s.source.Districts(ctx, provinceCode, regencyCode)
		})
		if err != nil {
			return nil, err
		}
		if err := s.cache.SaveDistricts(ctx, provinceCode, regencyCode, entries); err != nil {
			s.logger.WarnContext(ctx, "caching districts failed", "regency", key, "error", err)
		}
		return entries, nil
	})
	if err != nil {
		return nil, &DataError{Kind: DistrictNotFound, ProvinceCode: provinceCode, RegencyCode: regencyCode, Err: err}
	}
	return entries, nil
}

// shared runs resolve once per key across concurrent callers. The load runs
// detached from any single caller's cancellation, so one caller giving up
// never fails the others; each caller stops waiting when its own ctx ends.
func (s *Store) shared(
	ctx context.Context,
	key string,
	resolve func(context.Context) ([]models.Entry, error),
) ([]models.Entry, error) {
	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return resolve(detached)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.Entry)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Warm resolves every regency and district list so later lookups are served
// from the cache. Segments the source does not have (sentinel.ErrNotFound)
// are skipped, since partial datasets are expected. Provinces are processed
// concurrently; the first other failure cancels the rest.
func (s *Store) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.warmLimit)

	for _, province := range s.provinces {
		g.Go(func() error {
			regencies, err := s.ListRegencies(ctx, province.Code)
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			for _, regency := range regencies {
				_, err := s.ListDistricts(ctx, province.Code, regency.Code)
				if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Store) load(
	ctx context.Context,
	level string,
	key string,
	fetch func(context.Context) ([]models.Entry, error),
) ([]models.Entry, error) {
	ctx, span := s.tracer.Start(ctx, "region.load",
		trace.WithAttributes(
			attribute.String("region.level", level),
			attribute.String("region.key", key),
		),
	)
	defer span.End()

	start := time.Now()
	entries, err := fetch(ctx)
	s.metrics.ObserveLoad(level, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "region load failed")
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.DebugContext(ctx, "region segment not found", "level", level, "key", key)
		} else {
			s.logger.WarnContext(ctx, "region load failed", "level", level, "key", key, "error", err)
		}
		return nil, err
	}

	s.logger.DebugContext(ctx, "region loaded", "level", level, "key", key, "entries", len(entries))
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}
