package nik

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	nikmetrics "nikgen/internal/nik/metrics"
	"nikgen/internal/nik/service"
	"nikgen/internal/platform/logger"
	"nikgen/internal/region"
	"nikgen/internal/region/data"
	regionmetrics "nikgen/internal/region/metrics"
	"nikgen/internal/region/source"
)

// Client owns one region store and the generator/validator built on it.
// It is safe for concurrent use.
type Client struct {
	store   *region.Store
	service *service.Service
}

type clientOptions struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	now        func() time.Time
}

type ClientOption func(*clientOptions)

// WithLogger overrides the logger built from Config.Logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithRegisterer registers the client's collectors with reg, regardless of
// Config.MetricsEnabled.
func WithRegisterer(reg prometheus.Registerer) ClientOption {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}

// WithClock sets the clock used by the century rule.
func WithClock(now func() time.Time) ClientOption {
	return func(o *clientOptions) {
		o.now = now
	}
}

// NewClient builds a client over the region data selected by cfg.Regions:
// a nested dataset file, a split-layout directory, or the embedded sample.
func NewClient(ctx context.Context, cfg Config, opts ...ClientOption) (*Client, error) {
	src, err := sourceFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, src, cfg, opts...)
}

// NewClientFromSource builds a client over an arbitrary region source.
func NewClientFromSource(ctx context.Context, src Source, opts ...ClientOption) (*Client, error) {
	return newClient(ctx, src, DefaultConfig(), opts...)
}

func newClient(ctx context.Context, src Source, cfg Config, opts ...ClientOption) (*Client, error) {
	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.New(cfg.Logging)
	}

	regionOpts := []region.Option{region.WithLogger(o.logger)}
	serviceOpts := []service.Option{service.WithLogger(o.logger)}
	if o.now != nil {
		serviceOpts = append(serviceOpts, service.WithClock(o.now))
	}

	switch {
	case o.registerer != nil:
		regionOpts = append(regionOpts, region.WithMetrics(regionmetrics.New(o.registerer)))
		serviceOpts = append(serviceOpts, service.WithMetrics(nikmetrics.New(o.registerer)))
	case cfg.MetricsEnabled:
		rm, nm := defaultMetrics()
		regionOpts = append(regionOpts, region.WithMetrics(rm))
		serviceOpts = append(serviceOpts, service.WithMetrics(nm))
	}

	store, err := region.New(ctx, src, regionOpts...)
	if err != nil {
		return nil, fmt.Errorf("initializing region store: %w", err)
	}
	if cfg.Regions.Warm {
		if err := store.Warm(ctx); err != nil {
			return nil, fmt.Errorf("warming region store: %w", err)
		}
	}

	svc, err := service.New(store, serviceOpts...)
	if err != nil {
		return nil, fmt.Errorf("initializing nik service: %w", err)
	}
	return &Client{store: store, service: svc}, nil
}

func sourceFromConfig(cfg Config) (Source, error) {
	switch {
	case cfg.Regions.Dataset != "":
		f, err := os.Open(cfg.Regions.Dataset)
		if err != nil {
			return nil, fmt.Errorf("opening region dataset: %w", err)
		}
		defer f.Close()

		nested, err := source.LoadNested(f)
		if err != nil {
			return nil, fmt.Errorf("loading region dataset %s: %w", cfg.Regions.Dataset, err)
		}
		return nested, nil
	case cfg.Regions.DataDir != "":
		return source.NewFSSource(os.DirFS(cfg.Regions.DataDir)), nil
	default:
		return source.NewFSSource(data.FS), nil
	}
}

// Collectors on the default registry can only be registered once per process.
var (
	defaultMetricsOnce sync.Once
	defaultRegion      *regionmetrics.Metrics
	defaultNIK         *nikmetrics.Metrics
)

func defaultMetrics() (*regionmetrics.Metrics, *nikmetrics.Metrics) {
	defaultMetricsOnce.Do(func() {
		defaultRegion = regionmetrics.New(prometheus.DefaultRegisterer)
		defaultNIK = nikmetrics.New(prometheus.DefaultRegisterer)
	})
	return defaultRegion, defaultNIK
}

func (c *Client) Generate(ctx context.Context, opts Options) (string, error) {
	return c.service.Generate(ctx, opts)
}

func (c *Client) GenerateOffline(opts Options) (string, error) {
	return c.service.GenerateOffline(opts)
}

// Decode parses nik using the client clock.
func (c *Client) Decode(nik string) ParsedIdentity {
	return c.service.Decode(nik)
}

func (c *Client) ValidateFull(ctx context.Context, nik string) (bool, error) {
	return c.service.ValidateFull(ctx, nik)
}

func (c *Client) ValidateFormat(nik string) bool {
	return c.service.ValidateFormat(nik)
}

// Inspect is ValidateFull that also returns the parsed identity and region names.
func (c *Client) Inspect(ctx context.Context, nik string) (Report, error) {
	return c.service.Inspect(ctx, nik)
}

func (c *Client) ListProvinces() []Entry {
	return c.store.ListProvinces()
}

func (c *Client) ListRegencies(ctx context.Context, provinceCode string) ([]Entry, error) {
	return c.store.ListRegencies(ctx, provinceCode)
}

func (c *Client) ListDistricts(ctx context.Context, provinceCode, regencyCode string) ([]Entry, error) {
	return c.store.ListDistricts(ctx, provinceCode, regencyCode)
}

// Warm resolves every regency and district list up front.
func (c *Client) Warm(ctx context.Context) error {
	return c.store.Warm(ctx)
}
