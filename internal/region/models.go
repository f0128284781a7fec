package region

import (
	"context"

	"nikgen/internal/region/models"
)

// Entry is re-exported so callers of the store rarely need the models package.
type Entry = models.Entry

//go:generate mockgen -source=models.go -destination=mocks/mocks.go -package=mocks Source,Cache

// Source supplies the three levels of the hierarchy. Implementations report a
// missing segment with sentinel.ErrNotFound (optionally wrapped).
type Source interface {
	Provinces(ctx context.Context) ([]models.Entry, error)
	Regencies(ctx context.Context, provinceCode string) ([]models.Entry, error)
	Districts(ctx context.Context, provinceCode, regencyCode string) ([]models.Entry, error)
}

// Cache memoizes resolved regency and district lists. Find methods return
// sentinel.ErrNotFound on a miss.
type Cache interface {
	FindRegencies(ctx context.Context, provinceCode string) ([]models.Entry, error)
	SaveRegencies(ctx context.Context, provinceCode string, entries []models.Entry) error
	FindDistricts(ctx context.Context, provinceCode, regencyCode string) ([]models.Entry, error)
	SaveDistricts(ctx context.Context, provinceCode, regencyCode string, entries []models.Entry) error
}
