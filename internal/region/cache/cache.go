package cache

import (
	"context"
	"slices"
	"sync"

	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

type districtKey struct {
	province string
	regency  string
}

// InMemoryCache memoizes regency lists per province and district lists per
// (province, regency) pair. Entries never expire: reference data is static
// for the lifetime of the owner.
type InMemoryCache struct {
	mu        sync.RWMutex
	regencies map[string][]models.Entry
	districts map[districtKey][]models.Entry
}

// NewInMemoryCache creates an empty cache.
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		regencies: make(map[string][]models.Entry),
		districts: make(map[districtKey][]models.Entry),
	}
}

// SaveRegencies stores the regency list of a province. A nil list is stored as
// an empty one so that a province with no regencies is still a hit.
func (c *InMemoryCache) SaveRegencies(_ context.Context, provinceCode string, entries []models.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regencies[provinceCode] = cloneEntries(entries)
	return nil
}

// FindRegencies returns a copy of the cached regency list.
// Returns sentinel.ErrNotFound if the province was never stored.
func (c *InMemoryCache) FindRegencies(_ context.Context, provinceCode string) ([]models.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if entries, ok := c.regencies[provinceCode]; ok {
		return cloneEntries(entries), nil
	}
	return nil, sentinel.ErrNotFound
}

// SaveDistricts stores the district list of a (province, regency) pair.
func (c *InMemoryCache) SaveDistricts(_ context.Context, provinceCode, regencyCode string, entries []models.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.districts[districtKey{province: provinceCode, regency: regencyCode}] = cloneEntries(entries)
	return nil
}

// FindDistricts returns a copy of the cached district list.
// Returns sentinel.ErrNotFound if the pair was never stored.
func (c *InMemoryCache) FindDistricts(_ context.Context, provinceCode, regencyCode string) ([]models.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if entries, ok := c.districts[districtKey{province: provinceCode, regency: regencyCode}]; ok {
		return cloneEntries(entries), nil
	}
	return nil, sentinel.ErrNotFound
}

// Len reports how many regency and district lists are cached.
func (c *InMemoryCache) Len() (regencies, districts int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.regencies), len(c.districts)
}

func cloneEntries(entries []models.Entry) []models.Entry {
	if entries == nil {
		return []models.Entry{}
	}
	return slices.Clone(entries)
}
