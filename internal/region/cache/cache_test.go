package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

type InMemoryCacheSuite struct {
	suite.Suite
	cache *InMemoryCache
	ctx   context.Context
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheSuite))
}

func (s *InMemoryCacheSuite) SetupTest() {
	s.cache = NewInMemoryCache()
	s.ctx = context.Background()
}

func (s *InMemoryCacheSuite) TestRegencies() {
	s.Run("miss returns ErrNotFound", func() {
		_, err := s.cache.FindRegencies(s.ctx, "31")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("saved list is returned", func() {
		entries := []models.Entry{{Code: "71", Name: "KOTA ADM. JAKARTA PUSAT"}}
		s.Require().NoError(s.cache.SaveRegencies(s.ctx, "31", entries))

		found, err := s.cache.FindRegencies(s.ctx, "31")
		s.Require().NoError(err)
		s.Equal(entries, found)
	})

	s.Run("empty list is a hit", func() {
		s.Require().NoError(s.cache.SaveRegencies(s.ctx, "99", nil))

		found, err := s.cache.FindRegencies(s.ctx, "99")
		s.Require().NoError(err)
		s.NotNil(found)
		s.Empty(found)
	})

	s.Run("callers cannot mutate cached list", func() {
		s.Require().NoError(s.cache.SaveRegencies(s.ctx, "51", []models.Entry{{Code: "71", Name: "KOTA DENPASAR"}}))

		found, err := s.cache.FindRegencies(s.ctx, "51")
		s.Require().NoError(err)
		found[0].Name = "changed"

		again, err := s.cache.FindRegencies(s.ctx, "51")
		s.Require().NoError(err)
		s.Equal("KOTA DENPASAR", again[0].Name)
	})
}

func (s *InMemoryCacheSuite) TestDistrictsKeyedByPair() {
	s.Require().NoError(s.cache.SaveDistricts(s.ctx, "31", "71", []models.Entry{{Code: "01", Name: "GAMBIR"}}))
	s.Require().NoError(s.cache.SaveDistricts(s.ctx, "34", "71", []models.Entry{{Code: "01", Name: "MANTRIJERON"}}))

	jakarta, err := s.cache.FindDistricts(s.ctx, "31", "71")
	s.Require().NoError(err)
	s.Equal("GAMBIR", jakarta[0].Name)

	yogya, err := s.cache.FindDistricts(s.ctx, "34", "71")
	s.Require().NoError(err)
	s.Equal("MANTRIJERON", yogya[0].Name)

	_, err = s.cache.FindDistricts(s.ctx, "51", "71")
	s.ErrorIs(err, sentinel.ErrNotFound)

	regencies, districts := s.cache.Len()
	s.Equal(0, regencies)
	s.Equal(2, districts)
}
