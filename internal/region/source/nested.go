package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

// nestedDistrict, nestedRegency and nestedProvince mirror the shape of the
// national reference dataset: name-keyed levels with dotted composite IDs.
type nestedDistrict struct {
	ID string `json:"ID"`
}

type nestedRegency struct {
	ID        string                    `json:"ID"`
	Districts map[string]nestedDistrict `json:"Kecamatan"`
}

type nestedProvince struct {
	ID        string                   `json:"ID"`
	Regencies map[string]nestedRegency `json:"Kabupaten/Kota"`
}

// NestedSource serves the hierarchy from a single nested dataset held in
// memory. Lists are flattened once at load and sorted by code.
type NestedSource struct {
	provinces []models.Entry
	regencies map[string][]models.Entry
	districts map[string][]models.Entry // keyed "PP.RR"
}

// LoadNested decodes a nested dataset:
//
//	{ "<province name>": { "ID": "PP", "Kabupaten/Kota": {
//	    "<regency name>": { "ID": "PP.RR", "Kecamatan": {
//	        "<district name>": { "ID": "PP.RR.DD" } } } } } }
func LoadNested(r io.Reader) (*NestedSource, error) {
	var raw map[string]nestedProvince
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode nested dataset: %w", err)
	}

	src := &NestedSource{
		regencies: make(map[string][]models.Entry, len(raw)),
		districts: make(map[string][]models.Entry),
	}
	for provinceName, province := range raw {
		provinceCode := province.ID
		if !validCode(provinceCode) {
			return nil, fmt.Errorf("province %q: malformed id %q", provinceName, provinceCode)
		}
		if _, dup := src.regencies[provinceCode]; dup {
			return nil, fmt.Errorf("province %q: duplicate code %q", provinceName, provinceCode)
		}
		src.provinces = append(src.provinces, models.Entry{Code: provinceCode, Name: provinceName})

		regencies := make([]models.Entry, 0, len(province.Regencies))
		for regencyName, regency := range province.Regencies {
			regencyCode, err := segment(regency.ID, 1, provinceCode)
			if err != nil {
				return nil, fmt.Errorf("regency %q: %w", regencyName, err)
			}
			if models.Contains(regencies, regencyCode) {
				return nil, fmt.Errorf("regency %q: duplicate code %q", regencyName, regency.ID)
			}
			regencies = append(regencies, models.Entry{Code: regencyCode, Name: regencyName})

			districts := make([]models.Entry, 0, len(regency.Districts))
			for districtName, district := range regency.Districts {
				districtCode, err := segment(district.ID, 2, regency.ID)
				if err != nil {
					return nil, fmt.Errorf("district %q: %w", districtName, err)
				}
				if models.Contains(districts, districtCode) {
					return nil, fmt.Errorf("district %q: duplicate code %q", districtName, district.ID)
				}
				districts = append(districts, models.Entry{Code: districtCode, Name: districtName})
			}
			sortByCode(districts)
			src.districts[pairKey(provinceCode, regencyCode)] = districts
		}
		sortByCode(regencies)
		src.regencies[provinceCode] = regencies
	}
	sortByCode(src.provinces)
	return src, nil
}

func (s *NestedSource) Provinces(_ context.Context) ([]models.Entry, error) {
	return slices.Clone(s.provinces), nil
}

func (s *NestedSource) Regencies(_ context.Context, provinceCode string) ([]models.Entry, error) {
	entries, ok := s.regencies[provinceCode]
	if !ok {
		return nil, fmt.Errorf("province %q: %w", provinceCode, sentinel.ErrNotFound)
	}
	return slices.Clone(entries), nil
}

func (s *NestedSource) Districts(_ context.Context, provinceCode, regencyCode string) ([]models.Entry, error) {
	entries, ok := s.districts[pairKey(provinceCode, regencyCode)]
	if !ok {
		return nil, fmt.Errorf("regency %q.%q: %w", provinceCode, regencyCode, sentinel.ErrNotFound)
	}
	return slices.Clone(entries), nil
}

// segment extracts part idx of a dotted ID and checks that the ID extends
// its parent's ID.
func segment(id string, idx int, parentID string) (string, error) {
	parts := strings.Split(id, ".")
	if len(parts) != idx+1 {
		return "", fmt.Errorf("malformed id %q", id)
	}
	if strings.Join(parts[:idx], ".") != parentID {
		return "", fmt.Errorf("id %q is not under %q", id, parentID)
	}
	if !validCode(parts[idx]) {
		return "", fmt.Errorf("malformed id %q", id)
	}
	return parts[idx], nil
}

func pairKey(provinceCode, regencyCode string) string {
	return provinceCode + "." + regencyCode
}

func sortByCode(entries []models.Entry) {
	slices.SortFunc(entries, func(a, b models.Entry) int {
		return strings.Compare(a.Code, b.Code)
	})
}
