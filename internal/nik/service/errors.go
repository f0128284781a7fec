package service

import (
	"errors"
	"fmt"
)

// Level names a tier of the administrative hierarchy.
type Level string

const (
	LevelProvince Level = "province"
	LevelRegency  Level = "regency"
	LevelDistrict Level = "district"
)

// ErrNoProvinces is returned when generation has no province to choose from.
var ErrNoProvinces = errors.New("region store has no provinces")

// InvalidLocationError reports a province/regency/district combination that
// does not exist. Level is the first tier that failed to match.
type InvalidLocationError struct {
	Level        Level
	ProvinceCode string
	RegencyCode  string
	DistrictCode string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location %s.%s.%s: unknown %s", e.ProvinceCode, e.RegencyCode, e.DistrictCode, e.Level)
}

// RegionLookupError wraps a region store failure met during full validation.
// It means the reference data was unavailable, not that the NIK is wrong.
type RegionLookupError struct {
	Level Level
	Err   error
}

func (e *RegionLookupError) Error() string {
	return fmt.Sprintf("region lookup at %s level: %v", e.Level, e.Err)
}

func (e *RegionLookupError) Unwrap() error {
	return e.Err
}
