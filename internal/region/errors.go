package region

import (
	"errors"
	"fmt"
)

// DataErrorKind classifies missing reference data.
type DataErrorKind string

const (
	// RegencyNotFound means the regency list for a province could not be resolved.
	RegencyNotFound DataErrorKind = "REGENCY_NOT_FOUND"

	// DistrictNotFound means the district list for a (province, regency) pair
	// could not be resolved.
	DistrictNotFound DataErrorKind = "DISTRICT_NOT_FOUND"
)

// DataError reports that reference data for a key is missing or unreadable.
// Err carries the source failure; errors.Is(err, sentinel.ErrNotFound) tells a
// plain miss apart from an unreadable source.
type DataError struct {
	Kind         DataErrorKind
	ProvinceCode string
	RegencyCode  string
	Err          error
}

func (e *DataError) Error() string {
	key := e.ProvinceCode
	if e.Kind == DistrictNotFound {
		key = e.ProvinceCode + "." + e.RegencyCode
	}
	if e.Err != nil {
		return fmt.Sprintf("region data [%s] %s: %v", e.Kind, key, e.Err)
	}
	return fmt.Sprintf("region data [%s] %s", e.Kind, key)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a DataError of the given kind.
func IsKind(err error, kind DataErrorKind) bool {
	var de *DataError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
