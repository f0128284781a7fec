// Package nik generates, parses and validates Indonesian national identity
// numbers (Nomor Induk Kependudukan).
//
// A NIK is sixteen digits: province, regency and district codes, the birth
// date as ddmmyy with 40 added to the day for women, and a four-digit serial.
// Package-level functions use a client built on first use from environment
// configuration (see ConfigFromEnv); NewClient gives explicit control.
package nik

import (
	"context"
	"sync"
	"time"

	codec "nikgen/internal/nik"
	"nikgen/internal/nik/service"
	"nikgen/internal/platform/config"
	"nikgen/internal/region"
)

type (
	ParsedIdentity = codec.ParsedIdentity
	Gender         = codec.Gender
	FormatError    = codec.FormatError

	Options = service.Options
	Report  = service.Report
	Level   = service.Level

	InvalidLocationError = service.InvalidLocationError
	RegionLookupError    = service.RegionLookupError

	Entry         = region.Entry
	Source        = region.Source
	DataError     = region.DataError
	DataErrorKind = region.DataErrorKind

	Config = config.Config
)

const (
	Male   = codec.Male
	Female = codec.Female

	LevelProvince = service.LevelProvince
	LevelRegency  = service.LevelRegency
	LevelDistrict = service.LevelDistrict

	RegencyNotFound  = region.RegencyNotFound
	DistrictNotFound = region.DistrictNotFound
)

// ConfigFromEnv reads NIK_* environment variables over the defaults.
func ConfigFromEnv() Config {
	return config.FromEnv()
}

// DefaultConfig uses the embedded dataset, no logging and no metrics.
func DefaultConfig() Config {
	return config.Default()
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the shared client behind the package-level functions,
// building it from ConfigFromEnv on first call.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = NewClient(context.Background(), ConfigFromEnv())
	})
	return defaultClient, defaultErr
}

// Generate builds a NIK whose region codes exist in the reference data.
func Generate(ctx context.Context, opts Options) (string, error) {
	c, err := Default()
	if err != nil {
		return "", err
	}
	return c.Generate(ctx, opts)
}

// GenerateOffline builds a well-formed NIK without regency or district checks.
func GenerateOffline(opts Options) (string, error) {
	c, err := Default()
	if err != nil {
		return "", err
	}
	return c.GenerateOffline(opts)
}

// Decode parses nik against the current year. It needs no region data.
func Decode(nik string) ParsedIdentity {
	return codec.DecodeAt(nik, time.Now())
}

// Parse is Decode that explains a rejection with a *FormatError.
func Parse(nik string) (ParsedIdentity, error) {
	return codec.Parse(nik, time.Now())
}

// ValidateFull checks the format and that province, regency and district exist.
func ValidateFull(ctx context.Context, nik string) (bool, error) {
	c, err := Default()
	if err != nil {
		return false, err
	}
	return c.ValidateFull(ctx, nik)
}

// ValidateFormat checks the format and the province only. It reports false
// when the default client could not be built.
func ValidateFormat(nik string) bool {
	c, err := Default()
	if err != nil {
		return false
	}
	return c.ValidateFormat(nik)
}

// ListProvinces returns the province table, or nil when the default client
// could not be built.
func ListProvinces() []Entry {
	c, err := Default()
	if err != nil {
		return nil
	}
	return c.ListProvinces()
}

func ListRegencies(ctx context.Context, provinceCode string) ([]Entry, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.ListRegencies(ctx, provinceCode)
}

func ListDistricts(ctx context.Context, provinceCode, regencyCode string) ([]Entry, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.ListDistricts(ctx, provinceCode, regencyCode)
}
