package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"nikgen/internal/nik"
	"nikgen/internal/region"
	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

const (
	modeLocation = "location"
	modeOffline  = "offline"

	minBirthYear = 1990
	maxBirthYear = 2025
)

// Options overrides parts of a generated NIK. Zero values are filled by
// policy: random gender, a random birth date in 1990-2025, random region
// codes and a random serial.
type Options struct {
	Gender       nik.Gender
	BirthDate    time.Time
	ProvinceCode string
	RegencyCode  string
	DistrictCode string
	// Serial is the four-digit serial, e.g. "0001".
	Serial string
}

// Generate builds a NIK whose location codes exist in the region store.
// Supplied codes are checked top-down (province, then regency under that
// province, then district under that pair) and a miss at any level is an
// *InvalidLocationError. Missing reference data for a supplied parent is
// returned as the store's *region.DataError. Unsupplied province and regency
// codes are drawn in random order among entries whose child data resolves, so
// partial datasets still generate.
func (s *Service) Generate(ctx context.Context, opts Options) (string, error) {
	result, err := s.generate(ctx, opts)
	s.metrics.IncrementGenerated(modeLocation, err)
	return result, err
}

func (s *Service) generate(ctx context.Context, opts Options) (string, error) {
	gender, birthDate, serial, err := s.resolvePersonal(opts)
	if err != nil {
		return "", err
	}

	provinces := s.regions.ListProvinces()
	if opts.ProvinceCode != "" && !models.Contains(provinces, opts.ProvinceCode) {
		return "", s.invalidLocation(ctx, LevelProvince, opts.ProvinceCode, opts.RegencyCode, opts.DistrictCode)
	}
	candidates := s.candidates(opts.ProvinceCode, provinces)
	if len(candidates) == 0 {
		return "", ErrNoProvinces
	}

	var lastErr error
	for _, provinceCode := range candidates {
		regencyCode, districtCode, err := s.locateIn(ctx, provinceCode, opts)
		if err == nil {
			return nik.Encode(gender, birthDate, provinceCode, regencyCode, districtCode, serial)
		}
		if opts.ProvinceCode != "" || !isMissingData(err) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

// locateIn resolves regency and district codes under provinceCode.
func (s *Service) locateIn(ctx context.Context, provinceCode string, opts Options) (string, string, error) {
	regencies, err := s.regions.ListRegencies(ctx, provinceCode)
	if err != nil {
		return "", "", err
	}
	if opts.RegencyCode != "" && !models.Contains(regencies, opts.RegencyCode) {
		return "", "", s.invalidLocation(ctx, LevelRegency, provinceCode, opts.RegencyCode, opts.DistrictCode)
	}
	candidates := s.candidates(opts.RegencyCode, regencies)
	if len(candidates) == 0 {
		return "", "", &region.DataError{Kind: region.RegencyNotFound, ProvinceCode: provinceCode, Err: sentinel.ErrNotFound}
	}

	var lastErr error
	for _, regencyCode := range candidates {
		districtCode, err := s.districtIn(ctx, provinceCode, regencyCode, opts.DistrictCode)
		if err == nil {
			return regencyCode, districtCode, nil
		}
		if opts.RegencyCode != "" || !isMissingData(err) {
			return "", "", err
		}
		lastErr = err
	}
	return "", "", lastErr
}

func (s *Service) districtIn(ctx context.Context, provinceCode, regencyCode, supplied string) (string, error) {
	districts, err := s.regions.ListDistricts(ctx, provinceCode, regencyCode)
	if err != nil {
		return "", err
	}
	if supplied != "" {
		if !models.Contains(districts, supplied) {
			return "", s.invalidLocation(ctx, LevelDistrict, provinceCode, regencyCode, supplied)
		}
		return supplied, nil
	}
	if len(districts) == 0 {
		return "", &region.DataError{Kind: region.DistrictNotFound, ProvinceCode: provinceCode, RegencyCode: regencyCode, Err: sentinel.ErrNotFound}
	}
	return districts[s.rand.IntN(len(districts))].Code, nil
}

// candidates returns the supplied code alone, or every entry code in random
// order.
func (s *Service) candidates(supplied string, entries []models.Entry) []string {
	if supplied != "" {
		return []string{supplied}
	}
	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
	}
	s.rand.Shuffle(len(codes), func(i, j int) {
		codes[i], codes[j] = codes[j], codes[i]
	})
	return codes
}

// isMissingData reports whether err means the store has no data for a
// segment, as opposed to a source that could not be read.
func isMissingData(err error) bool {
	var dataErr *region.DataError
	return errors.As(err, &dataErr) && errors.Is(err, sentinel.ErrNotFound)
}

// GenerateOffline builds a NIK without consulting regency or district data.
// Only the province is drawn from the province table; unsupplied regency and
// district codes are random numbers in 01..99 and supplied ones are used
// as-is, so the result is well-formed but need not name a real place. It
// fails only when a supplied field is malformed.
func (s *Service) GenerateOffline(opts Options) (string, error) {
	result, err := s.generateOffline(opts)
	s.metrics.IncrementGenerated(modeOffline, err)
	return result, err
}

func (s *Service) generateOffline(opts Options) (string, error) {
	gender, birthDate, serial, err := s.resolvePersonal(opts)
	if err != nil {
		return "", err
	}
	provinceCode, err := s.resolveProvince(opts.ProvinceCode)
	if err != nil {
		return "", err
	}

	regencyCode := opts.RegencyCode
	if regencyCode == "" {
		regencyCode = fmt.Sprintf("%02d", s.rand.Between(1, 99))
	}
	districtCode := opts.DistrictCode
	if districtCode == "" {
		districtCode = fmt.Sprintf("%02d", s.rand.Between(1, 99))
	}
	return nik.Encode(gender, birthDate, provinceCode, regencyCode, districtCode, serial)
}

func (s *Service) resolvePersonal(opts Options) (nik.Gender, time.Time, int, error) {
	gender := opts.Gender
	if gender == nik.GenderUnknown {
		gender = nik.Male
		if s.rand.IntN(2) == 1 {
			gender = nik.Female
		}
	}

	birthDate := opts.BirthDate
	if birthDate.IsZero() {
		birthDate = s.randomBirthDate()
	}

	serial := s.rand.Between(0, nik.MaxSerial)
	if opts.Serial != "" {
		parsed, err := parseSerial(opts.Serial)
		if err != nil {
			return "", time.Time{}, 0, err
		}
		serial = parsed
	}
	return gender, birthDate, serial, nil
}

func (s *Service) resolveProvince(supplied string) (string, error) {
	if supplied != "" {
		return supplied, nil
	}
	provinces := s.regions.ListProvinces()
	if len(provinces) == 0 {
		return "", ErrNoProvinces
	}
	return provinces[s.rand.IntN(len(provinces))].Code, nil
}

// randomBirthDate picks a uniform year and month, then a day valid for that
// month in that year.
func (s *Service) randomBirthDate() time.Time {
	year := s.rand.Between(minBirthYear, maxBirthYear)
	month := time.Month(s.rand.Between(1, 12))
	day := s.rand.Between(1, daysIn(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseSerial(serial string) (int, error) {
	invalid := &nik.FormatError{Field: nik.FieldSerial, Value: serial, Reason: "must be four digits"}
	if len(serial) != 4 {
		return 0, invalid
	}
	for i := 0; i < len(serial); i++ {
		if serial[i] < '0' || serial[i] > '9' {
			return 0, invalid
		}
	}
	n, err := strconv.Atoi(serial)
	if err != nil {
		return 0, invalid
	}
	return n, nil
}

func (s *Service) invalidLocation(ctx context.Context, level Level, province, regency, district string) error {
	err := &InvalidLocationError{
		Level:        level,
		ProvinceCode: province,
		RegencyCode:  regency,
		DistrictCode: district,
	}
	s.logger.InfoContext(ctx, "generation rejected location",
		"level", level,
		"province", province,
		"regency", regency,
		"district", district,
	)
	return err
}

// IsInvalidLocation reports whether err is an *InvalidLocationError.
func IsInvalidLocation(err error) bool {
	var target *InvalidLocationError
	return errors.As(err, &target)
}
