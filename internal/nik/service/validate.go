package service

import (
	"context"
	"time"

	"nikgen/internal/nik"
	"nikgen/internal/region/models"
)

const (
	modeFull   = "full"
	modeFormat = "format"

	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

// Report is the outcome of a full validation. When Valid is false,
// FailedLevel names the first tier that did not match, or is empty if the
// NIK itself was malformed. Region entries are filled down to the last tier
// that matched.
type Report struct {
	Identity    nik.ParsedIdentity
	Valid       bool
	FailedLevel Level
	Province    models.Entry
	Regency     models.Entry
	District    models.Entry
}

// ValidateFull reports whether nik is well-formed and names a real
// province, regency and district. Checks run in that order and stop at the
// first miss. A region store failure is returned as *RegionLookupError
// rather than folded into false.
func (s *Service) ValidateFull(ctx context.Context, nikString string) (bool, error) {
	report, err := s.Inspect(ctx, nikString)
	if err != nil {
		return false, err
	}
	return report.Valid, nil
}

// Inspect runs full validation and returns what was resolved along the way,
// including region names for display.
func (s *Service) Inspect(ctx context.Context, nikString string) (Report, error) {
	start := time.Now()
	report, err := s.inspect(ctx, nikString)
	s.metrics.ObserveValidateLatency(time.Since(start))

	switch {
	case err != nil:
		s.metrics.IncrementValidation(modeFull, outcomeError)
		s.logger.WarnContext(ctx, "full validation could not consult region data", "error", err)
	case report.Valid:
		s.metrics.IncrementValidation(modeFull, outcomeValid)
	default:
		s.metrics.IncrementValidation(modeFull, outcomeInvalid)
	}
	return report, err
}

func (s *Service) inspect(ctx context.Context, nikString string) (Report, error) {
	parsed := s.Decode(nikString)
	report := Report{Identity: parsed}
	if !parsed.IsValid {
		return report, nil
	}

	province, ok := models.Find(s.regions.ListProvinces(), parsed.ProvinceCode)
	if !ok {
		report.FailedLevel = LevelProvince
		return report, nil
	}
	report.Province = province

	regencies, err := s.regions.ListRegencies(ctx, parsed.ProvinceCode)
	if err != nil {
		return Report{}, &RegionLookupError{Level: LevelRegency, Err: err}
	}
	regency, ok := models.Find(regencies, parsed.RegencyCode)
	if !ok {
		report.FailedLevel = LevelRegency
		return report, nil
	}
	report.Regency = regency

	districts, err := s.regions.ListDistricts(ctx, parsed.ProvinceCode, parsed.RegencyCode)
	if err != nil {
		return Report{}, &RegionLookupError{Level: LevelDistrict, Err: err}
	}
	district, ok := models.Find(districts, parsed.DistrictCode)
	if !ok {
		report.FailedLevel = LevelDistrict
		return report, nil
	}
	report.District = district
	report.Valid = true
	return report, nil
}

// ValidateFormat reports whether nik is well-formed and its province code
// exists. Regency and district codes are not checked, so this is strictly
// weaker than ValidateFull: it accepts NIKs whose lower tiers are made up.
// It never blocks and never fails.
func (s *Service) ValidateFormat(nikString string) bool {
	parsed := s.Decode(nikString)
	valid := parsed.IsValid && models.Contains(s.regions.ListProvinces(), parsed.ProvinceCode)

	outcome := outcomeInvalid
	if valid {
		outcome = outcomeValid
	}
	s.metrics.IncrementValidation(modeFormat, outcome)
	return valid
}
