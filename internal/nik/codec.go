package nik

import (
	"fmt"
	"strconv"
	"time"
)

// Encode builds a NIK from its parts. Codes must be two digits, the serial
// must lie in [0, MaxSerial] and the birth date must be set; violations are
// reported as *FormatError.
func Encode(gender Gender, birthDate time.Time, provinceCode, regencyCode, districtCode string, serial int) (string, error) {
	if !gender.Valid() {
		return "", &FormatError{Field: FieldGender, Value: string(gender), Reason: "must be male or female"}
	}
	if birthDate.IsZero() {
		return "", &FormatError{Field: FieldDate, Reason: "is required"}
	}
	for _, c := range []struct{ field, code string }{
		{FieldProvince, provinceCode},
		{FieldRegency, regencyCode},
		{FieldDistrict, districtCode},
	} {
		if !isDigits(c.code, 2) {
			return "", &FormatError{Field: c.field, Value: c.code, Reason: "must be two digits"}
		}
	}
	if serial < 0 || serial > MaxSerial {
		return "", &FormatError{Field: FieldSerial, Value: strconv.Itoa(serial), Reason: "must be between 0000 and 9999"}
	}

	day := birthDate.Day()
	if gender == Female {
		day += FemaleDayOffset
	}
	return fmt.Sprintf("%s%s%s%02d%02d%02d%04d",
		provinceCode, regencyCode, districtCode,
		day, int(birthDate.Month()), birthDate.Year()%100,
		serial,
	), nil
}

// Decode parses nik relative to the current year. It never fails: malformed
// input yields a ParsedIdentity with IsValid false and every field reset.
func Decode(nik string) ParsedIdentity {
	return DecodeAt(nik, time.Now())
}

// DecodeAt is Decode with an explicit "now", which fixes the century rule.
func DecodeAt(nik string, now time.Time) ParsedIdentity {
	parsed, err := Parse(nik, now)
	if err != nil {
		return ParsedIdentity{}
	}
	return parsed
}

// Parse decodes nik relative to now and explains a rejection with a
// *FormatError. The two-digit year is resolved with ResolveYear, so the same
// NIK can decode to a different birth year once the calendar moves on.
func Parse(nik string, now time.Time) (ParsedIdentity, error) {
	if len(nik) != Length {
		return ParsedIdentity{}, &FormatError{
			Field:  FieldLength,
			Value:  nik,
			Reason: fmt.Sprintf("must be %d digits, got %d characters", Length, len(nik)),
		}
	}
	if !isDigits(nik, Length) {
		return ParsedIdentity{}, &FormatError{Field: FieldDigits, Value: nik, Reason: "must contain only digits"}
	}

	rawDay := atoi2(nik[6:8])
	month := atoi2(nik[8:10])
	yy := atoi2(nik[10:12])

	gender := Male
	day := rawDay
	if rawDay > FemaleDayOffset {
		gender = Female
		day -= FemaleDayOffset
	}

	year := ResolveYear(yy, now.Year())
	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 1, month 13 becomes
	// January), so the round trip is what rejects impossible dates.
	if birthDate.Year() != year || int(birthDate.Month()) != month || birthDate.Day() != day {
		return ParsedIdentity{}, &FormatError{
			Field:  FieldDate,
			Value:  nik[6:12],
			Reason: fmt.Sprintf("day %02d month %02d year %d is not a calendar date", day, month, year),
		}
	}

	return ParsedIdentity{
		ProvinceCode: nik[0:2],
		RegencyCode:  nik[2:4],
		DistrictCode: nik[4:6],
		BirthDate:    birthDate,
		Gender:       gender,
		SerialNumber: nik[12:16],
		IsValid:      true,
	}, nil
}

// ResolveYear places a two-digit year in a century. Years above the current
// year's last two digits belong to the previous century; the rest belong to
// the current one. With currentYear 2025, 25 resolves to 2025 and 26 to 1926.
func ResolveYear(twoDigitYear, currentYear int) int {
	century := currentYear / 100 * 100
	if twoDigitYear > currentYear%100 {
		return century - 100 + twoDigitYear
	}
	return century + twoDigitYear
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoi2 converts a two-digit string already checked by isDigits.
func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
