// Package nik encodes and decodes Indonesian national identity numbers.
//
// A NIK is 16 digits laid out as
//
//	PP RR DD dd mm yy SSSS
//
// province, regency and district codes, the birth day (plus 40 for women),
// birth month, the last two digits of the birth year and a serial number.
// The package is pure: no I/O and no region lookups. The only ambient input
// is the current year, used to place the two-digit birth year in a century.
package nik

import "time"

// Length is the number of digits in a NIK.
const Length = 16

// FemaleDayOffset is added to the birth day of women.
const FemaleDayOffset = 40

// MaxSerial is the largest serial number that fits the four-digit field.
const MaxSerial = 9999

// Gender is encoded only through the day offset.
type Gender string

const (
	GenderUnknown Gender = ""
	Male          Gender = "male"
	Female        Gender = "female"
)

// Valid reports whether g is male or female.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

func (g Gender) String() string {
	if g == GenderUnknown {
		return "unknown"
	}
	return string(g)
}

// ParsedIdentity is the result of decoding a NIK. When IsValid is false every
// other field holds its zero value; in particular BirthDate.IsZero() is true.
type ParsedIdentity struct {
	ProvinceCode string
	RegencyCode  string
	DistrictCode string
	BirthDate    time.Time
	Gender       Gender
	SerialNumber string
	IsValid      bool
}

// LocationCode returns the six-digit province+regency+district prefix.
func (p ParsedIdentity) LocationCode() string {
	return p.ProvinceCode + p.RegencyCode + p.DistrictCode
}
