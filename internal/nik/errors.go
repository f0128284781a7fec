package nik

import "fmt"

// Field names reported by FormatError.
const (
	FieldLength   = "length"
	FieldDigits   = "digits"
	FieldDate     = "birth_date"
	FieldGender   = "gender"
	FieldProvince = "province_code"
	FieldRegency  = "regency_code"
	FieldDistrict = "district_code"
	FieldSerial   = "serial"
)

// FormatError describes why a NIK, or the parts used to build one, is
// malformed. Decode never returns it; Parse and Encode do.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("nik %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("nik %s %q: %s", e.Field, e.Value, e.Reason)
}
