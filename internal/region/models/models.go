package models

// Entry is one administrative unit at any level of the hierarchy. Codes are
// two-digit numeric strings that are only unique under their parent.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Find returns the entry with the given code.
func Find(entries []Entry, code string) (Entry, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

// Contains reports whether code is present in entries.
func Contains(entries []Entry, code string) bool {
	_, ok := Find(entries, code)
	return ok
}
