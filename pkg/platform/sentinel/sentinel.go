package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Region sources and stores return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about reference data, not validation failures:
// - ErrNotFound: the requested data segment does not exist in the source
// - ErrUnavailable: the source could not be read at all
//
// Malformed identity numbers are not errors at this layer; the codec reports
// them as an invalid parse.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
