package utils

import "strings"

// External (request) and stored (database) forms of the vehicle category.
const (
	ExternalTwoWheeler  = "roda2"
	ExternalFourWheeler = "roda4"

	StoredTwoWheeler  = "RODA2"
	StoredFourWheeler = "RODA4"
)

// ToStoredCategory maps the external category form to the stored form.
// Matching is case-insensitive; anything unrecognized reports false.
func ToStoredCategory(external string) (string, bool) {
	switch strings.ToLower(external) {
	case ExternalTwoWheeler:
		return StoredTwoWheeler, true
	case ExternalFourWheeler:
		return StoredFourWheeler, true
	}
	return "", false
}

// ToExternalCategory maps the stored category form back to the external form.
// Round-trips are only guaranteed for the two valid categories.
func ToExternalCategory(stored string) (string, bool) {
	switch strings.ToUpper(stored) {
	case StoredTwoWheeler:
		return ExternalTwoWheeler, true
	case StoredFourWheeler:
		return ExternalFourWheeler, true
	}
	return "", false
}
