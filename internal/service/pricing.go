package service

import "parkir/internal/utils"

// Tariff: flat first hour, then a per-hour surcharge.
const (
	twoWheelerFirstHour  = 3000
	twoWheelerExtraHour  = 2000
	fourWheelerFirstHour = 6000
	fourWheelerExtraHour = 4000
)

// ComputeFee returns the parking fee for a category in its external form
// ("roda2"/"roda4") and a duration in whole hours. Unrecognized categories
// and durations below one hour price to zero instead of failing; callers
// are expected to have validated their input already.
func ComputeFee(category string, durationHours int) int {
	if durationHours < 1 {
		return 0
	}
	switch category {
	case utils.ExternalTwoWheeler:
		return twoWheelerFirstHour + (durationHours-1)*twoWheelerExtraHour
	case utils.ExternalFourWheeler:
		return fourWheelerFirstHour + (durationHours-1)*fourWheelerExtraHour
	}
	return 0
}
