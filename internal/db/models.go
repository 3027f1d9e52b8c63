package db

import "time"

// ParkingRecord is a row of the parking_records table.
// VehicleCategory holds the stored form ("RODA2"/"RODA4").
type ParkingRecord struct {
	ID              int
	PlateNumber     string
	VehicleCategory string
	EntryTime       time.Time
	ExitTime        *time.Time
	DurationHours   int
	TotalFee        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
