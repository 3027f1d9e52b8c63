package entities

import "time"

// ParkingRecordResponse is the wire shape of a parking record. The category
// is returned in its stored form ("RODA2"/"RODA4"), mirroring what the store
// holds.
type ParkingRecordResponse struct {
	ID             int        `json:"id"`
	PlatNomor      string     `json:"plat_nomor"`
	JenisKendaraan string     `json:"jenis_kendaraan"`
	EntryTime      time.Time  `json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time"`
	Durasi         int        `json:"durasi"`
	Total          int        `json:"total"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type RevenueResponse struct {
	TotalPendapatan int `json:"total_pendapatan"`
}
