package entities

import "time"

type CreateParkingRequest struct {
	PlatNomor      string `json:"plat_nomor"`
	JenisKendaraan string `json:"jenis_kendaraan"`
	Durasi         int    `json:"durasi"`
}

// UpdateParkingRequest carries a partial update; nil means "not supplied,
// keep the existing value".
type UpdateParkingRequest struct {
	PlatNomor      *string    `json:"plat_nomor"`
	JenisKendaraan *string    `json:"jenis_kendaraan"`
	Durasi         *int       `json:"durasi"`
	ExitTime       *time.Time `json:"exit_time"`
}

type ListParkingQuery struct {
	Page           int
	Limit          int
	Search         string
	JenisKendaraan string
}
