package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parkir/internal/db"
	"parkir/internal/entities"
	apierrors "parkir/internal/errors"
	"parkir/internal/repository"
	"parkir/internal/utils"

	"github.com/sirupsen/logrus"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ParkingStore is the persistence surface the service needs. It is
// satisfied by *repository.ParkingRepository.
type ParkingStore interface {
	Create(rec *db.ParkingRecord) error
	List(search, storedCategory string, offset, limit int) ([]db.ParkingRecord, error)
	GetByID(id int) (*db.ParkingRecord, error)
	Update(id int, upd repository.ParkingUpdate) (*db.ParkingRecord, error)
	Delete(id int) error
	SumTotalFee() (int, error)
}

type ParkingService struct {
	Store ParkingStore
}

func NewParkingService(store ParkingStore) *ParkingService {
	return &ParkingService{Store: store}
}

// Create persists a new record with the entry time fixed to now and the fee
// derived from category and duration. The mapped (stored) category is
// persisted; when mapping fails, the raw request string still feeds the fee
// computation so a best-effort fee is kept instead of rejecting.
func (s *ParkingService) Create(req entities.CreateParkingRequest) (*entities.ParkingRecordResponse, error) {
	stored, _ := utils.ToStoredCategory(req.JenisKendaraan)
	calcCategory, ok := utils.ToExternalCategory(stored)
	if !ok {
		calcCategory = req.JenisKendaraan
	}

	now := time.Now().UTC()
	rec := &db.ParkingRecord{
		PlateNumber:     req.PlatNomor,
		VehicleCategory: stored,
		EntryTime:       now,
		DurationHours:   req.Durasi,
		TotalFee:        ComputeFee(calcCategory, req.Durasi),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Store.Create(rec); err != nil {
		return nil, fmt.Errorf("creating parking record: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"id":    rec.ID,
		"plate": rec.PlateNumber,
		"total": rec.TotalFee,
	}).Info("parking record created")

	return toResponse(rec), nil
}

// FindAll returns one page of records ordered by ascending id. An
// unmappable category filter is dropped rather than matched literally.
func (s *ParkingService) FindAll(q entities.ListParkingQuery) ([]entities.ParkingRecordResponse, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	storedCategory := ""
	if q.JenisKendaraan != "" {
		if mapped, ok := utils.ToStoredCategory(q.JenisKendaraan); ok {
			storedCategory = mapped
		}
	}

	records, err := s.Store.List(q.Search, storedCategory, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("listing parking records: %w", err)
	}

	responses := make([]entities.ParkingRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *toResponse(&records[i]))
	}
	return responses, nil
}

func (s *ParkingService) FindOne(id int) (*entities.ParkingRecordResponse, error) {
	rec, err := s.findRecord(id)
	if err != nil {
		return nil, err
	}
	return toResponse(rec), nil
}

// Update merges the supplied fields over the existing record and always
// recomputes the fee from the resulting category and duration. Only the
// supplied fields plus the fee are written back.
func (s *ParkingService) Update(id int, req entities.UpdateParkingRequest) (*entities.ParkingRecordResponse, error) {
	existing, err := s.findRecord(id)
	if err != nil {
		return nil, err
	}

	existingExternal, _ := utils.ToExternalCategory(existing.VehicleCategory)

	var suppliedStored *string
	if req.JenisKendaraan != nil {
		if mapped, ok := utils.ToStoredCategory(*req.JenisKendaraan); ok {
			suppliedStored = &mapped
		}
	}

	newStored := existing.VehicleCategory
	if suppliedStored != nil {
		newStored = *suppliedStored
	}
	calcCategory, ok := utils.ToExternalCategory(newStored)
	if !ok {
		calcCategory = existingExternal
	}

	newDuration := existing.DurationHours
	if req.Durasi != nil {
		newDuration = *req.Durasi
	}

	upd := repository.ParkingUpdate{
		VehicleCategory: suppliedStored,
		DurationHours:   req.Durasi,
		ExitTime:        req.ExitTime,
		TotalFee:        ComputeFee(calcCategory, newDuration),
	}
	// An empty plate counts as absent, same as the category being unmappable.
	if req.PlatNomor != nil && *req.PlatNomor != "" {
		upd.PlateNumber = req.PlatNomor
	}

	updated, err := s.Store.Update(id, upd)
	if err != nil {
		return nil, fmt.Errorf("updating parking record %d: %w", id, err)
	}

	logrus.WithFields(logrus.Fields{
		"id":    updated.ID,
		"total": updated.TotalFee,
	}).Info("parking record updated")

	return toResponse(updated), nil
}

// Remove deletes the record and returns its prior snapshot.
func (s *ParkingService) Remove(id int) (*entities.ParkingRecordResponse, error) {
	existing, err := s.findRecord(id)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Delete(id); err != nil {
		return nil, fmt.Errorf("deleting parking record %d: %w", id, err)
	}

	logrus.WithField("id", id).Info("parking record deleted")

	return toResponse(existing), nil
}

func (s *ParkingService) TotalRevenue() (*entities.RevenueResponse, error) {
	total, err := s.Store.SumTotalFee()
	if err != nil {
		return nil, fmt.Errorf("summing revenue: %w", err)
	}
	return &entities.RevenueResponse{TotalPendapatan: total}, nil
}

func (s *ParkingService) findRecord(id int) (*db.ParkingRecord, error) {
	rec, err := s.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("fetching parking record %d: %w", id, err)
	}
	return rec, nil
}

func toResponse(rec *db.ParkingRecord) *entities.ParkingRecordResponse {
	return &entities.ParkingRecordResponse{
		ID:             rec.ID,
		PlatNomor:      rec.PlateNumber,
		JenisKendaraan: rec.VehicleCategory,
		EntryTime:      rec.EntryTime,
		ExitTime:       rec.ExitTime,
		Durasi:         rec.DurationHours,
		Total:          rec.TotalFee,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}
