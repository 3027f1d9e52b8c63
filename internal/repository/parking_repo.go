package repository

import (
	"database/sql"
	"fmt"
	"parkir/internal/db"
	"strconv"
	"strings"
	"time"
)

const parkingColumns = `id, plate_number, vehicle_category, entry_time, exit_time, duration_hours, total, created_at, updated_at`

type ParkingRepository struct {
	DB *sql.DB
}

func NewParkingRepository(db *sql.DB) *ParkingRepository {
	return &ParkingRepository{DB: db}
}

// ParkingUpdate describes a partial update. Nil pointer fields are left
// untouched; TotalFee is always written.
type ParkingUpdate struct {
	PlateNumber     *string
	VehicleCategory *string
	DurationHours   *int
	ExitTime        *time.Time
	TotalFee        int
}

func (r *ParkingRepository) Create(rec *db.ParkingRecord) error {
	query := `
		INSERT INTO parking_records
		(plate_number, vehicle_category, entry_time, duration_hours, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query,
		rec.PlateNumber,
		rec.VehicleCategory,
		rec.EntryTime,
		rec.DurationHours,
		rec.TotalFee,
		rec.CreatedAt,
		rec.UpdatedAt,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting parking record: %w", err)
	}
	return nil
}

func (r *ParkingRepository) List(search, storedCategory string, offset, limit int) ([]db.ParkingRecord, error) {
	query := `SELECT ` + parkingColumns + ` FROM parking_records WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if search != "" {
		query += " AND plate_number LIKE '%' || $" + strconv.Itoa(idx) + " || '%'"
		args = append(args, escapeLike(search))
		idx++
	}
	if storedCategory != "" {
		query += " AND vehicle_category = $" + strconv.Itoa(idx)
		args = append(args, storedCategory)
		idx++
	}
	query += " ORDER BY id ASC OFFSET $" + strconv.Itoa(idx) + " LIMIT $" + strconv.Itoa(idx+1)
	args = append(args, offset, limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying parking records: %w", err)
	}
	defer rows.Close()

	var records []db.ParkingRecord
	for rows.Next() {
		var rec db.ParkingRecord
		if err := scanParkingRecord(rows.Scan, &rec); err != nil {
			return nil, fmt.Errorf("error scanning parking record: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating parking records: %w", err)
	}
	return records, nil
}

func (r *ParkingRepository) GetByID(id int) (*db.ParkingRecord, error) {
	var rec db.ParkingRecord
	query := `SELECT ` + parkingColumns + ` FROM parking_records WHERE id = $1`
	err := scanParkingRecord(r.DB.QueryRow(query, id).Scan, &rec)
	if err != nil {
		return nil, fmt.Errorf("error querying parking record %d: %w", id, err)
	}
	return &rec, nil
}

func (r *ParkingRepository) Update(id int, upd ParkingUpdate) (*db.ParkingRecord, error) {
	setClauses := []string{}
	args := []interface{}{}
	idx := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}

	if upd.PlateNumber != nil {
		set("plate_number", *upd.PlateNumber)
	}
	if upd.VehicleCategory != nil {
		set("vehicle_category", *upd.VehicleCategory)
	}
	if upd.DurationHours != nil {
		set("duration_hours", *upd.DurationHours)
	}
	if upd.ExitTime != nil {
		set("exit_time", *upd.ExitTime)
	}
	set("total", upd.TotalFee)
	set("updated_at", time.Now().UTC())

	query := `UPDATE parking_records SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(idx) + ` RETURNING ` + parkingColumns
	args = append(args, id)

	var rec db.ParkingRecord
	if err := scanParkingRecord(r.DB.QueryRow(query, args...).Scan, &rec); err != nil {
		return nil, fmt.Errorf("error updating parking record %d: %w", id, err)
	}
	return &rec, nil
}

func (r *ParkingRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM parking_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting parking record %d: %w", id, err)
	}
	return nil
}

func (r *ParkingRepository) SumTotalFee() (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM parking_records`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing parking fees: %w", err)
	}
	return total, nil
}

// escapeLike neutralizes LIKE metacharacters so a search term is a plain
// substring match, not a pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanParkingRecord(scan func(dest ...interface{}) error, rec *db.ParkingRecord) error {
	return scan(
		&rec.ID, &rec.PlateNumber, &rec.VehicleCategory, &rec.EntryTime,
		&rec.ExitTime, &rec.DurationHours, &rec.TotalFee, &rec.CreatedAt, &rec.UpdatedAt,
	)
}
