package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Book runs the availability check, the booking insert and the equipment
// status flip as a single transaction. The SELECT ... FOR UPDATE on the
// equipment row serializes concurrent creates for the same equipment: the
// second transaction blocks on the lock and, once it acquires it, sees the
// status already flipped to rented.
func (r *bookingRepository) Book(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.EquipmentStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM equipment WHERE id = $1 FOR UPDATE`, b.EquipmentID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrEquipmentNotAvailable
	}
	if err != nil {
		return err
	}
	if status != domain.EquipmentStatusAvailable {
		return domain.ErrEquipmentNotAvailable
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO bookings (equipment_id, farmer_id, start_date, end_date, location, status, total_cost_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on, updated_on`,
		b.EquipmentID, b.FarmerID, b.StartDate, b.EndDate, b.Location, b.Status, b.TotalCostCents).
		Scan(&b.ID, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return err
	}

	// The flip happens after the booking row exists, so a failure between
	// the two statements rolls back to a consistent state.
	if _, err := tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1 WHERE id = $2`,
		domain.EquipmentStatusRented, b.EquipmentID); err != nil {
		return err
	}

	return tx.Commit()
}

// Finish moves an active booking to a terminal status and releases its
// equipment. Terminal bookings are left untouched: the call commits without
// updates, so re-cancelling is a no-op and equipment rented again under a
// later booking is never released by a stale cancel or complete.
func (r *bookingRepository) Finish(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var equipmentID int64
	var current domain.BookingStatus
	err = tx.QueryRowContext(ctx,
		`SELECT equipment_id, status FROM bookings WHERE id = $1 FOR UPDATE`, id).
		Scan(&equipmentID, &current)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if current.Terminal() {
		return tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_on = now() WHERE id = $2`, status, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE equipment SET status = $1 WHERE id = $2`,
		domain.EquipmentStatusAvailable, equipmentID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT id, equipment_id, farmer_id, start_date, end_date, location, status, total_cost_cents, created_on, updated_on
	          FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.EquipmentID, &b.FarmerID, &b.StartDate, &b.EndDate, &b.Location, &b.Status, &b.TotalCostCents, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT b.id, b.equipment_id, b.farmer_id, b.start_date, b.end_date, b.location, b.status, b.total_cost_cents,
	                 b.created_on, b.updated_on, e.name, f.name
	          FROM bookings b
	          JOIN equipment e ON b.equipment_id = e.id
	          JOIN farmers f ON b.farmer_id = f.id
	          ORDER BY b.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.EquipmentID, &b.FarmerID, &b.StartDate, &b.EndDate, &b.Location, &b.Status,
			&b.TotalCostCents, &b.CreatedOn, &b.UpdatedOn, &b.EquipmentName, &b.FarmerName); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByFarmer(ctx context.Context, farmerID int64) ([]domain.Booking, error) {
	query := `SELECT b.id, b.equipment_id, b.farmer_id, b.start_date, b.end_date, b.location, b.status, b.total_cost_cents,
	                 b.created_on, b.updated_on, e.name
	          FROM bookings b
	          JOIN equipment e ON b.equipment_id = e.id
	          WHERE b.farmer_id = $1
	          ORDER BY b.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.EquipmentID, &b.FarmerID, &b.StartDate, &b.EndDate, &b.Location, &b.Status,
			&b.TotalCostCents, &b.CreatedOn, &b.UpdatedOn, &b.EquipmentName); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// SummarizeByFarmer recomputes the dashboard numbers from scratch. Cancelled
// bookings count toward the total but not toward spend.
func (r *bookingRepository) SummarizeByFarmer(ctx context.Context, farmerID int64) (*domain.DashboardSummary, error) {
	s := &domain.DashboardSummary{}
	query := `SELECT count(*) FILTER (WHERE status = 'active'),
	                 count(*),
	                 COALESCE(SUM(total_cost_cents) FILTER (WHERE status <> 'cancelled'), 0)
	          FROM bookings WHERE farmer_id = $1`
	err := r.db.QueryRowContext(ctx, query, farmerID).
		Scan(&s.ActiveBookings, &s.TotalBookings, &s.TotalSpentCents)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *bookingRepository) ListReturnsDue(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	query := `SELECT b.id, b.equipment_id, b.farmer_id, b.start_date, b.end_date, b.location, b.status, b.total_cost_cents,
	                 b.created_on, b.updated_on, e.name, f.name
	          FROM bookings b
	          JOIN equipment e ON b.equipment_id = e.id
	          JOIN farmers f ON b.farmer_id = f.id
	          WHERE b.status = 'active' AND b.end_date <= $1
	          ORDER BY b.end_date`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.EquipmentID, &b.FarmerID, &b.StartDate, &b.EndDate, &b.Location, &b.Status,
			&b.TotalCostCents, &b.CreatedOn, &b.UpdatedOn, &b.EquipmentName, &b.FarmerName); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
