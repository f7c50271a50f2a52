package repository

import (
	"context"
	"time"

	"farmshare-backend/internal/domain"
)

type FarmerRepository interface {
	Create(ctx context.Context, farmer *domain.Farmer) error
	GetByID(ctx context.Context, id int64) (*domain.Farmer, error)
	// GetByPhone returns domain.ErrNotFound when no farmer has the phone.
	GetByPhone(ctx context.Context, phone string) (*domain.Farmer, error)
	List(ctx context.Context) ([]domain.Farmer, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	// List filters by category and/or status; empty strings match everything.
	List(ctx context.Context, category, status string) ([]domain.Equipment, error)
}

type BookingRepository interface {
	// Book atomically verifies the equipment is available, inserts the
	// booking with status active, and flips the equipment to rented. The
	// three steps run in one transaction with the equipment row locked, so
	// two concurrent Book calls against the same equipment serialize and
	// the loser gets domain.ErrEquipmentNotAvailable.
	Book(ctx context.Context, b *domain.Booking) error

	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// List returns all bookings joined with equipment and farmer names,
	// newest first.
	List(ctx context.Context) ([]domain.Booking, error)

	// ListByFarmer returns the farmer's bookings joined with equipment
	// names, newest first.
	ListByFarmer(ctx context.Context, farmerID int64) ([]domain.Booking, error)

	// Finish moves an active booking to the given terminal status and
	// releases the equipment back to available, as one transaction with
	// the booking update applied before the equipment flip. A booking that
	// is already terminal is left untouched and the call succeeds, so
	// repeated cancels are harmless and equipment re-rented under a later
	// booking is never released by a stale finish. Returns
	// domain.ErrNotFound when the booking does not exist.
	Finish(ctx context.Context, id int64, status domain.BookingStatus) error

	// SummarizeByFarmer computes the dashboard aggregate for one farmer.
	SummarizeByFarmer(ctx context.Context, farmerID int64) (*domain.DashboardSummary, error)

	// ListReturnsDue returns active bookings whose end date is on or
	// before asOf, joined with equipment and farmer names.
	ListReturnsDue(ctx context.Context, asOf time.Time) ([]domain.Booking, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	// List returns all maintenance records joined with equipment names,
	// latest scheduled date first.
	List(ctx context.Context) ([]domain.Maintenance, error)
	Complete(ctx context.Context, id int64) error
	// ListDue returns scheduled maintenance whose date is on or before asOf.
	ListDue(ctx context.Context, asOf time.Time) ([]domain.Maintenance, error)
}
