package service

import (
	"context"

	"farmshare-backend/internal/domain"
)

type FarmerService interface {
	// Login looks a farmer up by phone and creates the record on first
	// sight. The returned bool is true when a new farmer was created.
	Login(ctx context.Context, name, phone string) (*domain.Farmer, bool, error)
	ListFarmers(ctx context.Context) ([]domain.Farmer, error)
	GetDashboard(ctx context.Context, farmerID int64) (*domain.DashboardSummary, error)
}

type EquipmentService interface {
	ListEquipment(ctx context.Context, category, status string) ([]domain.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error)
	AddEquipment(ctx context.Context, name, category, description string, pricePerDayCents int64) (*domain.Equipment, error)
}

type BookingService interface {
	// CreateBooking validates the request, computes the total cost and
	// books the equipment atomically. Returns domain.ValidationError for
	// bad input and domain.ErrEquipmentNotAvailable when the equipment is
	// absent or already rented.
	CreateBooking(ctx context.Context, equipmentID, farmerID int64, startDate, endDate, location string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListFarmerBookings(ctx context.Context, farmerID int64) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
	CompleteBooking(ctx context.Context, id int64) error
}

type MaintenanceService interface {
	ScheduleMaintenance(ctx context.Context, equipmentID int64, scheduledDate, description string) (*domain.Maintenance, error)
	ListMaintenance(ctx context.Context) ([]domain.Maintenance, error)
	CompleteMaintenance(ctx context.Context, id int64) error
}

// EmailService delivers operational notifications. Farmers have no email
// address, so all mail goes to a configured operations inbox.
type EmailService interface {
	SendOpsNotification(ctx context.Context, subject, body string) error
}
