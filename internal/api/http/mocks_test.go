package http_test

import (
	"context"

	"farmshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockFarmerService
type MockFarmerService struct {
	mock.Mock
}

func (m *MockFarmerService) Login(ctx context.Context, name, phone string) (*domain.Farmer, bool, error) {
	args := m.Called(ctx, name, phone)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Farmer), args.Bool(1), args.Error(2)
}
func (m *MockFarmerService) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Farmer), args.Error(1)
}
func (m *MockFarmerService) GetDashboard(ctx context.Context, farmerID int64) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

// MockEquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) ListEquipment(ctx context.Context, category, status string) ([]domain.Equipment, error) {
	args := m.Called(ctx, category, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) AddEquipment(ctx context.Context, name, category, description string, pricePerDayCents int64) (*domain.Equipment, error) {
	args := m.Called(ctx, name, category, description, pricePerDayCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, equipmentID, farmerID int64, startDate, endDate, location string) (*domain.Booking, error) {
	args := m.Called(ctx, equipmentID, farmerID, startDate, endDate, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListFarmerBookings(ctx context.Context, farmerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, farmerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) CancelBooking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingService) CompleteBooking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceService
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) ScheduleMaintenance(ctx context.Context, equipmentID int64, scheduledDate, description string) (*domain.Maintenance, error) {
	args := m.Called(ctx, equipmentID, scheduledDate, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceService) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceService) CompleteMaintenance(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
