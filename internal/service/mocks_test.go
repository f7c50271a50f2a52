package service_test

import (
	"context"
	"time"

	"farmshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockFarmerRepo
type MockFarmerRepo struct {
	mock.Mock
}

func (m *MockFarmerRepo) Create(ctx context.Context, farmer *domain.Farmer) error {
	args := m.Called(ctx, farmer)
	return args.Error(0)
}
func (m *MockFarmerRepo) GetByID(ctx context.Context, id int64) (*domain.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}
func (m *MockFarmerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Farmer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farmer), args.Error(1)
}
func (m *MockFarmerRepo) List(ctx context.Context) ([]domain.Farmer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Farmer), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context, category, status string) ([]domain.Equipment, error) {
	args := m.Called(ctx, category, status)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Book(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByFarmer(ctx context.Context, farmerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, farmerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Finish(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) SummarizeByFarmer(ctx context.Context, farmerID int64) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}
func (m *MockBookingRepo) ListReturnsDue(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, rec *domain.Maintenance) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) List(ctx context.Context) ([]domain.Maintenance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) Complete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListDue(ctx context.Context, asOf time.Time) ([]domain.Maintenance, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOpsNotification(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}
