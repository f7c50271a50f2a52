package service

import (
	"context"
	"errors"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
)

type farmerService struct {
	farmerRepo  repository.FarmerRepository
	bookingRepo repository.BookingRepository
}

func NewFarmerService(farmerRepo repository.FarmerRepository, bookingRepo repository.BookingRepository) FarmerService {
	return &farmerService{farmerRepo: farmerRepo, bookingRepo: bookingRepo}
}

func (s *farmerService) Login(ctx context.Context, name, phone string) (*domain.Farmer, bool, error) {
	if name == "" || phone == "" {
		return nil, false, domain.NewValidationError("Name and phone are required")
	}

	farmer, err := s.farmerRepo.GetByPhone(ctx, phone)
	if err == nil {
		return farmer, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	farmer = &domain.Farmer{Name: name, Phone: phone}
	if err := s.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, false, err
	}
	return farmer, true, nil
}

func (s *farmerService) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	return s.farmerRepo.List(ctx)
}

func (s *farmerService) GetDashboard(ctx context.Context, farmerID int64) (*domain.DashboardSummary, error) {
	if _, err := s.farmerRepo.GetByID(ctx, farmerID); err != nil {
		return nil, err
	}
	return s.bookingRepo.SummarizeByFarmer(ctx, farmerID)
}
