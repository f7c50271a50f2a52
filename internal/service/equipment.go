package service

import (
	"context"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) ListEquipment(ctx context.Context, category, status string) ([]domain.Equipment, error) {
	if status != "" && !domain.EquipmentStatus(status).IsValid() {
		return nil, domain.NewValidationError("Invalid status filter")
	}
	return s.equipmentRepo.List(ctx, category, status)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) AddEquipment(ctx context.Context, name, category, description string, pricePerDayCents int64) (*domain.Equipment, error) {
	if name == "" || category == "" || pricePerDayCents <= 0 {
		return nil, domain.NewValidationError("Name, category, and price are required")
	}

	eq := &domain.Equipment{
		Name:             name,
		Category:         category,
		Description:      description,
		PricePerDayCents: pricePerDayCents,
		Status:           domain.EquipmentStatusAvailable,
	}
	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}
