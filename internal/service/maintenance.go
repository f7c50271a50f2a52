package service

import (
	"context"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
	"farmshare-backend/internal/utils"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository) MaintenanceService {
	return &maintenanceService{maintenanceRepo: maintenanceRepo}
}

func (s *maintenanceService) ScheduleMaintenance(ctx context.Context, equipmentID int64, scheduledDateStr, description string) (*domain.Maintenance, error) {
	if equipmentID <= 0 || scheduledDateStr == "" {
		return nil, domain.NewValidationError("Equipment ID and scheduled date are required")
	}
	scheduledDate, err := utils.ParseDate(scheduledDateStr)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	m := &domain.Maintenance{
		EquipmentID:   equipmentID,
		ScheduledDate: scheduledDate,
		Description:   description,
		Status:        domain.MaintenanceStatusScheduled,
	}
	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenanceRepo.List(ctx)
}

func (s *maintenanceService) CompleteMaintenance(ctx context.Context, id int64) error {
	return s.maintenanceRepo.Complete(ctx, id)
}
