package service_test

import (
	"context"
	"testing"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEquipmentService_ListEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes Filters Through", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(equipmentRepo)

		items := []domain.Equipment{
			{ID: 1, Name: "John Deere 5075E Tractor", Category: "tractor", Status: domain.EquipmentStatusAvailable},
		}
		equipmentRepo.On("List", ctx, "tractor", "available").Return(items, nil)

		res, err := svc.ListEquipment(ctx, "tractor", "available")
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		equipmentRepo.AssertExpectations(t)
	})

	t.Run("Invalid Status Filter", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(equipmentRepo)

		res, err := svc.ListEquipment(ctx, "", "broken")
		assert.Nil(t, res)
		assert.True(t, domain.IsValidationError(err))
		equipmentRepo.AssertNotCalled(t, "List")
	})
}

func TestEquipmentService_AddEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(equipmentRepo)

		equipmentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Equipment).ID = 7
			}).Return(nil)

		eq, err := svc.AddEquipment(ctx, "Boom Sprayer", "sprayer", "500L tank", 90000)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), eq.ID)
		assert.Equal(t, domain.EquipmentStatusAvailable, eq.Status)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewEquipmentService(equipmentRepo)

		eq, err := svc.AddEquipment(ctx, "", "sprayer", "", 90000)
		assert.Nil(t, eq)
		assert.True(t, domain.IsValidationError(err))

		eq, err = svc.AddEquipment(ctx, "Boom Sprayer", "sprayer", "", 0)
		assert.Nil(t, eq)
		assert.True(t, domain.IsValidationError(err))
		equipmentRepo.AssertNotCalled(t, "Create")
	})
}

func TestMaintenanceService_ScheduleMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		maintenanceRepo := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maintenanceRepo)

		maintenanceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Maintenance")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Maintenance).ID = 3
			}).Return(nil)

		m, err := svc.ScheduleMaintenance(ctx, 2, "2026-04-01", "Oil change")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), m.ID)
		assert.Equal(t, domain.MaintenanceStatusScheduled, m.Status)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		maintenanceRepo := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maintenanceRepo)

		m, err := svc.ScheduleMaintenance(ctx, 0, "2026-04-01", "Oil change")
		assert.Nil(t, m)
		assert.True(t, domain.IsValidationError(err))

		m, err = svc.ScheduleMaintenance(ctx, 2, "", "Oil change")
		assert.Nil(t, m)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Malformed Date", func(t *testing.T) {
		maintenanceRepo := new(MockMaintenanceRepo)
		svc := service.NewMaintenanceService(maintenanceRepo)

		m, err := svc.ScheduleMaintenance(ctx, 2, "April 1st", "Oil change")
		assert.Nil(t, m)
		assert.True(t, domain.IsValidationError(err))
	})
}
