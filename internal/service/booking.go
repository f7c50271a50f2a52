package service

import (
	"context"
	"errors"
	"fmt"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/logger"
	"farmshare-backend/internal/repository"
	"farmshare-backend/internal/utils"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
	emailSvc      EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	equipmentRepo repository.EquipmentRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		emailSvc:      emailSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, equipmentID, farmerID int64, startDateStr, endDateStr, location string) (*domain.Booking, error) {
	if equipmentID <= 0 || farmerID <= 0 || startDateStr == "" || endDateStr == "" || location == "" {
		return nil, domain.NewValidationError("All fields are required")
	}

	start, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	end, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	// The reference accepted reversed ranges and produced nonsensical
	// costs; reject them up front instead.
	if end.Before(start) {
		return nil, domain.NewValidationError("End date must not be before start date")
	}

	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrEquipmentNotAvailable
	}
	if err != nil {
		return nil, err
	}

	totalCost, err := utils.CalculateRentalCost(start, end, eq.PricePerDayCents)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	booking := &domain.Booking{
		EquipmentID:    equipmentID,
		FarmerID:       farmerID,
		StartDate:      start,
		EndDate:        end,
		Location:       location,
		Status:         domain.BookingStatusActive,
		TotalCostCents: totalCost,
	}

	// Availability is re-checked inside the transaction; the read above
	// only supplied the price.
	if err := s.bookingRepo.Book(ctx, booking); err != nil {
		return nil, err
	}

	// Best effort: a failed notification never fails the booking.
	subject := fmt.Sprintf("New booking #%d: %s", booking.ID, eq.Name)
	body := fmt.Sprintf("Farmer %d booked %s from %s to %s at %s for %d cents.",
		farmerID, eq.Name, utils.FormatDate(start), utils.FormatDate(end), location, totalCost)
	if err := s.emailSvc.SendOpsNotification(ctx, subject, body); err != nil {
		logger.Warn("Failed to send booking notification", "booking_id", booking.ID, "error", err)
	}

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) ListFarmerBookings(ctx context.Context, farmerID int64) ([]domain.Booking, error) {
	return s.bookingRepo.ListByFarmer(ctx, farmerID)
}

func (s *bookingService) CancelBooking(ctx context.Context, id int64) error {
	return s.bookingRepo.Finish(ctx, id, domain.BookingStatusCancelled)
}

func (s *bookingService) CompleteBooking(ctx context.Context, id int64) error {
	return s.bookingRepo.Finish(ctx, id, domain.BookingStatusCompleted)
}
