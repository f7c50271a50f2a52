package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	EquipmentID int64  `json:"equipment_id"`
	FarmerID    int64  `json:"farmer_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("Invalid request body"))
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(),
		req.EquipmentID, req.FarmerID, req.StartDate, req.EndDate, req.Location)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":               booking.ID,
		"total_cost_cents": booking.TotalCostCents,
		"message":          "Booking created successfully",
	})
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListBookings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListByFarmer handles GET /api/bookings/farmer/{farmerId}.
func (h *BookingHandler) ListByFarmer(w http.ResponseWriter, r *http.Request) {
	farmerID, err := strconv.ParseInt(mux.Vars(r)["farmerId"], 10, 64)
	if err != nil {
		writeError(w, domain.NewValidationError("Invalid farmer id"))
		return
	}

	bookings, err := h.bookingSvc.ListFarmerBookings(r.Context(), farmerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Cancel handles PUT /api/bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.bookingSvc.CancelBooking, "Booking cancelled successfully")
}

// Complete handles PUT /api/bookings/{id}/complete.
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.bookingSvc.CompleteBooking, "Booking completed successfully")
}

func (h *BookingHandler) finish(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error, message string) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.NewValidationError("Invalid booking id"))
		return
	}

	if err := op(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
