package http

import (
	"net/http"

	"farmshare-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all handlers onto a gorilla/mux router with request-ID
// and logging middleware.
func NewRouter(
	farmerSvc service.FarmerService,
	equipmentSvc service.EquipmentService,
	bookingSvc service.BookingService,
	maintenanceSvc service.MaintenanceService,
) *mux.Router {
	farmerHandler := NewFarmerHandler(farmerSvc)
	equipmentHandler := NewEquipmentHandler(equipmentSvc)
	bookingHandler := NewBookingHandler(bookingSvc)
	maintenanceHandler := NewMaintenanceHandler(maintenanceSvc)

	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/farmers/login", farmerHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/farmers", farmerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/farmers/{id}/dashboard", farmerHandler.Dashboard).Methods(http.MethodGet)

	api.HandleFunc("/equipment", equipmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment", equipmentHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings/farmer/{farmerId}", bookingHandler.ListByFarmer).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}/complete", bookingHandler.Complete).Methods(http.MethodPut)

	api.HandleFunc("/maintenance", maintenanceHandler.Schedule).Methods(http.MethodPost)
	api.HandleFunc("/maintenance", maintenanceHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id}/complete", maintenanceHandler.Complete).Methods(http.MethodPut)

	return r
}
