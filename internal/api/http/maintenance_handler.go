package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type MaintenanceHandler struct {
	maintenanceSvc service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

type scheduleMaintenanceRequest struct {
	EquipmentID   int64  `json:"equipment_id"`
	ScheduledDate string `json:"scheduled_date"`
	Description   string `json:"description"`
}

// Schedule handles POST /api/maintenance.
func (h *MaintenanceHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("Invalid request body"))
		return
	}

	m, err := h.maintenanceSvc.ScheduleMaintenance(r.Context(), req.EquipmentID, req.ScheduledDate, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      m.ID,
		"message": "Maintenance scheduled successfully",
	})
}

// List handles GET /api/maintenance.
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.maintenanceSvc.ListMaintenance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.Maintenance{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Complete handles PUT /api/maintenance/{id}/complete.
func (h *MaintenanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.NewValidationError("Invalid maintenance id"))
		return
	}

	if err := h.maintenanceSvc.CompleteMaintenance(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Maintenance completed successfully"})
}
