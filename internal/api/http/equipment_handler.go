package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

// List handles GET /api/equipment with optional category and status filters.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")

	items, err := h.equipmentSvc.ListEquipment(r.Context(), category, status)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/equipment/{id}.
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.NewValidationError("Invalid equipment id"))
		return
	}

	eq, err := h.equipmentSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

type addEquipmentRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
}

// Add handles POST /api/equipment.
func (h *EquipmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("Invalid request body"))
		return
	}

	eq, err := h.equipmentSvc.AddEquipment(r.Context(), req.Name, req.Category, req.Description, req.PricePerDayCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      eq.ID,
		"message": "Equipment added successfully",
	})
}
