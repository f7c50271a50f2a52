package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/service"

	"github.com/gorilla/mux"
)

type FarmerHandler struct {
	farmerSvc service.FarmerService
}

func NewFarmerHandler(farmerSvc service.FarmerService) *FarmerHandler {
	return &FarmerHandler{farmerSvc: farmerSvc}
}

type loginRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type loginResponse struct {
	Farmer  *domain.Farmer `json:"farmer"`
	Message string         `json:"message"`
}

// Login handles POST /api/farmers/login. It returns 201 when a new farmer
// record was created for an unseen phone number and 200 otherwise.
func (h *FarmerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("Invalid request body"))
		return
	}

	farmer, created, err := h.farmerSvc.Login(r.Context(), req.Name, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	message := "Login successful"
	if created {
		status = http.StatusCreated
		message = "Account created successfully"
	}
	writeJSON(w, status, loginResponse{Farmer: farmer, Message: message})
}

// List handles GET /api/farmers.
func (h *FarmerHandler) List(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.farmerSvc.ListFarmers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if farmers == nil {
		farmers = []domain.Farmer{}
	}
	writeJSON(w, http.StatusOK, farmers)
}

// Dashboard handles GET /api/farmers/{id}/dashboard.
func (h *FarmerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.NewValidationError("Invalid farmer id"))
		return
	}

	summary, err := h.farmerSvc.GetDashboard(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
