package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFarmerHandler_Login(t *testing.T) {
	t.Run("Existing Farmer Returns 200", func(t *testing.T) {
		farmerSvc := new(MockFarmerService)
		router := newTestRouter(farmerSvc, nil, nil, nil)

		farmer := &domain.Farmer{ID: 1, Name: "Amara Okafor", Phone: "+254700111222"}
		farmerSvc.On("Login", mock.Anything, "Amara Okafor", "+254700111222").Return(farmer, false, nil)

		body, _ := json.Marshal(map[string]string{"name": "Amara Okafor", "phone": "+254700111222"})
		req := httptest.NewRequest(http.MethodPost, "/api/farmers/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Login successful")
	})

	t.Run("New Farmer Returns 201", func(t *testing.T) {
		farmerSvc := new(MockFarmerService)
		router := newTestRouter(farmerSvc, nil, nil, nil)

		farmer := &domain.Farmer{ID: 5, Name: "Joseph Mwangi", Phone: "+254700333444"}
		farmerSvc.On("Login", mock.Anything, "Joseph Mwangi", "+254700333444").Return(farmer, true, nil)

		body, _ := json.Marshal(map[string]string{"name": "Joseph Mwangi", "phone": "+254700333444"})
		req := httptest.NewRequest(http.MethodPost, "/api/farmers/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account created successfully")
	})

	t.Run("Missing Fields Return 400", func(t *testing.T) {
		farmerSvc := new(MockFarmerService)
		router := newTestRouter(farmerSvc, nil, nil, nil)

		farmerSvc.On("Login", mock.Anything, "", "").
			Return(nil, false, domain.NewValidationError("Name and phone are required"))

		req := httptest.NewRequest(http.MethodPost, "/api/farmers/login", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Name and phone are required")
	})
}

func TestFarmerHandler_Dashboard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		farmerSvc := new(MockFarmerService)
		router := newTestRouter(farmerSvc, nil, nil, nil)

		farmerSvc.On("GetDashboard", mock.Anything, int64(1)).Return(&domain.DashboardSummary{
			ActiveBookings:  2,
			TotalBookings:   5,
			TotalSpentCents: 930000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/farmers/1/dashboard", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res domain.DashboardSummary
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(2), res.ActiveBookings)
		assert.Equal(t, int64(930000), res.TotalSpentCents)
	})

	t.Run("Unknown Farmer Returns 404", func(t *testing.T) {
		farmerSvc := new(MockFarmerService)
		router := newTestRouter(farmerSvc, nil, nil, nil)

		farmerSvc.On("GetDashboard", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/farmers/99/dashboard", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEquipmentHandler_List(t *testing.T) {
	t.Run("Filters From Query Params", func(t *testing.T) {
		equipmentSvc := new(MockEquipmentService)
		router := newTestRouter(nil, equipmentSvc, nil, nil)

		items := []domain.Equipment{
			{ID: 1, Name: "John Deere 5075E Tractor", Category: "tractor", Status: domain.EquipmentStatusAvailable},
		}
		equipmentSvc.On("ListEquipment", mock.Anything, "tractor", "available").Return(items, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/equipment?category=tractor&status=available", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		equipmentSvc.AssertExpectations(t)
	})

	t.Run("Invalid Status Returns 400", func(t *testing.T) {
		equipmentSvc := new(MockEquipmentService)
		router := newTestRouter(nil, equipmentSvc, nil, nil)

		equipmentSvc.On("ListEquipment", mock.Anything, "", "broken").
			Return(nil, domain.NewValidationError("Invalid status filter"))

		req := httptest.NewRequest(http.MethodGet, "/api/equipment?status=broken", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEquipmentHandler_Get(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		equipmentSvc := new(MockEquipmentService)
		router := newTestRouter(nil, equipmentSvc, nil, nil)

		equipmentSvc.On("GetEquipment", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/equipment/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMaintenanceHandler_Schedule(t *testing.T) {
	maintenanceSvc := new(MockMaintenanceService)
	router := newTestRouter(nil, nil, nil, maintenanceSvc)

	m := &domain.Maintenance{ID: 3, EquipmentID: 2, Status: domain.MaintenanceStatusScheduled}
	maintenanceSvc.On("ScheduleMaintenance", mock.Anything, int64(2), "2026-04-01", "Oil change").Return(m, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"equipment_id":   2,
		"scheduled_date": "2026-04-01",
		"description":    "Oil change",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/maintenance", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	maintenanceSvc.AssertExpectations(t)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
