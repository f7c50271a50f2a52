package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusActive, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
// The lifecycle is active -> cancelled or active -> completed, nothing else.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// Booking is a time-bounded rental of one equipment item by one farmer.
// TotalCostCents is computed once at creation from the equipment's daily
// rate and never recomputed, even if the rate changes later.
type Booking struct {
	ID             int64         `json:"id"`
	EquipmentID    int64         `json:"equipment_id"`
	FarmerID       int64         `json:"farmer_id"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	Location       string        `json:"location"`
	Status         BookingStatus `json:"status"`
	TotalCostCents int64         `json:"total_cost_cents"`
	// EquipmentName and FarmerName are populated by joined listings only.
	EquipmentName string    `json:"equipment_name,omitempty"`
	FarmerName    string    `json:"farmer_name,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// DashboardSummary is the per-farmer derived view, recomputed from scratch
// on every request. Cancelled bookings count toward TotalBookings but are
// excluded from TotalSpentCents.
type DashboardSummary struct {
	ActiveBookings  int64 `json:"active_bookings"`
	TotalBookings   int64 `json:"total_bookings"`
	TotalSpentCents int64 `json:"total_spent_cents"`
}
