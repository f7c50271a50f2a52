package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled MaintenanceStatus = "scheduled"
	MaintenanceStatusCompleted MaintenanceStatus = "completed"
)

// Maintenance is an independent service record for an equipment item. It has
// no interaction with bookings and never touches equipment status.
type Maintenance struct {
	ID            int64             `json:"id"`
	EquipmentID   int64             `json:"equipment_id"`
	ScheduledDate time.Time         `json:"scheduled_date"`
	Description   string            `json:"description"`
	Status        MaintenanceStatus `json:"status"`
	CompletedDate *time.Time        `json:"completed_date,omitempty"`
	EquipmentName string            `json:"equipment_name,omitempty"`
}
