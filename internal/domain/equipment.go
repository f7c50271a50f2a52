package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable EquipmentStatus = "available"
	EquipmentStatusRented    EquipmentStatus = "rented"
)

func (s EquipmentStatus) IsValid() bool {
	return s == EquipmentStatusAvailable || s == EquipmentStatusRented
}

// Equipment is a catalog item. Status is the only mutable field and is
// written exclusively by booking transactions: rented while exactly one
// active booking references the item, available otherwise.
type Equipment struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	PricePerDayCents int64           `json:"price_per_day_cents"`
	Status           EquipmentStatus `json:"status"`
	CreatedOn        time.Time       `json:"created_on"`
}
