package domain

import "time"

// Farmer is the marketplace identity. Farmers are created on first login by
// phone number and never mutated or deleted afterwards.
type Farmer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
}
