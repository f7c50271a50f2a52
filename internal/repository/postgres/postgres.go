package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"farmshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.FarmerRepository
	repository.EquipmentRepository
	repository.BookingRepository
	repository.MaintenanceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		FarmerRepository:      NewFarmerRepository(db),
		EquipmentRepository:   NewEquipmentRepository(db),
		BookingRepository:     NewBookingRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
	}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS farmers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT UNIQUE NOT NULL,
		created_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price_per_day_cents BIGINT NOT NULL CHECK (price_per_day_cents > 0),
		status TEXT NOT NULL DEFAULT 'available',
		created_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		equipment_id INTEGER NOT NULL REFERENCES equipment(id),
		farmer_id INTEGER NOT NULL REFERENCES farmers(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		location TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		total_cost_cents BIGINT NOT NULL,
		created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance (
		id SERIAL PRIMARY KEY,
		equipment_id INTEGER NOT NULL REFERENCES equipment(id),
		scheduled_date DATE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'scheduled',
		completed_date TIMESTAMPTZ
	)`,
}

// sampleEquipment seeds the catalog on first boot. Prices are in cents.
var sampleEquipment = [][4]interface{}{
	{"Heavy Duty Tractor", "Tractor", "Perfect for plowing and heavy farming tasks", int64(150000)},
	{"Combine Harvester", "Harvester", "Efficient harvesting for wheat, rice, and corn", int64(250000)},
	{"Modern Plough", "Plough", "Advanced plough for soil preparation", int64(80000)},
	{"Crop Sprayer", "Sprayer", "Efficient pesticide and fertilizer application", int64(120000)},
	{"Mini Tractor", "Tractor", "Compact tractor for small farms", int64(100000)},
	{"Seed Drill", "Plough", "Precision seed planting equipment", int64(60000)},
}

// EnsureSchema creates the tables if missing and seeds sample equipment into
// an empty catalog.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	var count int64
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM equipment`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count equipment: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range sampleEquipment {
		_, err := db.ExecContext(ctx,
			`INSERT INTO equipment (name, category, description, price_per_day_cents, status) VALUES ($1, $2, $3, $4, 'available')`,
			item[0], item[1], item[2], item[3])
		if err != nil {
			return fmt.Errorf("failed to seed equipment: %w", err)
		}
	}
	return nil
}
