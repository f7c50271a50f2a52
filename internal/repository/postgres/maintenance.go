package postgres

import (
	"context"
	"database/sql"
	"time"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `INSERT INTO maintenance (equipment_id, scheduled_date, description, status)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.EquipmentID, m.ScheduledDate, m.Description, m.Status).Scan(&m.ID)
}

func (r *maintenanceRepository) List(ctx context.Context) ([]domain.Maintenance, error) {
	query := `SELECT m.id, m.equipment_id, m.scheduled_date, m.description, m.status, m.completed_date, e.name
	          FROM maintenance m
	          JOIN equipment e ON m.equipment_id = e.id
	          ORDER BY m.scheduled_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenance(rows)
}

func (r *maintenanceRepository) Complete(ctx context.Context, id int64) error {
	query := `UPDATE maintenance SET status = $1, completed_date = now() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, domain.MaintenanceStatusCompleted, id)
	return err
}

func (r *maintenanceRepository) ListDue(ctx context.Context, asOf time.Time) ([]domain.Maintenance, error) {
	query := `SELECT m.id, m.equipment_id, m.scheduled_date, m.description, m.status, m.completed_date, e.name
	          FROM maintenance m
	          JOIN equipment e ON m.equipment_id = e.id
	          WHERE m.status = 'scheduled' AND m.scheduled_date <= $1
	          ORDER BY m.scheduled_date`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenance(rows)
}

func scanMaintenance(rows *sql.Rows) ([]domain.Maintenance, error) {
	var records []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.EquipmentID, &m.ScheduledDate, &m.Description, &m.Status, &m.CompletedDate, &m.EquipmentName); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}
