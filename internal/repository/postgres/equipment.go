package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (name, category, description, price_per_day_cents, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, eq.Name, eq.Category, eq.Description, eq.PricePerDayCents, eq.Status).
		Scan(&eq.ID, &eq.CreatedOn)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT id, name, category, description, price_per_day_cents, status, created_on FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&eq.ID, &eq.Name, &eq.Category, &eq.Description, &eq.PricePerDayCents, &eq.Status, &eq.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) List(ctx context.Context, category, status string) ([]domain.Equipment, error) {
	query := `SELECT id, name, category, description, price_per_day_cents, status, created_on FROM equipment WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Category, &eq.Description, &eq.PricePerDayCents, &eq.Status, &eq.CreatedOn); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}
