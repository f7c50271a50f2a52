package postgres

import (
	"context"
	"database/sql"
	"errors"

	"farmshare-backend/internal/domain"
	"farmshare-backend/internal/repository"
)

type farmerRepository struct {
	db *sql.DB
}

func NewFarmerRepository(db *sql.DB) repository.FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(ctx context.Context, f *domain.Farmer) error {
	query := `INSERT INTO farmers (name, phone) VALUES ($1, $2) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, f.Name, f.Phone).Scan(&f.ID, &f.CreatedOn)
}

func (r *farmerRepository) GetByID(ctx context.Context, id int64) (*domain.Farmer, error) {
	f := &domain.Farmer{}
	query := `SELECT id, name, phone, created_on FROM farmers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.Phone, &f.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *farmerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Farmer, error) {
	f := &domain.Farmer{}
	query := `SELECT id, name, phone, created_on FROM farmers WHERE phone = $1`
	err := r.db.QueryRowContext(ctx, query, phone).Scan(&f.ID, &f.Name, &f.Phone, &f.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *farmerRepository) List(ctx context.Context) ([]domain.Farmer, error) {
	query := `SELECT id, name, phone, created_on FROM farmers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var farmers []domain.Farmer
	for rows.Next() {
		var f domain.Farmer
		if err := rows.Scan(&f.ID, &f.Name, &f.Phone, &f.CreatedOn); err != nil {
			return nil, err
		}
		farmers = append(farmers, f)
	}
	return farmers, rows.Err()
}
