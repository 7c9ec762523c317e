package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"
)

type providerRepository struct {
	db DBTX
}

func NewProviderRepository(db DBTX) repository.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	query := `SELECT id, username, name, email, COALESCE(phone, ''), created_on FROM providers WHERE id = $1`
	return r.scanProvider(r.db.QueryRowContext(ctx, query, id))
}

func (r *providerRepository) GetByUsername(ctx context.Context, username string) (*domain.Provider, error) {
	query := `SELECT id, username, name, email, COALESCE(phone, ''), created_on FROM providers WHERE username = $1`
	return r.scanProvider(r.db.QueryRowContext(ctx, query, username))
}

func (r *providerRepository) GetByContact(ctx context.Context, email, phone string) (*domain.Provider, error) {
	query := `SELECT id, username, name, email, COALESCE(phone, ''), created_on FROM providers
	          WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND phone = $2) LIMIT 1`
	return r.scanProvider(r.db.QueryRowContext(ctx, query, email, phone))
}

func (r *providerRepository) scanProvider(row *sql.Row) (*domain.Provider, error) {
	p := &domain.Provider{}
	err := row.Scan(&p.ID, &p.Username, &p.Name, &p.Email, &p.Phone, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProviderNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *providerRepository) List(ctx context.Context) ([]domain.Provider, error) {
	query := `SELECT id, username, name, email, COALESCE(phone, ''), created_on FROM providers ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []domain.Provider
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Username, &p.Name, &p.Email, &p.Phone, &p.CreatedOn); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}
