package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"
)

type jobRepository struct {
	db DBTX
}

func NewJobRepository(db DBTX) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, provider_id, description, total_cents, status, settled_on, created_on FROM jobs WHERE id = $1`
	return r.scanJob(r.db.QueryRowContext(ctx, query, id))
}

func (r *jobRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, provider_id, description, total_cents, status, settled_on, created_on FROM jobs WHERE id = $1 FOR UPDATE`
	return r.scanJob(r.db.QueryRowContext(ctx, query, id))
}

func (r *jobRepository) scanJob(row *sql.Row) (*domain.Job, error) {
	j := &domain.Job{}
	err := row.Scan(&j.ID, &j.ProviderID, &j.Description, &j.TotalCents, &j.Status, &j.SettledOn, &j.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *jobRepository) Update(ctx context.Context, j *domain.Job) error {
	query := `UPDATE jobs SET status = $1, settled_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, j.Status, j.SettledOn, j.ID)
	return err
}

func (r *jobRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Job, error) {
	query := `SELECT id, provider_id, description, total_cents, status, settled_on, created_on
	          FROM jobs WHERE provider_id = $1 ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.ProviderID, &j.Description, &j.TotalCents, &j.Status, &j.SettledOn, &j.CreatedOn); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
