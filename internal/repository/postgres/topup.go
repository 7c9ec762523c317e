package postgres

import (
	"context"
	"time"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"
)

type topUpRepository struct {
	db DBTX
}

func NewTopUpRepository(db DBTX) repository.TopUpRepository {
	return &topUpRepository{db: db}
}

func (r *topUpRepository) Create(ctx context.Context, t *domain.TopUp) error {
	query := `INSERT INTO topups (reference, payer_name, detail, amount_cents, email, phone, document_type, document_number, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, t.Reference, t.PayerName, t.Detail, t.AmountCents, t.Email, t.Phone, t.DocumentType, t.DocumentNumber, now).Scan(&t.ID)
	if err != nil {
		return err
	}
	t.CreatedOn = now
	return nil
}

func (r *topUpRepository) List(ctx context.Context) ([]domain.TopUp, error) {
	query := `SELECT id, reference, payer_name, detail, amount_cents, email, phone, document_type, document_number, created_on
	          FROM topups ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topUps []domain.TopUp
	for rows.Next() {
		var t domain.TopUp
		if err := rows.Scan(&t.ID, &t.Reference, &t.PayerName, &t.Detail, &t.AmountCents, &t.Email, &t.Phone, &t.DocumentType, &t.DocumentNumber, &t.CreatedOn); err != nil {
			return nil, err
		}
		topUps = append(topUps, t)
	}
	return topUps, rows.Err()
}
