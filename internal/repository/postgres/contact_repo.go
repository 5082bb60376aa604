package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgForeignKeyViolation = "23503"
)

type contactRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewContactRepository(db *pgxpool.Pool, timeout time.Duration) domain.ContactRepository {
	return &contactRepo{db: db, timeout: timeout}
}

func (r *contactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	card, err := json.Marshal(contact.Card)
	if err != nil {
		return err
	}
	query := `INSERT INTO contacts (from_user_id, to_user_id, card, created_at)
              VALUES ($1, $2, $3::jsonb, $4) RETURNING id`
	err = r.db.QueryRow(ctx, query, contact.FromUserID, contact.ToUserID, string(card), contact.CreatedAt).Scan(&contact.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
